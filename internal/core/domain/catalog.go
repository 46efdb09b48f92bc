package domain

// CauseArea labels the sector an opportunity serves (education, environment…).
type CauseArea struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Skill is a capability an opportunity asks volunteers for.
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
