package domain

import "time"

// Organization is a registered nonprofit, paired 1:1 with an Account whose
// role is RoleOrganization. The account's username mirrors Name.
type Organization struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"-"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Website     string    `json:"website,omitempty"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	Country     string    `json:"country"`
	Phone       string    `json:"phone"`
	Mission     string    `json:"mission"`
	Description string    `json:"description"`
	LinkedInURL string    `json:"linkedin_url,omitempty"`
	FacebookURL string    `json:"facebook_url,omitempty"`
	TwitterURL  string    `json:"twitter_url,omitempty"`
	CreatedAt   time.Time `json:"created"`
	UpdatedAt   time.Time `json:"updated"`
}
