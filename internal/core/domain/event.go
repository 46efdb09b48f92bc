package domain

import "time"

// Event is a dated gathering hosted by an organization.
type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	OrganizationID string    `json:"organization"`
}

// EventRegistration records a volunteer profile attending an event. At most
// one registration per (profile, event) pair exists.
type EventRegistration struct {
	ID           string    `json:"id"`
	ProfileID    string    `json:"user"`
	EventID      string    `json:"event"`
	RegisteredAt time.Time `json:"registered_at"`
}
