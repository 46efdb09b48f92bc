package domain

import "time"

// ApplicationPending is the status every new application starts in. Status is
// free-form beyond that so organizations can move applications through their
// own pipeline (accepted, rejected, waitlisted…).
const ApplicationPending = "pending"

// Application links a volunteer account to an opportunity. At most one
// application per (account, opportunity) pair exists.
type Application struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"user"`
	OpportunityID string    `json:"opportunity"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
