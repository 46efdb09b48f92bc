package domain

import "time"

// Review is a volunteer's rating of an organization.
type Review struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"user"`
	OrganizationID string    `json:"org"`
	Rating         int       `json:"rating"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

// ValidateRating enforces the 0..5 bound.
func (r *Review) ValidateRating() error {
	if r.Rating < 0 || r.Rating > 5 {
		return ErrRatingOutOfRange
	}
	return nil
}
