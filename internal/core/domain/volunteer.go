package domain

import "time"

// Profile is a volunteer's public record, paired 1:1 with an Account whose
// role is RoleVolunteer. Name and Email mirror the account's username and
// email; the identity service keeps them synchronized on every mutation.
type Profile struct {
	ID          string     `json:"id"`
	AccountID   string     `json:"-"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	Country     string     `json:"country,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Bio         string     `json:"bio,omitempty"`
}
