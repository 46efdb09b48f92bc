package domain

import "errors"

var (
	// Credential and token failures. ErrInvalidCredentials is returned for
	// both unknown-email and wrong-password so login responses never reveal
	// whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrForbidden = errors.New("access forbidden")

	ErrAccountNotFound      = errors.New("account not found")
	ErrProfileNotFound      = errors.New("user not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrOpportunityNotFound  = errors.New("opportunity not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrEventNotFound        = errors.New("event not found")

	// Uniqueness violations surfaced by the store.
	ErrEmailTaken            = errors.New("email already in use")
	ErrNameTaken             = errors.New("name already in use")
	ErrDuplicateApplication  = errors.New("application already exists for this opportunity")
	ErrDuplicateRegistration = errors.New("already registered for this event")

	// Reference and payload validation.
	ErrUnknownCauseArea = errors.New("cause_area does not reference an existing cause area")
	ErrUnknownSkill     = errors.New("skills reference a non-existent skill")
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
)
