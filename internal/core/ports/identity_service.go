package ports

import (
	"context"
	"time"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// RegisterVolunteerInput carries a volunteer signup payload.
type RegisterVolunteerInput struct {
	Name        string
	Password    string
	Email       string
	PhoneNumber string
	Address     string
	City        string
	Country     string
	DateOfBirth *time.Time
	Bio         string
}

// UpdateVolunteerInput is a partial patch; nil fields are left unchanged.
type UpdateVolunteerInput struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Address     *string
	City        *string
	Country     *string
	DateOfBirth *time.Time
	Bio         *string
}

// RegisterOrganizationInput carries an organization registration payload.
type RegisterOrganizationInput struct {
	Name        string
	Password    string
	Email       string
	Website     string
	Address     string
	City        string
	PostalCode  string
	Country     string
	Phone       string
	Mission     string
	Description string
	LinkedInURL string
	FacebookURL string
	TwitterURL  string
}

// UpdateOrganizationInput is a partial patch; nil fields are left unchanged.
type UpdateOrganizationInput struct {
	Name        *string
	Email       *string
	Website     *string
	Address     *string
	City        *string
	PostalCode  *string
	Country     *string
	Phone       *string
	Mission     *string
	Description *string
	LinkedInURL *string
	FacebookURL *string
	TwitterURL  *string
}

// IdentityService owns the account/profile pairing invariant: registration
// creates both records as a unit, updates keep the mirrored username/email in
// sync, and deletes cascade to the paired account.
type IdentityService interface {
	RegisterVolunteer(ctx context.Context, input RegisterVolunteerInput) (*domain.Profile, error)
	GetVolunteer(ctx context.Context, actor domain.Actor, id string) (*domain.Profile, error)
	UpdateVolunteer(ctx context.Context, actor domain.Actor, id string, patch UpdateVolunteerInput) (*domain.Profile, error)
	DeleteVolunteer(ctx context.Context, actor domain.Actor, id string) error

	RegisterOrganization(ctx context.Context, input RegisterOrganizationInput) (*domain.Organization, error)
	GetOrganization(ctx context.Context, actor domain.Actor, id string) (*domain.Organization, error)
	ListOrganizations(ctx context.Context, filter ListOrganizationsFilter) ([]*domain.Organization, error)
	UpdateOrganization(ctx context.Context, actor domain.Actor, id string, patch UpdateOrganizationInput) (*domain.Organization, error)
	DeleteOrganization(ctx context.Context, actor domain.Actor, id string) error
}
