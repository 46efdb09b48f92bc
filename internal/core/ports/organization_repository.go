package ports

import (
	"context"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// ListOrganizationsFilter carries the query parameters for the organization
// directory. Search matches name/address prefixes and the exact city, the way
// the public directory is browsed.
type ListOrganizationsFilter struct {
	City        string // exact match
	Search      string // prefix match on name or address, exact on city
	OrderByName bool
}

// OrganizationRepository defines persistence for organizations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
	FindByID(ctx context.Context, id string) (*domain.Organization, error)
	List(ctx context.Context, filter ListOrganizationsFilter) ([]*domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
	Delete(ctx context.Context, id string) error
}
