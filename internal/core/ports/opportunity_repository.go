package ports

import (
	"context"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// ListOpportunitiesFilter carries all query parameters for browsing
// opportunities. Empty fields are not filtered on.
type ListOpportunitiesFilter struct {
	Location       string // exact match
	OrganizationID string
	CauseAreaID    string
	SkillID        string // opportunities whose skill set contains this ID
	Status         string // "open" or "closed"
	Search         string // partial match on location
}

// OpportunityRepository defines persistence for opportunities.
type OpportunityRepository interface {
	Create(ctx context.Context, opp *domain.Opportunity) (*domain.Opportunity, error)
	FindByID(ctx context.Context, id string) (*domain.Opportunity, error)
	List(ctx context.Context, filter ListOpportunitiesFilter) ([]*domain.Opportunity, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*domain.Opportunity, error)
	Update(ctx context.Context, opp *domain.Opportunity) error
	Delete(ctx context.Context, id string) error
}
