package ports

import (
	"context"
	"time"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// CreateOpportunityInput carries a new opportunity payload. CauseAreaID and
// SkillIDs must reference existing catalog rows.
type CreateOpportunityInput struct {
	Title        string
	Type         string
	StartDate    time.Time
	EndDate      time.Time
	Location     string
	CauseAreaID  string
	SkillIDs     []string
	Description  string
	Requirements string
}

// UpdateOpportunityInput is a partial patch; nil fields are left unchanged.
// A nil SkillIDs slice leaves the skill set as is.
type UpdateOpportunityInput struct {
	Title        *string
	Type         *string
	StartDate    *time.Time
	EndDate      *time.Time
	Location     *string
	CauseAreaID  *string
	SkillIDs     []string
	Description  *string
	Requirements *string
	Status       *string
}

// OpportunityService defines use-case operations for opportunities. Mutations
// and per-organization reads are restricted to the owning organization.
type OpportunityService interface {
	List(ctx context.Context, filter ListOpportunitiesFilter) ([]*domain.Opportunity, error)
	ListForOrganization(ctx context.Context, actor domain.Actor, orgID string) ([]*domain.Opportunity, error)
	Create(ctx context.Context, actor domain.Actor, orgID string, input CreateOpportunityInput) (*domain.Opportunity, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Opportunity, error)
	Update(ctx context.Context, actor domain.Actor, id string, patch UpdateOpportunityInput) (*domain.Opportunity, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
