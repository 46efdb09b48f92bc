package ports

import (
	"context"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// ApplicationService defines use-case operations for applications. The
// applicant identity always comes from the actor, never from the payload.
type ApplicationService interface {
	// Apply creates a pending application by the actor for the opportunity.
	Apply(ctx context.Context, actor domain.Actor, opportunityID string) (*domain.Application, error)
	// ListForOpportunity returns applications for an opportunity owned by the
	// actor's organization.
	ListForOpportunity(ctx context.Context, actor domain.Actor, orgID, opportunityID string) ([]*domain.Application, error)
	// UpdateStatus moves an application through the owning organization's
	// pipeline.
	UpdateStatus(ctx context.Context, actor domain.Actor, id, status string) (*domain.Application, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
