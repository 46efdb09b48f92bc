package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/policy"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// ApplicationService implements application use cases. The applicant is
// always the authenticated actor; reviewing and deleting applications belongs
// to the organization that owns the target opportunity.
type ApplicationService struct {
	applications  ports.ApplicationRepository
	opportunities ports.OpportunityRepository
	orgs          ports.OrganizationRepository
	log           zerolog.Logger
}

func NewApplicationService(
	applications ports.ApplicationRepository,
	opportunities ports.OpportunityRepository,
	orgs ports.OrganizationRepository,
	log zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications:  applications,
		opportunities: opportunities,
		orgs:          orgs,
		log:           log,
	}
}

func (s *ApplicationService) Apply(ctx context.Context, actor domain.Actor, opportunityID string) (*domain.Application, error) {
	opp, err := s.opportunities.FindByID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}

	app, err := s.applications.Create(ctx, &domain.Application{
		AccountID:     actor.AccountID,
		OpportunityID: opp.ID,
		Status:        domain.ApplicationPending,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("application_id", app.ID).Str("opportunity_id", opp.ID).Msg("application created")
	return app, nil
}

func (s *ApplicationService) ListForOpportunity(ctx context.Context, actor domain.Actor, orgID, opportunityID string) ([]*domain.Application, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	opp, err := s.opportunities.FindByID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	if !policy.OwnsOpportunity(actor, opp, org) {
		return nil, domain.ErrForbidden
	}
	return s.applications.ListByOpportunity(ctx, opp.ID)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, actor domain.Actor, id, status string) (*domain.Application, error) {
	app, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.applications.UpdateStatus(ctx, app.ID, status); err != nil {
		return nil, err
	}
	app.Status = status
	return app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	app, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.applications.Delete(ctx, app.ID)
}

// resolveOwned loads an application and checks that the actor owns the
// organization behind its opportunity.
func (s *ApplicationService) resolveOwned(ctx context.Context, actor domain.Actor, id string) (*domain.Application, error) {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	opp, err := s.opportunities.FindByID(ctx, app.OpportunityID)
	if err != nil {
		return nil, err
	}
	org, err := s.orgs.FindByID(ctx, opp.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !policy.OwnsOpportunity(actor, opp, org) {
		return nil, domain.ErrForbidden
	}
	return app, nil
}
