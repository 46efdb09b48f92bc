package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/policy"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// OpportunityService implements opportunity use cases. All mutations are
// restricted to the owning organization; catalog references are validated
// against existing rows before anything is written.
type OpportunityService struct {
	opportunities ports.OpportunityRepository
	orgs          ports.OrganizationRepository
	causeAreas    ports.CauseAreaRepository
	skills        ports.SkillRepository
	log           zerolog.Logger
}

func NewOpportunityService(
	opportunities ports.OpportunityRepository,
	orgs ports.OrganizationRepository,
	causeAreas ports.CauseAreaRepository,
	skills ports.SkillRepository,
	log zerolog.Logger,
) *OpportunityService {
	return &OpportunityService{
		opportunities: opportunities,
		orgs:          orgs,
		causeAreas:    causeAreas,
		skills:        skills,
		log:           log,
	}
}

func (s *OpportunityService) List(ctx context.Context, filter ports.ListOpportunitiesFilter) ([]*domain.Opportunity, error) {
	return s.opportunities.List(ctx, filter)
}

func (s *OpportunityService) ListForOrganization(ctx context.Context, actor domain.Actor, orgID string) ([]*domain.Opportunity, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !policy.OwnsOrganization(actor, org) {
		return nil, domain.ErrForbidden
	}
	return s.opportunities.ListByOrganization(ctx, org.ID)
}

func (s *OpportunityService) Create(ctx context.Context, actor domain.Actor, orgID string, input ports.CreateOpportunityInput) (*domain.Opportunity, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !policy.OwnsOrganization(actor, org) {
		return nil, domain.ErrForbidden
	}

	if err := s.validateRefs(ctx, input.CauseAreaID, input.SkillIDs); err != nil {
		return nil, err
	}

	opp := &domain.Opportunity{
		Title:          input.Title,
		OrganizationID: org.ID,
		Type:           input.Type,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Location:       input.Location,
		CauseAreaID:    input.CauseAreaID,
		SkillIDs:       input.SkillIDs,
		Description:    input.Description,
		Requirements:   input.Requirements,
		Status:         domain.OpportunityOpen,
		DatePosted:     time.Now().UTC(),
	}
	if err := opp.ValidateDates(); err != nil {
		return nil, err
	}

	created, err := s.opportunities.Create(ctx, opp)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("opportunity_id", created.ID).Str("organization_id", org.ID).Msg("opportunity created")
	return created, nil
}

func (s *OpportunityService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Opportunity, error) {
	opp, _, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return opp, nil
}

func (s *OpportunityService) Update(ctx context.Context, actor domain.Actor, id string, patch ports.UpdateOpportunityInput) (*domain.Opportunity, error) {
	opp, _, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		opp.Title = *patch.Title
	}
	if patch.Type != nil {
		opp.Type = *patch.Type
	}
	if patch.StartDate != nil {
		opp.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		opp.EndDate = *patch.EndDate
	}
	if patch.Location != nil {
		opp.Location = *patch.Location
	}
	if patch.CauseAreaID != nil {
		opp.CauseAreaID = *patch.CauseAreaID
	}
	if patch.SkillIDs != nil {
		opp.SkillIDs = patch.SkillIDs
	}
	if patch.Description != nil {
		opp.Description = *patch.Description
	}
	if patch.Requirements != nil {
		opp.Requirements = *patch.Requirements
	}
	if patch.Status != nil {
		opp.Status = domain.OpportunityStatus(*patch.Status)
	}

	if err := opp.ValidateDates(); err != nil {
		return nil, err
	}
	if patch.CauseAreaID != nil || patch.SkillIDs != nil {
		if err := s.validateRefs(ctx, opp.CauseAreaID, opp.SkillIDs); err != nil {
			return nil, err
		}
	}

	if err := s.opportunities.Update(ctx, opp); err != nil {
		return nil, err
	}
	return opp, nil
}

func (s *OpportunityService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	opp, _, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.opportunities.Delete(ctx, opp.ID)
}

// resolveOwned loads an opportunity and its organization, enforcing
// ownership. A missing opportunity is NotFound; a found one that belongs to
// another organization is Forbidden.
func (s *OpportunityService) resolveOwned(ctx context.Context, actor domain.Actor, id string) (*domain.Opportunity, *domain.Organization, error) {
	opp, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	org, err := s.orgs.FindByID(ctx, opp.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	if !policy.OwnsOpportunity(actor, opp, org) {
		return nil, nil, domain.ErrForbidden
	}
	return opp, org, nil
}

// validateRefs checks that the cause area and every skill exist.
func (s *OpportunityService) validateRefs(ctx context.Context, causeAreaID string, skillIDs []string) error {
	if _, err := s.causeAreas.FindByID(ctx, causeAreaID); err != nil {
		return domain.ErrUnknownCauseArea
	}
	if len(skillIDs) == 0 {
		return nil
	}
	found, err := s.skills.FindByIDs(ctx, skillIDs)
	if err != nil {
		return err
	}
	if len(found) != len(skillIDs) {
		return domain.ErrUnknownSkill
	}
	return nil
}
