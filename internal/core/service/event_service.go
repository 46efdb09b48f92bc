package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/policy"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// EventService implements event and registration use cases. Event mutations
// and the attendee list belong to the hosting organization; registration
// resolves the caller's volunteer profile from the actor.
type EventService struct {
	events        ports.EventRepository
	registrations ports.EventRegistrationRepository
	orgs          ports.OrganizationRepository
	profiles      ports.VolunteerRepository
	log           zerolog.Logger
}

func NewEventService(
	events ports.EventRepository,
	registrations ports.EventRegistrationRepository,
	orgs ports.OrganizationRepository,
	profiles ports.VolunteerRepository,
	log zerolog.Logger,
) *EventService {
	return &EventService{
		events:        events,
		registrations: registrations,
		orgs:          orgs,
		profiles:      profiles,
		log:           log,
	}
}

func (s *EventService) List(ctx context.Context, filter ports.ListEventsFilter) ([]*domain.Event, error) {
	return s.events.List(ctx, filter)
}

func (s *EventService) ListForOrganization(ctx context.Context, orgID string) ([]*domain.Event, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return s.events.ListByOrganization(ctx, org.ID)
}

func (s *EventService) Create(ctx context.Context, actor domain.Actor, orgID string, input ports.CreateEventInput) (*domain.Event, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !policy.OwnsOrganization(actor, org) {
		return nil, domain.ErrForbidden
	}

	event, err := s.events.Create(ctx, &domain.Event{
		Title:          input.Title,
		Description:    input.Description,
		Date:           input.Date,
		Location:       input.Location,
		OrganizationID: org.ID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", event.ID).Str("organization_id", org.ID).Msg("event created")
	return event, nil
}

func (s *EventService) Update(ctx context.Context, actor domain.Actor, id string, patch ports.UpdateEventInput) (*domain.Event, error) {
	event, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	event, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.events.Delete(ctx, event.ID)
}

func (s *EventService) Register(ctx context.Context, actor domain.Actor, eventID string) (*domain.EventRegistration, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByAccountID(ctx, actor.AccountID)
	if err != nil {
		return nil, err
	}

	reg, err := s.registrations.Create(ctx, &domain.EventRegistration{
		ProfileID:    profile.ID,
		EventID:      event.ID,
		RegisteredAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", event.ID).Str("profile_id", profile.ID).Msg("event registration created")
	return reg, nil
}

func (s *EventService) Attendees(ctx context.Context, actor domain.Actor, eventID string) ([]*domain.Profile, error) {
	event, err := s.resolveOwned(ctx, actor, eventID)
	if err != nil {
		return nil, err
	}

	regs, err := s.registrations.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(regs))
	for _, r := range regs {
		ids = append(ids, r.ProfileID)
	}
	return s.profiles.FindByIDs(ctx, ids)
}

func (s *EventService) resolveOwned(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	org, err := s.orgs.FindByID(ctx, event.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !policy.OwnsEvent(actor, event, org) {
		return nil, domain.ErrForbidden
	}
	return event, nil
}
