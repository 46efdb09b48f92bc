package ports

import (
	"context"
	"time"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// CreateEventInput carries a new event payload.
type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
}

// UpdateEventInput is a partial patch; nil fields are left unchanged.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
}

// EventService defines use-case operations for events and registrations.
// Mutations and the attendee list are restricted to the hosting organization;
// registration resolves the caller's profile from the actor.
type EventService interface {
	List(ctx context.Context, filter ListEventsFilter) ([]*domain.Event, error)
	ListForOrganization(ctx context.Context, orgID string) ([]*domain.Event, error)
	Create(ctx context.Context, actor domain.Actor, orgID string, input CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, actor domain.Actor, id string, patch UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	Register(ctx context.Context, actor domain.Actor, eventID string) (*domain.EventRegistration, error)
	Attendees(ctx context.Context, actor domain.Actor, eventID string) ([]*domain.Profile, error)
}
