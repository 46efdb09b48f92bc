package ports

import (
	"context"
	"time"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// ListEventsFilter carries the query parameters for browsing events.
type ListEventsFilter struct {
	Location       string // exact match
	OrganizationID string
	Date           *time.Time // events on this calendar day
	Search         string     // partial match on location
}

// EventRepository defines persistence for events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter ListEventsFilter) ([]*domain.Event, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
}

// EventRegistrationRepository defines persistence for event sign-ups.
type EventRegistrationRepository interface {
	// Create inserts a registration. A second registration by the same
	// profile for the same event maps to domain.ErrDuplicateRegistration.
	Create(ctx context.Context, reg *domain.EventRegistration) (*domain.EventRegistration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EventRegistration, error)
}
