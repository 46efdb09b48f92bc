package ports

import (
	"context"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// ApplicationRepository defines persistence for opportunity applications.
type ApplicationRepository interface {
	// Create inserts an application. A second application by the same account
	// for the same opportunity maps to domain.ErrDuplicateApplication.
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	ListByOpportunity(ctx context.Context, opportunityID string) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
