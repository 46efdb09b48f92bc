package ports

import (
	"context"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// ReviewRepository defines persistence for organization reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
}
