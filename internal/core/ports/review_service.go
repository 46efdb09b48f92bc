package ports

import (
	"context"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// CreateReviewInput carries a new review payload. The author and target
// organization come from context and path, never from the payload.
type CreateReviewInput struct {
	Rating  int
	Message string
}

// UpdateReviewInput is a partial patch; nil fields are left unchanged.
type UpdateReviewInput struct {
	Rating  *int
	Message *string
}

// ReviewService defines use-case operations for reviews. Updates are
// author-only; deletes are open to both roles.
type ReviewService interface {
	ListForOrganization(ctx context.Context, orgID string) ([]*domain.Review, error)
	Create(ctx context.Context, actor domain.Actor, orgID string, input CreateReviewInput) (*domain.Review, error)
	Update(ctx context.Context, actor domain.Actor, id string, patch UpdateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
