package ports

import (
	"context"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// VolunteerRepository defines persistence for volunteer profiles.
type VolunteerRepository interface {
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByAccountID(ctx context.Context, accountID string) (*domain.Profile, error)
	// FindByIDs resolves a batch of profile IDs, skipping missing rows.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id string) error
}
