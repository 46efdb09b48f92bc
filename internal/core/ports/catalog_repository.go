package ports

import (
	"context"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// CauseAreaRepository defines read access to the cause-area catalog.
type CauseAreaRepository interface {
	FindByID(ctx context.Context, id string) (*domain.CauseArea, error)
	List(ctx context.Context) ([]*domain.CauseArea, error)
}

// SkillRepository defines read access to the skill catalog.
type SkillRepository interface {
	// FindByIDs resolves skill IDs; the result may be shorter than ids when
	// some IDs do not exist, which callers treat as a validation failure.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Skill, error)
	List(ctx context.Context) ([]*domain.Skill, error)
}
