package ports

import (
	"context"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// AccountRepository defines persistence for the authentication root.
type AccountRepository interface {
	// Create inserts a new account. A duplicate email or username maps to
	// domain.ErrEmailTaken / domain.ErrNameTaken.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// UpdateIdentity rewrites the mirrored username/email pair.
	UpdateIdentity(ctx context.Context, id, username, email string) error
	// Delete removes the account. Deleting an absent account returns
	// domain.ErrAccountNotFound; callers cascading from a profile delete
	// treat that as success.
	Delete(ctx context.Context, id string) error
}

// TxRunner runs fn inside a store transaction. Mutations made through
// repositories with the callback's ctx commit or roll back as a unit.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
