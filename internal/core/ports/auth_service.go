package ports

import (
	"context"
	"time"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// TokenPair is a freshly issued access/refresh token set.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// AuthService implements the credential lifecycle: login, token refresh, and
// refresh-token revocation on logout.
type AuthService interface {
	// Login verifies the password for the account registered under email and
	// issues a token pair. Failure is always domain.ErrInvalidCredentials,
	// whether the account is missing or the password is wrong.
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.Account, error)
	// Refresh validates a refresh token (signature, expiry, blacklist) and
	// issues a new pair. Any failure is domain.ErrInvalidToken.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout blacklists the refresh token for the remainder of its lifetime.
	// Malformed, expired, or already-revoked tokens fail with
	// domain.ErrInvalidToken.
	Logout(ctx context.Context, refreshToken string) error
}
