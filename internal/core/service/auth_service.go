package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// TokenBlacklist abstracts the revocation store (Redis). A revoked jti must
// be rejected on the very next request, so lookups go straight to the store.
type TokenBlacklist interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService implements login, token refresh, and logout over signed,
// stateless-verifiable JWTs. Access tokens are short-lived and never stored;
// refresh tokens carry a jti that the blacklist tracks after logout.
type AuthService struct {
	accounts   ports.AccountRepository
	blacklist  TokenBlacklist
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, blacklist TokenBlacklist, jwtSecret string, accessTTL, refreshTTL time.Duration, log zerolog.Logger) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		accounts:   accounts,
		blacklist:  blacklist,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		log:        log,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.Account, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Same error as a wrong password so responses never confirm
			// whether an email is registered.
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(account)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("login successful")
	return pair, account, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.parseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.jti)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrInvalidToken
	}

	account, err := s.accounts.FindByID(ctx, claims.subject)
	if err != nil {
		// The account may have been deleted since the token was issued.
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	return s.issuePair(account)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parseRefresh(refreshToken)
	if err != nil {
		return err
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.jti)
	if err != nil {
		return err
	}
	if revoked {
		return domain.ErrInvalidToken
	}

	ttl := time.Until(claims.expiresAt)
	if ttl <= 0 {
		return domain.ErrInvalidToken
	}
	if err := s.blacklist.Revoke(ctx, claims.jti, ttl); err != nil {
		return err
	}

	s.log.Info().Str("account_id", claims.subject).Msg("refresh token revoked")
	return nil
}

// issuePair signs a new access/refresh token set for the account.
func (s *AuthService) issuePair(account *domain.Account) (*ports.TokenPair, error) {
	now := time.Now().UTC()
	accessExp := now.Add(s.accessTTL)
	refreshExp := now.Add(s.refreshTTL)

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      account.ID,
		"username": account.Username,
		"email":    account.Email,
		"role":     string(account.Role),
		"exp":      accessExp.Unix(),
	})
	accessSigned, err := access.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": account.ID,
		"jti": newJTI(),
		"typ": "refresh",
		"exp": refreshExp.Unix(),
	})
	refreshSigned, err := refresh.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		AccessToken:      accessSigned,
		RefreshToken:     refreshSigned,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

type refreshClaims struct {
	subject   string
	jti       string
	expiresAt time.Time
}

// parseRefresh verifies a refresh token's signature, type, and expiry.
// Every failure collapses into domain.ErrInvalidToken.
func (s *AuthService) parseRefresh(token string) (*refreshClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	typ, _ := claims["typ"].(string)
	sub, _ := claims["sub"].(string)
	jti, _ := claims["jti"].(string)
	if typ != "refresh" || sub == "" || jti == "" {
		return nil, domain.ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrInvalidToken
	}

	return &refreshClaims{subject: sub, jti: jti, expiresAt: exp.Time}, nil
}

// newJTI returns a random token identifier for blacklist bookkeeping.
func newJTI() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(b)
}

// HashPassword wraps bcrypt so callers outside this package share one cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
