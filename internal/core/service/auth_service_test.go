package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

func newTestAuthService(accounts *stubAccountRepo, blacklist *stubBlacklist) *AuthService {
	return NewAuthService(accounts, blacklist, "secret", 15*time.Minute, time.Hour, zerolog.Nop())
}

func seedAccount(t *testing.T, repo *stubAccountRepo, name, email, password string, role domain.Role) *domain.Account {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	account, err := repo.Create(context.Background(), &domain.Account{
		Username:     name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func TestAuthService_Login_Success(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := newTestAuthService(accounts, newStubBlacklist())
	seedAccount(t, accounts, "alice", "alice@example.com", "pw1", domain.RoleVolunteer)

	pair, account, err := svc.Login(context.Background(), "alice@example.com", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if account.Username != "alice" || account.Role != domain.RoleVolunteer {
		t.Fatalf("unexpected account: %+v", account)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleVolunteer) || claims["email"] != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := newTestAuthService(accounts, newStubBlacklist())
	seedAccount(t, accounts, "alice", "alice@example.com", "pw1", domain.RoleVolunteer)

	_, _, unknownErr := svc.Login(context.Background(), "ghost@example.com", "pw1")
	_, _, wrongErr := svc.Login(context.Background(), "alice@example.com", "bad")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if wrongErr != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
}

func TestAuthService_Refresh_IssuesNewPair(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := newTestAuthService(accounts, newStubBlacklist())
	seedAccount(t, accounts, "alice", "alice@example.com", "pw1", domain.RoleVolunteer)

	pair, _, err := svc.Login(context.Background(), "alice@example.com", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatalf("expected a full pair, got %+v", next)
	}
}

func TestAuthService_Refresh_RejectsGarbageAndAccessTokens(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := newTestAuthService(accounts, newStubBlacklist())
	seedAccount(t, accounts, "alice", "alice@example.com", "pw1", domain.RoleVolunteer)

	if _, err := svc.Refresh(context.Background(), "not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}

	pair, _, _ := svc.Login(context.Background(), "alice@example.com", "pw1")
	if _, err := svc.Refresh(context.Background(), pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for an access token, got %v", err)
	}
}

func TestAuthService_LogoutThenRefresh_Fails(t *testing.T) {
	accounts := newStubAccountRepo()
	blacklist := newStubBlacklist()
	svc := newTestAuthService(accounts, blacklist)
	seedAccount(t, accounts, "alice", "alice@example.com", "pw1", domain.RoleVolunteer)

	pair, _, err := svc.Login(context.Background(), "alice@example.com", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(blacklist.revoked) != 1 {
		t.Fatalf("expected one blacklisted jti, got %d", len(blacklist.revoked))
	}

	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("refresh after logout: expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Logout_AlreadyRevoked(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := newTestAuthService(accounts, newStubBlacklist())
	seedAccount(t, accounts, "alice", "alice@example.com", "pw1", domain.RoleVolunteer)

	pair, _, _ := svc.Login(context.Background(), "alice@example.com", "pw1")
	if err := svc.Logout(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("first logout failed: %v", err)
	}
	if err := svc.Logout(context.Background(), pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("second logout: expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Logout_MalformedToken(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo(), newStubBlacklist())

	if err := svc.Logout(context.Background(), "garbage"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Refresh_DeletedAccount(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := newTestAuthService(accounts, newStubBlacklist())
	account := seedAccount(t, accounts, "alice", "alice@example.com", "pw1", domain.RoleVolunteer)

	pair, _, _ := svc.Login(context.Background(), "alice@example.com", "pw1")
	if err := accounts.Delete(context.Background(), account.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after account deletion, got %v", err)
	}
}
