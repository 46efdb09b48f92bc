package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voluntree/volunteer-api/internal/infrastructure/config"
	"github.com/voluntree/volunteer-api/pkg/logger"
)

const routerTestSecret = "router-test-secret"

// newTestRouter wires the full route table against lazily-connecting store
// clients. Tests that stop at the middleware chain never touch a store, so no
// running Mongo or Redis is needed.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	logger.Reset()
	logger.Init(logger.Options{Level: "error", Output: io.Discard})
	t.Cleanup(logger.Reset)

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	cfg := &config.Config{
		JWTSecret:       routerTestSecret,
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 168 * time.Hour,
	}
	return NewRouter(cfg, client, client.Database("voluntree_test"), redis.NewClient(&redis.Options{}))
}

func signAccessToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "acc_a",
		"username": "alice",
		"email":    "alice@example.com",
		"role":     role,
		"exp":      time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(routerTestSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestRouter_ReviewListRequiresAuth(t *testing.T) {
	e := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/organizations/org_1/reviews", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated review list, got %d", rec.Code)
	}

	t.Run("unknown role is rejected before the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/organizations/org_1/reviews", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signAccessToken(t, "ghost"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403 for unknown role, got %d", rec.Code)
		}
	})

	t.Run("protected write routes still demand a token", func(t *testing.T) {
		for _, route := range []struct{ method, path string }{
			{http.MethodPost, "/v1/organizations/org_1/reviews"},
			{http.MethodPut, "/v1/reviews/rev_1"},
			{http.MethodDelete, "/v1/reviews/rev_1"},
		} {
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("%s %s: expected 401, got %d", route.method, route.path, rec.Code)
			}
		}
	})
}
