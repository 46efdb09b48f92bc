package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

type stubReviewService struct {
	listFn   func(ctx context.Context, orgID string) ([]*domain.Review, error)
	createFn func(ctx context.Context, actor domain.Actor, orgID string, input ports.CreateReviewInput) (*domain.Review, error)
	updateFn func(ctx context.Context, actor domain.Actor, id string, patch ports.UpdateReviewInput) (*domain.Review, error)
	deleteFn func(ctx context.Context, actor domain.Actor, id string) error
}

func (s *stubReviewService) ListForOrganization(ctx context.Context, orgID string) ([]*domain.Review, error) {
	return s.listFn(ctx, orgID)
}

func (s *stubReviewService) Create(ctx context.Context, actor domain.Actor, orgID string, input ports.CreateReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, actor, orgID, input)
}

func (s *stubReviewService) Update(ctx context.Context, actor domain.Actor, id string, patch ports.UpdateReviewInput) (*domain.Review, error) {
	return s.updateFn(ctx, actor, id, patch)
}

func (s *stubReviewService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func setActorClaims(c echo.Context, accountID string, role domain.Role) {
	c.Set("account_id", accountID)
	c.Set("username", "alice")
	c.Set("email", "alice@example.com")
	c.Set("role", string(role))
}

func TestReviewHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		createFn: func(ctx context.Context, actor domain.Actor, orgID string, input ports.CreateReviewInput) (*domain.Review, error) {
			if actor.AccountID != "acc_a" || orgID != "org_1" {
				t.Fatalf("unexpected args: %s %s", actor.AccountID, orgID)
			}
			if input.Rating != 4 || input.Message != "great team" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Review{ID: "rev_1", OrganizationID: orgID, AccountID: actor.AccountID, Rating: input.Rating, Message: input.Message}, nil
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/organizations/org_1/reviews", strings.NewReader(`{"rating":4,"message":"great team"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orgID")
	c.SetParamValues("org_1")
	setActorClaims(c, "acc_a", domain.RoleVolunteer)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "rev_1" || resp["rating"] != float64(4) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestReviewHandler_Create_RatingTooHigh(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		createFn: func(ctx context.Context, actor domain.Actor, orgID string, input ports.CreateReviewInput) (*domain.Review, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/organizations/org_1/reviews", strings.NewReader(`{"rating":6}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orgID")
	c.SetParamValues("org_1")
	setActorClaims(c, "acc_a", domain.RoleVolunteer)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestReviewHandler_Create_MissingClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		createFn: func(ctx context.Context, actor domain.Actor, orgID string, input ports.CreateReviewInput) (*domain.Review, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/organizations/org_1/reviews", strings.NewReader(`{"rating":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestReviewHandler_Update_NotAuthor(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		updateFn: func(ctx context.Context, actor domain.Actor, id string, patch ports.UpdateReviewInput) (*domain.Review, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/v1/reviews/rev_1", strings.NewReader(`{"rating":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("rev_1")
	setActorClaims(c, "acc_b", domain.RoleVolunteer)

	if err := handler.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestReviewHandler_ListForOrganization(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		listFn: func(ctx context.Context, orgID string) ([]*domain.Review, error) {
			if orgID != "org_1" {
				t.Fatalf("unexpected org: %s", orgID)
			}
			return []*domain.Review{{ID: "rev_1", Rating: 5}}, nil
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/organizations/org_1/reviews", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orgID")
	c.SetParamValues("org_1")

	if err := handler.ListForOrganization(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var reviews []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &reviews); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(reviews) != 1 || reviews[0]["id"] != "rev_1" {
		t.Fatalf("unexpected payload: %+v", reviews)
	}
}

func TestReviewHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		deleteFn: func(ctx context.Context, actor domain.Actor, id string) error {
			return domain.ErrReviewNotFound
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/reviews/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	setActorClaims(c, "acc_a", domain.RoleVolunteer)

	if err := handler.Delete(c); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
