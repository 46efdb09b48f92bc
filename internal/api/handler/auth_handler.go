package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voluntree/volunteer-api/internal/api/metrics"
	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
)

// AuthHandler handles login, token refresh, and logout. Tokens travel both in
// the JSON body and as HttpOnly cookies; logout requires the cookies.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresAt    string          `json:"expires_at"`
	Account      *domain.Account `json:"account,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates an account and issues a token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	pair, account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	setTokenCookies(c, pair)
	metrics.LoginsTotal.WithLabelValues(string(account.Role)).Inc()

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.AccessExpiresAt.UTC().Format(time.RFC3339),
		Account:      account,
	})
}

// Refresh exchanges a valid refresh token for a new pair. The token is read
// from the refresh_token cookie or, failing that, the JSON body.
//
// @Summary      Refresh the token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  false  "Refresh token (cookie takes precedence)"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	raw := cookieValue(c, refreshTokenCookie)
	if raw == "" {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			raw = req.RefreshToken
		}
	}
	if raw == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing refresh token")
	}

	pair, err := h.authService.Refresh(c.Request().Context(), raw)
	if err != nil {
		return err
	}

	setTokenCookies(c, pair)
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.AccessExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout revokes the refresh token and clears both token cookies. The request
// must carry the access_token and refresh_token cookies.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	access := cookieValue(c, accessTokenCookie)
	refresh := cookieValue(c, refreshTokenCookie)
	if access == "" || refresh == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing token cookies")
	}

	if err := h.authService.Logout(c.Request().Context(), refresh); err != nil {
		return err
	}

	clearTokenCookies(c)
	metrics.TokenRevocationsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setTokenCookies(c echo.Context, pair *ports.TokenPair) {
	c.SetCookie(&http.Cookie{
		Name:     accessTokenCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		Expires:  pair.AccessExpiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		Expires:  pair.RefreshExpiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookies(c echo.Context) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
