package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voluntree/volunteer-api/internal/api/metrics"
	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// VolunteerHandler handles volunteer signup and profile CRUD. Reads and
// mutations beyond signup are restricted to the profile owner.
type VolunteerHandler struct {
	identity ports.IdentityService
}

func NewVolunteerHandler(identity ports.IdentityService) *VolunteerHandler {
	return &VolunteerHandler{identity: identity}
}

type signupRequest struct {
	Name        string     `json:"name" validate:"required"`
	Password    string     `json:"password" validate:"required,min=8"`
	Email       string     `json:"email" validate:"required,email"`
	PhoneNumber string     `json:"phone_number"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Bio         string     `json:"bio"`
}

type updateVolunteerRequest struct {
	Name        *string    `json:"name"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	PhoneNumber *string    `json:"phone_number"`
	Address     *string    `json:"address"`
	City        *string    `json:"city"`
	Country     *string    `json:"country"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Bio         *string    `json:"bio"`
}

// Signup registers a volunteer account with its profile.
//
// @Summary      Register a volunteer
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Volunteer signup details"
// @Success      201   {object}  domain.Profile
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/users/signup [post]
func (h *VolunteerHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.identity.RegisterVolunteer(c.Request().Context(), ports.RegisterVolunteerInput{
		Name:        req.Name,
		Password:    req.Password,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		DateOfBirth: req.DateOfBirth,
		Bio:         req.Bio,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(domain.RoleVolunteer)).Inc()
	return c.JSON(http.StatusCreated, profile)
}

// Get returns a volunteer profile. Only the owner may read it.
//
// @Summary      Get a volunteer profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  domain.Profile
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id} [get]
func (h *VolunteerHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	profile, err := h.identity.GetVolunteer(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update patches a volunteer profile. Name and email changes propagate to the
// backing account.
//
// @Summary      Update a volunteer profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Profile ID"
// @Param        body  body      updateVolunteerRequest  true  "Fields to update"
// @Success      200   {object}  domain.Profile
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/users/{id} [put]
func (h *VolunteerHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.identity.UpdateVolunteer(c.Request().Context(), actor, c.Param("id"), ports.UpdateVolunteerInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		DateOfBirth: req.DateOfBirth,
		Bio:         req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Delete removes a volunteer profile and its backing account.
//
// @Summary      Delete a volunteer profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id} [delete]
func (h *VolunteerHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.identity.DeleteVolunteer(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
