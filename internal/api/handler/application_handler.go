package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voluntree/volunteer-api/internal/api/metrics"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// ApplicationHandler handles applications: volunteers apply, the owning
// organization reviews and moves them through its pipeline.
type ApplicationHandler struct {
	applications ports.ApplicationService
}

func NewApplicationHandler(applications ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type updateApplicationRequest struct {
	Status string `json:"status" validate:"required"`
}

// Apply submits a pending application by the actor for an opportunity.
//
// @Summary      Apply to an opportunity
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        oppID  path      string  true  "Opportunity ID"
// @Success      201    {object}  domain.Application
// @Failure      404    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /v1/opportunities/{oppID}/applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	app, err := h.applications.Apply(c.Request().Context(), actor, c.Param("oppID"))
	if err != nil {
		return err
	}

	metrics.ApplicationsTotal.Inc()
	return c.JSON(http.StatusCreated, app)
}

// ListForOpportunity returns the applications for an opportunity owned by the
// actor's organization.
//
// @Summary      List applications for an opportunity
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        orgID  path      string  true  "Organization ID"
// @Param        oppID  path      string  true  "Opportunity ID"
// @Success      200    {array}   domain.Application
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /v1/organizations/{orgID}/opportunities/{oppID}/applications [get]
func (h *ApplicationHandler) ListForOpportunity(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	apps, err := h.applications.ListForOpportunity(c.Request().Context(), actor, c.Param("orgID"), c.Param("oppID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// UpdateStatus moves an application through the owning organization's
// pipeline.
//
// @Summary      Update an application's status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Application ID"
// @Param        body  body      updateApplicationRequest  true  "New status"
// @Success      200   {object}  domain.Application
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/applications/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.applications.UpdateStatus(c.Request().Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Delete removes an application. Only the owning organization may delete.
//
// @Summary      Delete an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.applications.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "application deleted"})
}
