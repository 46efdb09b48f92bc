package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voluntree/volunteer-api/internal/api/metrics"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// EventHandler handles event browsing, owner-only mutations, registrations,
// and the attendee list.
type EventHandler struct {
	events ports.EventService
}

func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

type createEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required"`
}

type updateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
}

// List returns events matching the query filters.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        location      query     string  false  "Exact location match"
// @Param        organization  query     string  false  "Organization ID"
// @Param        date          query     string  false  "Events on this day (RFC 3339 date)"
// @Param        search        query     string  false  "Partial location match"
// @Success      200           {array}   domain.Event
// @Router       /v1/events [get]
func (h *EventHandler) List(c echo.Context) error {
	filter := ports.ListEventsFilter{
		Location:       c.QueryParam("location"),
		OrganizationID: c.QueryParam("organization"),
		Search:         c.QueryParam("search"),
	}
	if raw := c.QueryParam("date"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		filter.Date = &day
	}

	events, err := h.events.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// ListForOrganization returns the events hosted by an organization.
//
// @Summary      List an organization's events
// @Tags         events
// @Produce      json
// @Param        orgID  path      string  true  "Organization ID"
// @Success      200    {array}   domain.Event
// @Failure      404    {object}  map[string]string
// @Router       /v1/organizations/{orgID}/events [get]
func (h *EventHandler) ListForOrganization(c echo.Context) error {
	events, err := h.events.ListForOrganization(c.Request().Context(), c.Param("orgID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Create posts a new event under the actor's organization.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orgID  path      string              true  "Organization ID"
// @Param        body   body      createEventRequest  true  "Event details"
// @Success      201    {object}  domain.Event
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      422    {object}  map[string]string
// @Router       /v1/organizations/{orgID}/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.events.Create(c.Request().Context(), actor, c.Param("orgID"), ports.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Update patches an event hosted by the actor's organization.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Event ID"
// @Param        body  body      updateEventRequest  true  "Fields to update"
// @Success      200   {object}  domain.Event
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	event, err := h.events.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete removes an event hosted by the actor's organization.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.events.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "event deleted"})
}

// Register signs the actor's volunteer profile up for an event.
//
// @Summary      Register for an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      201  {object}  domain.EventRegistration
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/events/{id}/registrations [post]
func (h *EventHandler) Register(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	reg, err := h.events.Register(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, reg)
}

// Attendees returns the volunteer profiles registered for an event. Only the
// hosting organization may read the list.
//
// @Summary      List an event's attendees
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      200  {array}   domain.Profile
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/events/{id}/attendees [get]
func (h *EventHandler) Attendees(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	attendees, err := h.events.Attendees(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attendees)
}
