package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// OpportunityHandler handles opportunity browsing and owner-only mutations.
type OpportunityHandler struct {
	opportunities ports.OpportunityService
}

func NewOpportunityHandler(opportunities ports.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{opportunities: opportunities}
}

type createOpportunityRequest struct {
	Title        string    `json:"title" validate:"required"`
	Type         string    `json:"opportunity_type" validate:"required"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date" validate:"required"`
	Location     string    `json:"location" validate:"required"`
	CauseAreaID  string    `json:"cause_area" validate:"required"`
	SkillIDs     []string  `json:"skills" validate:"required,min=1"`
	Description  string    `json:"description" validate:"required"`
	Requirements string    `json:"requirements"`
}

type updateOpportunityRequest struct {
	Title        *string    `json:"title"`
	Type         *string    `json:"opportunity_type"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Location     *string    `json:"location"`
	CauseAreaID  *string    `json:"cause_area"`
	SkillIDs     []string   `json:"skills"`
	Description  *string    `json:"description"`
	Requirements *string    `json:"requirements"`
	Status       *string    `json:"status" validate:"omitempty,oneof=open closed"`
}

// List returns opportunities matching the query filters.
//
// @Summary      List opportunities
// @Tags         opportunities
// @Produce      json
// @Param        location      query     string  false  "Exact location match"
// @Param        organization  query     string  false  "Organization ID"
// @Param        cause_area    query     string  false  "Cause area ID"
// @Param        skill         query     string  false  "Skill ID"
// @Param        status        query     string  false  "open or closed"
// @Param        search        query     string  false  "Partial location match"
// @Success      200           {array}   domain.Opportunity
// @Router       /v1/opportunities [get]
func (h *OpportunityHandler) List(c echo.Context) error {
	opps, err := h.opportunities.List(c.Request().Context(), ports.ListOpportunitiesFilter{
		Location:       c.QueryParam("location"),
		OrganizationID: c.QueryParam("organization"),
		CauseAreaID:    c.QueryParam("cause_area"),
		SkillID:        c.QueryParam("skill"),
		Status:         c.QueryParam("status"),
		Search:         c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opps)
}

// ListForOrganization returns the opportunities posted by the actor's own
// organization.
//
// @Summary      List an organization's opportunities
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Param        orgID  path      string  true  "Organization ID"
// @Success      200    {array}   domain.Opportunity
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /v1/organizations/{orgID}/opportunities [get]
func (h *OpportunityHandler) ListForOrganization(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	opps, err := h.opportunities.ListForOrganization(c.Request().Context(), actor, c.Param("orgID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opps)
}

// Create posts a new opportunity under the actor's organization.
//
// @Summary      Create an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orgID  path      string                    true  "Organization ID"
// @Param        body   body      createOpportunityRequest  true  "Opportunity details"
// @Success      201    {object}  domain.Opportunity
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      422    {object}  map[string]string
// @Router       /v1/organizations/{orgID}/opportunities [post]
func (h *OpportunityHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createOpportunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	opp, err := h.opportunities.Create(c.Request().Context(), actor, c.Param("orgID"), ports.CreateOpportunityInput{
		Title:        req.Title,
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Location:     req.Location,
		CauseAreaID:  req.CauseAreaID,
		SkillIDs:     req.SkillIDs,
		Description:  req.Description,
		Requirements: req.Requirements,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, opp)
}

// Get returns a single opportunity visible to its owning organization.
//
// @Summary      Get an opportunity
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Opportunity ID"
// @Success      200  {object}  domain.Opportunity
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/opportunities/{id} [get]
func (h *OpportunityHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	opp, err := h.opportunities.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}

// Update patches an opportunity owned by the actor's organization.
//
// @Summary      Update an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Opportunity ID"
// @Param        body  body      updateOpportunityRequest  true  "Fields to update"
// @Success      200   {object}  domain.Opportunity
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/opportunities/{id} [put]
func (h *OpportunityHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateOpportunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	opp, err := h.opportunities.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateOpportunityInput{
		Title:        req.Title,
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Location:     req.Location,
		CauseAreaID:  req.CauseAreaID,
		SkillIDs:     req.SkillIDs,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}

// Delete removes an opportunity owned by the actor's organization.
//
// @Summary      Delete an opportunity
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Opportunity ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/opportunities/{id} [delete]
func (h *OpportunityHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.opportunities.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "opportunity deleted"})
}
