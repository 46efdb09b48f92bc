package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voluntree/volunteer-api/internal/api/metrics"
	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// OrganizationHandler handles organization registration, the public
// directory, and owner-only mutations.
type OrganizationHandler struct {
	identity ports.IdentityService
}

func NewOrganizationHandler(identity ports.IdentityService) *OrganizationHandler {
	return &OrganizationHandler{identity: identity}
}

type registerOrganizationRequest struct {
	Name        string `json:"name" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`
	Email       string `json:"email" validate:"required,email"`
	Website     string `json:"website"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Mission     string `json:"mission"`
	Description string `json:"description"`
	LinkedInURL string `json:"linkedin_url"`
	FacebookURL string `json:"facebook_url"`
	TwitterURL  string `json:"twitter_url"`
}

type updateOrganizationRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Website     *string `json:"website"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	PostalCode  *string `json:"postal_code"`
	Country     *string `json:"country"`
	Phone       *string `json:"phone"`
	Mission     *string `json:"mission"`
	Description *string `json:"description"`
	LinkedInURL *string `json:"linkedin_url"`
	FacebookURL *string `json:"facebook_url"`
	TwitterURL  *string `json:"twitter_url"`
}

// Register creates an organization account with its record.
//
// @Summary      Register an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body      registerOrganizationRequest  true  "Organization details"
// @Success      201   {object}  domain.Organization
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/organizations/register [post]
func (h *OrganizationHandler) Register(c echo.Context) error {
	var req registerOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	org, err := h.identity.RegisterOrganization(c.Request().Context(), ports.RegisterOrganizationInput{
		Name:        req.Name,
		Password:    req.Password,
		Email:       req.Email,
		Website:     req.Website,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		Phone:       req.Phone,
		Mission:     req.Mission,
		Description: req.Description,
		LinkedInURL: req.LinkedInURL,
		FacebookURL: req.FacebookURL,
		TwitterURL:  req.TwitterURL,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(domain.RoleOrganization)).Inc()
	return c.JSON(http.StatusCreated, org)
}

// List returns the public organization directory.
//
// @Summary      List organizations
// @Tags         organizations
// @Produce      json
// @Param        city    query     string  false  "Exact city match"
// @Param        search  query     string  false  "Prefix match on name or address"
// @Success      200     {array}   domain.Organization
// @Router       /v1/organizations [get]
func (h *OrganizationHandler) List(c echo.Context) error {
	orgs, err := h.identity.ListOrganizations(c.Request().Context(), ports.ListOrganizationsFilter{
		City:        c.QueryParam("city"),
		Search:      c.QueryParam("search"),
		OrderByName: true,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orgs)
}

// Get returns an organization record. Only the owner may read it through
// this endpoint; the directory is the public view.
//
// @Summary      Get an organization
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Organization ID"
// @Success      200  {object}  domain.Organization
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/organizations/{id} [get]
func (h *OrganizationHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	org, err := h.identity.GetOrganization(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, org)
}

// Update patches an organization record. Name and email changes propagate to
// the backing account.
//
// @Summary      Update an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Organization ID"
// @Param        body  body      updateOrganizationRequest  true  "Fields to update"
// @Success      200   {object}  domain.Organization
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/organizations/{id} [put]
func (h *OrganizationHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	org, err := h.identity.UpdateOrganization(c.Request().Context(), actor, c.Param("id"), ports.UpdateOrganizationInput{
		Name:        req.Name,
		Email:       req.Email,
		Website:     req.Website,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		Phone:       req.Phone,
		Mission:     req.Mission,
		Description: req.Description,
		LinkedInURL: req.LinkedInURL,
		FacebookURL: req.FacebookURL,
		TwitterURL:  req.TwitterURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, org)
}

// Delete removes an organization and its backing account.
//
// @Summary      Delete an organization
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Organization ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/organizations/{id} [delete]
func (h *OrganizationHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.identity.DeleteOrganization(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "organization deleted"})
}
