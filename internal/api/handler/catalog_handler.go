package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// CatalogHandler serves the cause-area and skill catalogs that opportunities
// reference.
type CatalogHandler struct {
	causeAreas ports.CauseAreaRepository
	skills     ports.SkillRepository
}

func NewCatalogHandler(causeAreas ports.CauseAreaRepository, skills ports.SkillRepository) *CatalogHandler {
	return &CatalogHandler{causeAreas: causeAreas, skills: skills}
}

// ListCauseAreas handles GET /v1/cause-areas.
//
// @Summary      List cause areas
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.CauseArea
// @Router       /v1/cause-areas [get]
func (h *CatalogHandler) ListCauseAreas(c echo.Context) error {
	causes, err := h.causeAreas.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, causes)
}

// ListSkills handles GET /v1/skills.
//
// @Summary      List skills
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Skill
// @Router       /v1/skills [get]
func (h *CatalogHandler) ListSkills(c echo.Context) error {
	skills, err := h.skills.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}
