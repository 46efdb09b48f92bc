package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// ReviewHandler handles organization reviews. Authorship comes from the
// authenticated actor; updates are author-only while deletion is open to both
// roles.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"min=0,max=5"`
	Message string `json:"message"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=0,max=5"`
	Message *string `json:"message"`
}

// ListForOrganization returns an organization's reviews. Open to any
// authenticated account.
//
// @Summary      List an organization's reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        orgID  path      string  true  "Organization ID"
// @Success      200    {array}   domain.Review
// @Failure      401    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /v1/organizations/{orgID}/reviews [get]
func (h *ReviewHandler) ListForOrganization(c echo.Context) error {
	reviews, err := h.reviews.ListForOrganization(c.Request().Context(), c.Param("orgID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create posts a review of an organization by the actor.
//
// @Summary      Review an organization
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orgID  path      string               true  "Organization ID"
// @Param        body   body      createReviewRequest  true  "Review"
// @Success      201    {object}  domain.Review
// @Failure      404    {object}  map[string]string
// @Failure      422    {object}  map[string]string
// @Router       /v1/organizations/{orgID}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.reviews.Create(c.Request().Context(), actor, c.Param("orgID"), ports.CreateReviewInput{
		Rating:  req.Rating,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// Update patches the actor's own review.
//
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Review ID"
// @Param        body  body      updateReviewRequest  true  "Fields to update"
// @Success      200   {object}  domain.Review
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.reviews.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateReviewInput{
		Rating:  req.Rating,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// Delete removes a review.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.reviews.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "review deleted"})
}
