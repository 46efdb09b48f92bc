package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/policy"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// ReviewService implements review use cases. Authorship comes from the actor;
// updates are author-only while deletion is open to both roles.
type ReviewService struct {
	reviews ports.ReviewRepository
	orgs    ports.OrganizationRepository
	log     zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, orgs ports.OrganizationRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, orgs: orgs, log: log}
}

func (s *ReviewService) ListForOrganization(ctx context.Context, orgID string) ([]*domain.Review, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return s.reviews.ListByOrganization(ctx, org.ID)
}

func (s *ReviewService) Create(ctx context.Context, actor domain.Actor, orgID string, input ports.CreateReviewInput) (*domain.Review, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		AccountID:      actor.AccountID,
		OrganizationID: org.ID,
		Rating:         input.Rating,
		Message:        input.Message,
		CreatedAt:      time.Now().UTC(),
	}
	if err := review.ValidateRating(); err != nil {
		return nil, err
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", created.ID).Str("organization_id", org.ID).Msg("review created")
	return created, nil
}

func (s *ReviewService) Update(ctx context.Context, actor domain.Actor, id string, patch ports.UpdateReviewInput) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.OwnsReview(actor, review) {
		return nil, domain.ErrForbidden
	}

	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}
	if patch.Message != nil {
		review.Message = *patch.Message
	}
	if err := review.ValidateRating(); err != nil {
		return nil, err
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review. Any authenticated volunteer or organization may
// delete, mirroring the platform's broad moderation policy.
func (s *ReviewService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.HasRole(actor, domain.RoleVolunteer) && !policy.HasRole(actor, domain.RoleOrganization) {
		return domain.ErrForbidden
	}
	return s.reviews.Delete(ctx, review.ID)
}
