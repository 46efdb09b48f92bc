package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/policy"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// IdentityService owns the pairing between accounts and their volunteer
// profile or organization record. Registration creates both rows in one
// transaction; updates propagate the mirrored username/email; deletes cascade
// to the paired account.
type IdentityService struct {
	accounts ports.AccountRepository
	profiles ports.VolunteerRepository
	orgs     ports.OrganizationRepository
	tx       ports.TxRunner
	log      zerolog.Logger
}

func NewIdentityService(
	accounts ports.AccountRepository,
	profiles ports.VolunteerRepository,
	orgs ports.OrganizationRepository,
	tx ports.TxRunner,
	log zerolog.Logger,
) *IdentityService {
	return &IdentityService{
		accounts: accounts,
		profiles: profiles,
		orgs:     orgs,
		tx:       tx,
		log:      log,
	}
}

// --- Volunteers ---

func (s *IdentityService) RegisterVolunteer(ctx context.Context, input ports.RegisterVolunteerInput) (*domain.Profile, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var profile *domain.Profile

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		account, err := s.accounts.Create(ctx, &domain.Account{
			Username:     input.Name,
			Email:        input.Email,
			PasswordHash: hash,
			Role:         domain.RoleVolunteer,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return err
		}

		profile, err = s.profiles.Create(ctx, &domain.Profile{
			AccountID:   account.ID,
			Name:        input.Name,
			Email:       input.Email,
			PhoneNumber: input.PhoneNumber,
			Address:     input.Address,
			City:        input.City,
			Country:     input.Country,
			DateOfBirth: input.DateOfBirth,
			Bio:         input.Bio,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("profile_id", profile.ID).Str("account_id", profile.AccountID).Msg("volunteer registered")
	return profile, nil
}

func (s *IdentityService) GetVolunteer(ctx context.Context, actor domain.Actor, id string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.IsSelf(actor, profile) {
		return nil, domain.ErrForbidden
	}
	return profile, nil
}

func (s *IdentityService) UpdateVolunteer(ctx context.Context, actor domain.Actor, id string, patch ports.UpdateVolunteerInput) (*domain.Profile, error) {
	profile, err := s.GetVolunteer(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	identityChanged := false
	if patch.Name != nil && *patch.Name != profile.Name {
		profile.Name = *patch.Name
		identityChanged = true
	}
	if patch.Email != nil && *patch.Email != profile.Email {
		profile.Email = *patch.Email
		identityChanged = true
	}
	if patch.PhoneNumber != nil {
		profile.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Address != nil {
		profile.Address = *patch.Address
	}
	if patch.City != nil {
		profile.City = *patch.City
	}
	if patch.Country != nil {
		profile.Country = *patch.Country
	}
	if patch.DateOfBirth != nil {
		profile.DateOfBirth = patch.DateOfBirth
	}
	if patch.Bio != nil {
		profile.Bio = *patch.Bio
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.profiles.Update(ctx, profile); err != nil {
			return err
		}
		if identityChanged {
			return s.accounts.UpdateIdentity(ctx, profile.AccountID, profile.Name, profile.Email)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *IdentityService) DeleteVolunteer(ctx context.Context, actor domain.Actor, id string) error {
	profile, err := s.GetVolunteer(ctx, actor, id)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.profiles.Delete(ctx, profile.ID); err != nil {
			return err
		}
		// The paired account may already be gone; that is not an error.
		if err := s.accounts.Delete(ctx, profile.AccountID); err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("profile_id", profile.ID).Msg("volunteer deleted")
	return nil
}

// --- Organizations ---

func (s *IdentityService) RegisterOrganization(ctx context.Context, input ports.RegisterOrganizationInput) (*domain.Organization, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var org *domain.Organization

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		account, err := s.accounts.Create(ctx, &domain.Account{
			Username:     input.Name,
			Email:        input.Email,
			PasswordHash: hash,
			Role:         domain.RoleOrganization,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return err
		}

		org, err = s.orgs.Create(ctx, &domain.Organization{
			AccountID:   account.ID,
			Name:        input.Name,
			Email:       input.Email,
			Website:     input.Website,
			Address:     input.Address,
			City:        input.City,
			PostalCode:  input.PostalCode,
			Country:     input.Country,
			Phone:       input.Phone,
			Mission:     input.Mission,
			Description: input.Description,
			LinkedInURL: input.LinkedInURL,
			FacebookURL: input.FacebookURL,
			TwitterURL:  input.TwitterURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("organization_id", org.ID).Str("account_id", org.AccountID).Msg("organization registered")
	return org, nil
}

func (s *IdentityService) GetOrganization(ctx context.Context, actor domain.Actor, id string) (*domain.Organization, error) {
	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.OwnsOrganization(actor, org) {
		return nil, domain.ErrForbidden
	}
	return org, nil
}

func (s *IdentityService) ListOrganizations(ctx context.Context, filter ports.ListOrganizationsFilter) ([]*domain.Organization, error) {
	return s.orgs.List(ctx, filter)
}

func (s *IdentityService) UpdateOrganization(ctx context.Context, actor domain.Actor, id string, patch ports.UpdateOrganizationInput) (*domain.Organization, error) {
	org, err := s.GetOrganization(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	identityChanged := false
	if patch.Name != nil && *patch.Name != org.Name {
		org.Name = *patch.Name
		identityChanged = true
	}
	if patch.Email != nil && *patch.Email != org.Email {
		org.Email = *patch.Email
		identityChanged = true
	}
	if patch.Website != nil {
		org.Website = *patch.Website
	}
	if patch.Address != nil {
		org.Address = *patch.Address
	}
	if patch.City != nil {
		org.City = *patch.City
	}
	if patch.PostalCode != nil {
		org.PostalCode = *patch.PostalCode
	}
	if patch.Country != nil {
		org.Country = *patch.Country
	}
	if patch.Phone != nil {
		org.Phone = *patch.Phone
	}
	if patch.Mission != nil {
		org.Mission = *patch.Mission
	}
	if patch.Description != nil {
		org.Description = *patch.Description
	}
	if patch.LinkedInURL != nil {
		org.LinkedInURL = *patch.LinkedInURL
	}
	if patch.FacebookURL != nil {
		org.FacebookURL = *patch.FacebookURL
	}
	if patch.TwitterURL != nil {
		org.TwitterURL = *patch.TwitterURL
	}
	org.UpdatedAt = time.Now().UTC()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.orgs.Update(ctx, org); err != nil {
			return err
		}
		if identityChanged {
			return s.accounts.UpdateIdentity(ctx, org.AccountID, org.Name, org.Email)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return org, nil
}

func (s *IdentityService) DeleteOrganization(ctx context.Context, actor domain.Actor, id string) error {
	org, err := s.GetOrganization(ctx, actor, id)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.orgs.Delete(ctx, org.ID); err != nil {
			return err
		}
		if err := s.accounts.Delete(ctx, org.AccountID); err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("organization_id", org.ID).Msg("organization deleted")
	return nil
}
