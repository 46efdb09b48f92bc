package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

type identityFixture struct {
	accounts *stubAccountRepo
	profiles *stubVolunteerRepo
	orgs     *stubOrganizationRepo
	tx       *stubTxRunner
	svc      *IdentityService
}

func newIdentityFixture() *identityFixture {
	f := &identityFixture{
		accounts: newStubAccountRepo(),
		profiles: newStubVolunteerRepo(),
		orgs:     newStubOrganizationRepo(),
		tx:       &stubTxRunner{},
	}
	f.svc = NewIdentityService(f.accounts, f.profiles, f.orgs, f.tx, zerolog.Nop())
	return f
}

func (f *identityFixture) registerVolunteer(t *testing.T, name, email string) (*domain.Profile, domain.Actor) {
	t.Helper()
	profile, err := f.svc.RegisterVolunteer(context.Background(), ports.RegisterVolunteerInput{
		Name: name, Password: "pw1", Email: email,
	})
	if err != nil {
		t.Fatalf("register volunteer: %v", err)
	}
	return profile, domain.Actor{AccountID: profile.AccountID, Username: name, Email: email, Role: domain.RoleVolunteer}
}

func (f *identityFixture) registerOrganization(t *testing.T, name, email string) (*domain.Organization, domain.Actor) {
	t.Helper()
	org, err := f.svc.RegisterOrganization(context.Background(), ports.RegisterOrganizationInput{
		Name: name, Password: "pw1", Email: email, Address: "1 Main St", City: "Lisbon",
		PostalCode: "1000", Country: "PT", Phone: "123", Mission: "m", Description: "d",
	})
	if err != nil {
		t.Fatalf("register organization: %v", err)
	}
	return org, domain.Actor{AccountID: org.AccountID, Username: name, Email: email, Role: domain.RoleOrganization}
}

func TestIdentityService_RegisterVolunteer_CreatesPairedAccount(t *testing.T) {
	f := newIdentityFixture()

	profile, _ := f.registerVolunteer(t, "alice", "alice@example.com")

	account, err := f.accounts.FindByID(context.Background(), profile.AccountID)
	if err != nil {
		t.Fatalf("paired account missing: %v", err)
	}
	if account.Email != profile.Email || account.Username != profile.Name {
		t.Fatalf("identity mismatch: account %q/%q, profile %q/%q",
			account.Username, account.Email, profile.Name, profile.Email)
	}
	if account.Role != domain.RoleVolunteer {
		t.Fatalf("expected volunteer role, got %s", account.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("pw1")) != nil {
		t.Fatalf("password not hashed with bcrypt")
	}
	if f.tx.calls == 0 {
		t.Fatalf("registration must run inside a transaction")
	}
}

func TestIdentityService_RegisterVolunteer_DuplicateEmail(t *testing.T) {
	f := newIdentityFixture()
	f.registerVolunteer(t, "alice", "alice@example.com")

	_, err := f.svc.RegisterVolunteer(context.Background(), ports.RegisterVolunteerInput{
		Name: "alice2", Password: "pw2", Email: "alice@example.com",
	})
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestIdentityService_GetVolunteer_Disclosure(t *testing.T) {
	f := newIdentityFixture()
	profile, alice := f.registerVolunteer(t, "alice", "alice@example.com")
	_, bob := f.registerVolunteer(t, "bob", "bob@example.com")

	if _, err := f.svc.GetVolunteer(context.Background(), alice, profile.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	// Existing but foreign rows are Forbidden, missing rows are NotFound.
	if _, err := f.svc.GetVolunteer(context.Background(), bob, profile.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.svc.GetVolunteer(context.Background(), alice, "missing"); err != domain.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestIdentityService_UpdateVolunteer_PropagatesIdentity(t *testing.T) {
	f := newIdentityFixture()
	profile, alice := f.registerVolunteer(t, "alice", "alice@example.com")

	newEmail := "alice@new.example.com"
	newName := "alice-renamed"
	updated, err := f.svc.UpdateVolunteer(context.Background(), alice, profile.ID, ports.UpdateVolunteerInput{
		Name: &newName, Email: &newEmail,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != newName || updated.Email != newEmail {
		t.Fatalf("patch not applied: %+v", updated)
	}

	account, err := f.accounts.FindByID(context.Background(), profile.AccountID)
	if err != nil {
		t.Fatalf("account lookup: %v", err)
	}
	if account.Username != newName || account.Email != newEmail {
		t.Fatalf("account not synchronized: %q/%q", account.Username, account.Email)
	}
}

func TestIdentityService_UpdateVolunteer_PartialPatchKeepsIdentity(t *testing.T) {
	f := newIdentityFixture()
	profile, alice := f.registerVolunteer(t, "alice", "alice@example.com")

	city := "Porto"
	if _, err := f.svc.UpdateVolunteer(context.Background(), alice, profile.ID, ports.UpdateVolunteerInput{City: &city}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	account, _ := f.accounts.FindByID(context.Background(), profile.AccountID)
	if account.Username != "alice" || account.Email != "alice@example.com" {
		t.Fatalf("identity must not change on a city-only patch: %+v", account)
	}
}

func TestIdentityService_DeleteVolunteer_CascadesToAccount(t *testing.T) {
	f := newIdentityFixture()
	profile, alice := f.registerVolunteer(t, "alice", "alice@example.com")

	if err := f.svc.DeleteVolunteer(context.Background(), alice, profile.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := f.profiles.FindByID(context.Background(), profile.ID); err != domain.ErrProfileNotFound {
		t.Fatalf("profile still present: %v", err)
	}
	if _, err := f.accounts.FindByID(context.Background(), profile.AccountID); err != domain.ErrAccountNotFound {
		t.Fatalf("paired account still present: %v", err)
	}
}

func TestIdentityService_DeleteVolunteer_MissingAccountStillSucceeds(t *testing.T) {
	f := newIdentityFixture()
	profile, alice := f.registerVolunteer(t, "alice", "alice@example.com")

	if err := f.accounts.Delete(context.Background(), profile.AccountID); err != nil {
		t.Fatalf("delete account: %v", err)
	}
	if err := f.svc.DeleteVolunteer(context.Background(), alice, profile.ID); err != nil {
		t.Fatalf("profile delete must succeed without a paired account: %v", err)
	}
}

func TestIdentityService_RegisterOrganization_CreatesPairedAccount(t *testing.T) {
	f := newIdentityFixture()

	org, _ := f.registerOrganization(t, "GreenEarth", "contact@greenearth.org")

	account, err := f.accounts.FindByID(context.Background(), org.AccountID)
	if err != nil {
		t.Fatalf("paired account missing: %v", err)
	}
	if account.Role != domain.RoleOrganization {
		t.Fatalf("expected organization role, got %s", account.Role)
	}
	if account.Username != org.Name || account.Email != org.Email {
		t.Fatalf("identity mismatch: %q/%q", account.Username, account.Email)
	}
}

func TestIdentityService_OrganizationOwnershipChecks(t *testing.T) {
	f := newIdentityFixture()
	org, green := f.registerOrganization(t, "GreenEarth", "contact@greenearth.org")
	_, blue := f.registerOrganization(t, "BlueOcean", "hi@blueocean.org")

	if _, err := f.svc.GetOrganization(context.Background(), green, org.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := f.svc.GetOrganization(context.Background(), blue, org.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for another organization, got %v", err)
	}
	if _, err := f.svc.GetOrganization(context.Background(), green, "missing"); err != domain.ErrOrganizationNotFound {
		t.Fatalf("expected ErrOrganizationNotFound, got %v", err)
	}
}

func TestIdentityService_DeleteOrganization_CascadesToAccount(t *testing.T) {
	f := newIdentityFixture()
	org, green := f.registerOrganization(t, "GreenEarth", "contact@greenearth.org")

	if err := f.svc.DeleteOrganization(context.Background(), green, org.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := f.accounts.FindByID(context.Background(), org.AccountID); err != domain.ErrAccountNotFound {
		t.Fatalf("paired account still present: %v", err)
	}
}
