package policy

import (
	"testing"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

var (
	alice = domain.Actor{AccountID: "acc_1", Username: "alice", Email: "alice@example.com", Role: domain.RoleVolunteer}
	green = domain.Actor{AccountID: "acc_2", Username: "GreenEarth", Email: "contact@greenearth.org", Role: domain.RoleOrganization}
	blue  = domain.Actor{AccountID: "acc_3", Username: "BlueOcean", Email: "hi@blueocean.org", Role: domain.RoleOrganization}
)

func TestHasRole(t *testing.T) {
	if !HasRole(alice, domain.RoleVolunteer) {
		t.Fatalf("volunteer role not recognised")
	}
	if HasRole(alice, domain.RoleOrganization) {
		t.Fatalf("volunteer must not pass organization gate")
	}
	if !HasRole(green, domain.RoleOrganization) {
		t.Fatalf("organization role not recognised")
	}
}

func TestIsSelf(t *testing.T) {
	own := &domain.Profile{ID: "p1", AccountID: "acc_1", Name: "alice"}
	other := &domain.Profile{ID: "p2", AccountID: "acc_9", Name: "bob"}

	if !IsSelf(alice, own) {
		t.Fatalf("actor must own their profile")
	}
	if IsSelf(alice, other) {
		t.Fatalf("actor must not own another profile")
	}
	if IsSelf(alice, nil) {
		t.Fatalf("nil profile must never be owned")
	}
	if IsSelf(domain.Actor{}, &domain.Profile{}) {
		t.Fatalf("empty account IDs must not match")
	}
}

func TestOwnsOrganization(t *testing.T) {
	org := &domain.Organization{ID: "org_1", AccountID: "acc_2", Name: "GreenEarth"}

	if !OwnsOrganization(green, org) {
		t.Fatalf("owner not recognised")
	}
	if OwnsOrganization(blue, org) {
		t.Fatalf("a different organization must not own it")
	}
	if OwnsOrganization(alice, org) {
		t.Fatalf("a volunteer must not own it")
	}
}

func TestOwnsOpportunity(t *testing.T) {
	org := &domain.Organization{ID: "org_1", AccountID: "acc_2", Name: "GreenEarth"}
	opp := &domain.Opportunity{ID: "opp_1", OrganizationID: "org_1"}

	if !OwnsOpportunity(green, opp, org) {
		t.Fatalf("posting organization must own its opportunity")
	}
	if OwnsOpportunity(blue, opp, org) {
		t.Fatalf("another organization must not own it")
	}
	if OwnsOpportunity(green, &domain.Opportunity{ID: "opp_2", OrganizationID: "org_9"}, org) {
		t.Fatalf("mismatched organization reference must not be owned")
	}
}

func TestOwnsReview(t *testing.T) {
	review := &domain.Review{ID: "r1", AccountID: "acc_1", Rating: 4}

	if !OwnsReview(alice, review) {
		t.Fatalf("author must own the review")
	}
	if OwnsReview(green, review) {
		t.Fatalf("non-author must not own the review")
	}
}

func TestOwnsEvent(t *testing.T) {
	org := &domain.Organization{ID: "org_1", AccountID: "acc_2", Name: "GreenEarth"}
	event := &domain.Event{ID: "e1", OrganizationID: "org_1"}

	if !OwnsEvent(green, event, org) {
		t.Fatalf("hosting organization must own its event")
	}
	if OwnsEvent(blue, event, org) {
		t.Fatalf("another organization must not own it")
	}
	if OwnsEvent(green, &domain.Event{ID: "e2", OrganizationID: "org_9"}, org) {
		t.Fatalf("mismatched organization reference must not be owned")
	}
}
