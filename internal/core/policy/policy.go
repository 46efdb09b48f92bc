// Package policy holds the pure authorization predicates. Every predicate is
// a side-effect-free function over an authenticated actor and a resolved
// target entity; callers translate a false result into domain.ErrForbidden.
package policy

import "github.com/voluntree/volunteer-api/internal/core/domain"

// HasRole reports whether the actor holds the given role.
func HasRole(actor domain.Actor, role domain.Role) bool {
	return actor.Role == role
}

// IsSelf reports whether the profile belongs to the actor's account.
func IsSelf(actor domain.Actor, profile *domain.Profile) bool {
	return profile != nil && profile.AccountID != "" && profile.AccountID == actor.AccountID
}

// OwnsOrganization reports whether the organization belongs to the actor's
// account.
func OwnsOrganization(actor domain.Actor, org *domain.Organization) bool {
	return org != nil && org.AccountID != "" && org.AccountID == actor.AccountID
}

// OwnsOpportunity reports whether the actor owns the organization that posted
// the opportunity. The caller resolves the organization; an opportunity not
// belonging to org is never owned.
func OwnsOpportunity(actor domain.Actor, opp *domain.Opportunity, org *domain.Organization) bool {
	if opp == nil || org == nil || opp.OrganizationID != org.ID {
		return false
	}
	return OwnsOrganization(actor, org)
}

// OwnsReview reports whether the actor authored the review.
func OwnsReview(actor domain.Actor, review *domain.Review) bool {
	return review != nil && review.AccountID != "" && review.AccountID == actor.AccountID
}

// OwnsEvent reports whether the actor owns the organization hosting the event.
func OwnsEvent(actor domain.Actor, event *domain.Event, org *domain.Organization) bool {
	if event == nil || org == nil || event.OrganizationID != org.ID {
		return false
	}
	return OwnsOrganization(actor, org)
}
