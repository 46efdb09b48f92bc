package domain

import "time"

// Role is the closed set of identities an Account can hold. An account is
// either a volunteer (paired with a Profile) or an organization (paired with
// an Organization record), never both.
type Role string

const (
	RoleVolunteer    Role = "volunteer"
	RoleOrganization Role = "organization"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r == RoleVolunteer || r == RoleOrganization
}

// Account is the authentication root. Every Profile and every Organization is
// backed by exactly one Account; the paired record keeps a back-reference to
// the account ID so the linkage never depends on string matching.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the authenticated identity carried through a request, extracted
// from verified token claims.
type Actor struct {
	AccountID string
	Username  string
	Email     string
	Role      Role
}
