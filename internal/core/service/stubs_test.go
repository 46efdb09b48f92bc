package service

import (
	"context"
	"fmt"
	"time"

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

// In-memory stubs shared by the service tests.

type stubTxRunner struct {
	calls int
}

func (t *stubTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type stubAccountRepo struct {
	seq      int
	accounts map[string]*domain.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return nil, domain.ErrEmailTaken
		}
		if existing.Username == a.Username {
			return nil, domain.ErrNameTaken
		}
	}
	r.seq++
	clone := *a
	clone.ID = fmt.Sprintf("acc_%d", r.seq)
	r.accounts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) UpdateIdentity(_ context.Context, id, username, email string) error {
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Username = username
	a.Email = email
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

type stubVolunteerRepo struct {
	seq      int
	profiles map[string]*domain.Profile
}

func newStubVolunteerRepo() *stubVolunteerRepo {
	return &stubVolunteerRepo{profiles: make(map[string]*domain.Profile)}
}

func (r *stubVolunteerRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	for _, existing := range r.profiles {
		if existing.Email == p.Email {
			return nil, domain.ErrEmailTaken
		}
		if existing.Name == p.Name {
			return nil, domain.ErrNameTaken
		}
	}
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("prof_%d", r.seq)
	r.profiles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubVolunteerRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubVolunteerRepo) FindByAccountID(_ context.Context, accountID string) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.AccountID == accountID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubVolunteerRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Profile, error) {
	var out []*domain.Profile
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubVolunteerRepo) Update(_ context.Context, p *domain.Profile) error {
	if _, ok := r.profiles[p.ID]; !ok {
		return domain.ErrProfileNotFound
	}
	clone := *p
	r.profiles[p.ID] = &clone
	return nil
}

func (r *stubVolunteerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.profiles[id]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.profiles, id)
	return nil
}

type stubOrganizationRepo struct {
	seq  int
	orgs map[string]*domain.Organization
}

func newStubOrganizationRepo() *stubOrganizationRepo {
	return &stubOrganizationRepo{orgs: make(map[string]*domain.Organization)}
}

func (r *stubOrganizationRepo) Create(_ context.Context, o *domain.Organization) (*domain.Organization, error) {
	for _, existing := range r.orgs {
		if existing.Email == o.Email {
			return nil, domain.ErrEmailTaken
		}
		if existing.Name == o.Name {
			return nil, domain.ErrNameTaken
		}
	}
	r.seq++
	clone := *o
	clone.ID = fmt.Sprintf("org_%d", r.seq)
	r.orgs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOrganizationRepo) FindByID(_ context.Context, id string) (*domain.Organization, error) {
	o, ok := r.orgs[id]
	if !ok {
		return nil, domain.ErrOrganizationNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrganizationRepo) List(_ context.Context, filter ports.ListOrganizationsFilter) ([]*domain.Organization, error) {
	var out []*domain.Organization
	for _, o := range r.orgs {
		if filter.City != "" && o.City != filter.City {
			continue
		}
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubOrganizationRepo) Update(_ context.Context, o *domain.Organization) error {
	if _, ok := r.orgs[o.ID]; !ok {
		return domain.ErrOrganizationNotFound
	}
	clone := *o
	r.orgs[o.ID] = &clone
	return nil
}

func (r *stubOrganizationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orgs[id]; !ok {
		return domain.ErrOrganizationNotFound
	}
	delete(r.orgs, id)
	return nil
}

type stubCauseAreaRepo struct {
	causes map[string]*domain.CauseArea
}

func (r *stubCauseAreaRepo) FindByID(_ context.Context, id string) (*domain.CauseArea, error) {
	c, ok := r.causes[id]
	if !ok {
		return nil, domain.ErrUnknownCauseArea
	}
	return c, nil
}

func (r *stubCauseAreaRepo) List(_ context.Context) ([]*domain.CauseArea, error) {
	var out []*domain.CauseArea
	for _, c := range r.causes {
		out = append(out, c)
	}
	return out, nil
}

type stubSkillRepo struct {
	skills map[string]*domain.Skill
}

func (r *stubSkillRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Skill, error) {
	var out []*domain.Skill
	for _, id := range ids {
		if s, ok := r.skills[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSkillRepo) List(_ context.Context) ([]*domain.Skill, error) {
	var out []*domain.Skill
	for _, s := range r.skills {
		out = append(out, s)
	}
	return out, nil
}

type stubOpportunityRepo struct {
	seq  int
	opps map[string]*domain.Opportunity
}

func newStubOpportunityRepo() *stubOpportunityRepo {
	return &stubOpportunityRepo{opps: make(map[string]*domain.Opportunity)}
}

func (r *stubOpportunityRepo) Create(_ context.Context, o *domain.Opportunity) (*domain.Opportunity, error) {
	r.seq++
	clone := *o
	clone.ID = fmt.Sprintf("opp_%d", r.seq)
	r.opps[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOpportunityRepo) FindByID(_ context.Context, id string) (*domain.Opportunity, error) {
	o, ok := r.opps[id]
	if !ok {
		return nil, domain.ErrOpportunityNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOpportunityRepo) List(_ context.Context, filter ports.ListOpportunitiesFilter) ([]*domain.Opportunity, error) {
	var out []*domain.Opportunity
	for _, o := range r.opps {
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		if filter.OrganizationID != "" && o.OrganizationID != filter.OrganizationID {
			continue
		}
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubOpportunityRepo) ListByOrganization(_ context.Context, orgID string) ([]*domain.Opportunity, error) {
	var out []*domain.Opportunity
	for _, o := range r.opps {
		if o.OrganizationID == orgID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubOpportunityRepo) Update(_ context.Context, o *domain.Opportunity) error {
	if _, ok := r.opps[o.ID]; !ok {
		return domain.ErrOpportunityNotFound
	}
	clone := *o
	r.opps[o.ID] = &clone
	return nil
}

func (r *stubOpportunityRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.opps[id]; !ok {
		return domain.ErrOpportunityNotFound
	}
	delete(r.opps, id)
	return nil
}

type stubApplicationRepo struct {
	seq  int
	apps map[string]*domain.Application
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[string]*domain.Application)}
}

func (r *stubApplicationRepo) Create(_ context.Context, a *domain.Application) (*domain.Application, error) {
	for _, existing := range r.apps {
		if existing.AccountID == a.AccountID && existing.OpportunityID == a.OpportunityID {
			return nil, domain.ErrDuplicateApplication
		}
	}
	r.seq++
	clone := *a
	clone.ID = fmt.Sprintf("app_%d", r.seq)
	r.apps[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubApplicationRepo) ListByOpportunity(_ context.Context, oppID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.OpportunityID == oppID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id, status string) error {
	a, ok := r.apps[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func (r *stubApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.apps[id]; !ok {
		return domain.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

type stubReviewRepo struct {
	seq     int
	reviews map[string]*domain.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, rv *domain.Review) (*domain.Review, error) {
	r.seq++
	clone := *rv
	clone.ID = fmt.Sprintf("rev_%d", r.seq)
	r.reviews[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := *rv
	return &clone, nil
}

func (r *stubReviewRepo) ListByOrganization(_ context.Context, orgID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.OrganizationID == orgID {
			clone := *rv
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Update(_ context.Context, rv *domain.Review) error {
	if _, ok := r.reviews[rv.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	clone := *rv
	r.reviews[rv.ID] = &clone
	return nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

type stubEventRepo struct {
	seq    int
	events map[string]*domain.Event
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[string]*domain.Event)}
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	r.seq++
	clone := *e
	clone.ID = fmt.Sprintf("evt_%d", r.seq)
	r.events[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEventRepo) List(_ context.Context, filter ports.ListEventsFilter) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range r.events {
		if filter.Location != "" && e.Location != filter.Location {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubEventRepo) ListByOrganization(_ context.Context, orgID string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range r.events {
		if e.OrganizationID == orgID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubEventRepo) Update(_ context.Context, e *domain.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	clone := *e
	r.events[e.ID] = &clone
	return nil
}

func (r *stubEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type stubRegistrationRepo struct {
	seq  int
	regs map[string]*domain.EventRegistration
}

func newStubRegistrationRepo() *stubRegistrationRepo {
	return &stubRegistrationRepo{regs: make(map[string]*domain.EventRegistration)}
}

func (r *stubRegistrationRepo) Create(_ context.Context, reg *domain.EventRegistration) (*domain.EventRegistration, error) {
	for _, existing := range r.regs {
		if existing.ProfileID == reg.ProfileID && existing.EventID == reg.EventID {
			return nil, domain.ErrDuplicateRegistration
		}
	}
	r.seq++
	clone := *reg
	clone.ID = fmt.Sprintf("reg_%d", r.seq)
	r.regs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRegistrationRepo) ListByEvent(_ context.Context, eventID string) ([]*domain.EventRegistration, error) {
	var out []*domain.EventRegistration
	for _, reg := range r.regs {
		if reg.EventID == eventID {
			clone := *reg
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubBlacklist struct {
	revoked map[string]time.Duration
}

func newStubBlacklist() *stubBlacklist {
	return &stubBlacklist{revoked: make(map[string]time.Duration)}
}

func (b *stubBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := b.revoked[jti]
	return ok, nil
}

func (b *stubBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	b.revoked[jti] = ttl
	return nil
}
