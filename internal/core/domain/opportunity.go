package domain

import "time"

// OpportunityStatus is the lifecycle state of an opportunity.
type OpportunityStatus string

const (
	OpportunityOpen   OpportunityStatus = "open"
	OpportunityClosed OpportunityStatus = "closed"
)

// Opportunity is a volunteering position posted by an organization.
type Opportunity struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	OrganizationID string            `json:"organization"`
	Type           string            `json:"opportunity_type"`
	StartDate      time.Time         `json:"start_date"`
	EndDate        time.Time         `json:"end_date"`
	Location       string            `json:"location"`
	CauseAreaID    string            `json:"cause_area"`
	SkillIDs       []string          `json:"skills"`
	Description    string            `json:"description"`
	Requirements   string            `json:"requirements,omitempty"`
	Status         OpportunityStatus `json:"status"`
	DatePosted     time.Time         `json:"date_posted"`
}

// ValidateDates checks the date range invariant.
func (o *Opportunity) ValidateDates() error {
	if o.EndDate.Before(o.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}
