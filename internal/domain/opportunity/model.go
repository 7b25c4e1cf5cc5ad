package opportunity

import (
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/dates"
)

// Status is the lifecycle state of an opportunity.
type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusClosed    Status = "closed"
)

var statusLabels = map[Status]string{
	StatusSaved:     "Saved",
	StatusApplied:   "Applied",
	StatusInterview: "Interview",
	StatusOffer:     "Offer",
	StatusRejected:  "Rejected",
	StatusClosed:    "Closed",
}

// Label returns the display name for the status.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Opportunity is one employer/role pursuit. DateApplied records the day of
// the last status change, not the literal application date; the transition
// engine rewrites it whenever the status changes.
type Opportunity struct {
	ID          string          `json:"id"`
	Company     string          `json:"company"`
	Position    string          `json:"position"`
	DateApplied dates.LocalDate `json:"dateApplied"`
	CreatedAt   time.Time       `json:"createdAt"`
	Status      Status          `json:"status"`
	Description string          `json:"description,omitempty"`
	JobURL      string          `json:"jobUrl,omitempty"`
	JobSource   string          `json:"jobSource,omitempty"`
	Salary      string          `json:"salary,omitempty"`
	Location    string          `json:"location,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Interviews  []Interview     `json:"interviews"`
	Contacts    []Contact       `json:"contacts"`
}

// Interview is one scheduled interview round. Adding one forces the parent
// opportunity into the interview status; deleting the last one reverts the
// parent to applied.
type Interview struct {
	ID          string          `json:"id"`
	Date        dates.LocalDate `json:"date"`
	Time        string          `json:"time,omitempty"`
	Type        string          `json:"type,omitempty"`
	Interviewer string          `json:"interviewer,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// Contact is a person attached to an opportunity. Contacts have no status
// side effects.
type Contact struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Patch is an explicit partial update for an opportunity. Nil fields are
// left untouched. Status is carried here but applied by the transition
// engine, which owns the dateApplied and audit-entry side effects.
type Patch struct {
	Company     *string
	Position    *string
	Status      *Status
	Description *string
	JobURL      *string
	JobSource   *string
	Salary      *string
	Location    *string
	Notes       *string
}

// Apply merges the non-nil, non-status fields into o.
func (p Patch) Apply(o *Opportunity) {
	if p.Company != nil {
		o.Company = *p.Company
	}
	if p.Position != nil {
		o.Position = *p.Position
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.JobURL != nil {
		o.JobURL = *p.JobURL
	}
	if p.JobSource != nil {
		o.JobSource = *p.JobSource
	}
	if p.Salary != nil {
		o.Salary = *p.Salary
	}
	if p.Location != nil {
		o.Location = *p.Location
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
}
