package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/dates"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
)

// Snapshot is the structured JSON export of a search: metadata, summary
// counts, and the filtered opportunity set with nested interviews and
// contacts, plus every recruiter and resource.
type Snapshot struct {
	SearchName    string                  `json:"searchName"`
	IsActive      bool                    `json:"isActive"`
	CreatedAt     time.Time               `json:"createdAt"`
	ExportedAt    time.Time               `json:"exportedAt"`
	Summary       opportunity.Counts      `json:"summary"`
	Opportunities []SnapshotOpportunity   `json:"opportunities"`
	Recruiters    []search.Recruiter      `json:"recruiters"`
	Resources     []search.OnlineResource `json:"resources"`
}

// SnapshotOpportunity mirrors the opportunity with the status mapped to
// its display label.
type SnapshotOpportunity struct {
	ID          string                  `json:"id"`
	Company     string                  `json:"company"`
	Position    string                  `json:"position"`
	DateApplied dates.LocalDate         `json:"dateApplied"`
	Status      string                  `json:"status"`
	Description string                  `json:"description,omitempty"`
	JobURL      string                  `json:"jobUrl,omitempty"`
	JobSource   string                  `json:"jobSource,omitempty"`
	Salary      string                  `json:"salary,omitempty"`
	Location    string                  `json:"location,omitempty"`
	Notes       string                  `json:"notes,omitempty"`
	Interviews  []opportunity.Interview `json:"interviews"`
	Contacts    []opportunity.Contact   `json:"contacts"`
}

// JSONSnapshot serializes the filtered opportunity set as a snapshot
// document and returns the bytes with the export filename.
func JSONSnapshot(js *search.JobSearch, opps []opportunity.Opportunity, now time.Time) ([]byte, string, error) {
	if len(opps) == 0 {
		return nil, "", ErrEmptyExport
	}

	snap := Snapshot{
		SearchName: js.Name,
		IsActive:   js.IsActive,
		CreatedAt:  js.CreatedAt,
		ExportedAt: now,
		Summary:    opportunity.Summarize(js.Opportunities),
		Recruiters: js.Recruiters,
		Resources:  js.Resources,
	}
	snap.Opportunities = make([]SnapshotOpportunity, 0, len(opps))
	for _, o := range opps {
		interviews := o.Interviews
		if interviews == nil {
			interviews = []opportunity.Interview{}
		}
		contacts := o.Contacts
		if contacts == nil {
			contacts = []opportunity.Contact{}
		}
		snap.Opportunities = append(snap.Opportunities, SnapshotOpportunity{
			ID:          o.ID,
			Company:     o.Company,
			Position:    o.Position,
			DateApplied: o.DateApplied,
			Status:      o.Status.Label(),
			Description: o.Description,
			JobURL:      o.JobURL,
			JobSource:   o.JobSource,
			Salary:      o.Salary,
			Location:    o.Location,
			Notes:       o.Notes,
			Interviews:  interviews,
			Contacts:    contacts,
		})
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, JSONFilename(js.Name), nil
}
