package search

import (
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
)

// JobSearch is one named job-hunting campaign and its owned collections.
// At most one search per user is active at a time; closing is a soft delete
// (Closed=1) that moves the search to the archive list.
type JobSearch struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	IsActive      bool                      `json:"isActive"`
	CreatedAt     time.Time                 `json:"createdAt"`
	Closed        int                       `json:"closed"`
	ClosedDate    *time.Time                `json:"closedDate,omitempty"`
	Opportunities []opportunity.Opportunity `json:"opportunities"`
	Recruiters    []Recruiter               `json:"recruiters"`
	Resources     []OnlineResource          `json:"resources"`
	Log           []joblog.Entry            `json:"log"`
}

// Recruiter is an external recruiting contact scoped to one search. Log
// entries and opportunity job sources reference recruiters by id or name;
// they never own them.
type Recruiter struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// OnlineResource is a job board or similar link scoped to one search.
type OnlineResource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// RecruiterSource formats the jobSource value for an opportunity sourced
// through a recruiter.
func RecruiterSource(name string) string {
	return "Recruiter - " + name
}

// Opportunity returns the owned opportunity with the given id, or nil.
func (s *JobSearch) Opportunity(id string) *opportunity.Opportunity {
	for i := range s.Opportunities {
		if s.Opportunities[i].ID == id {
			return &s.Opportunities[i]
		}
	}
	return nil
}

// RecruiterByID returns the owned recruiter with the given id, or nil.
func (s *JobSearch) RecruiterByID(id string) *Recruiter {
	for i := range s.Recruiters {
		if s.Recruiters[i].ID == id {
			return &s.Recruiters[i]
		}
	}
	return nil
}

// ResourceByID returns the owned resource with the given id, or nil.
func (s *JobSearch) ResourceByID(id string) *OnlineResource {
	for i := range s.Resources {
		if s.Resources[i].ID == id {
			return &s.Resources[i]
		}
	}
	return nil
}

// State is the in-memory working set for one user: every loaded search plus
// the currently active one. The controller owns it and passes it explicitly
// to every operation; nothing reads ambient globals.
type State struct {
	UserID   string
	Searches []*JobSearch
	Current  *JobSearch
}

// Active returns the open (non-closed) searches.
func (st *State) Active() []*JobSearch {
	out := make([]*JobSearch, 0, len(st.Searches))
	for _, s := range st.Searches {
		if s.Closed == 0 {
			out = append(out, s)
		}
	}
	return out
}

// Archived returns the soft-closed searches.
func (st *State) Archived() []*JobSearch {
	out := make([]*JobSearch, 0, len(st.Searches))
	for _, s := range st.Searches {
		if s.Closed != 0 {
			out = append(out, s)
		}
	}
	return out
}

func (st *State) find(id string) *JobSearch {
	for _, s := range st.Searches {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// deriveCurrent points Current at the active, non-closed search, if any.
func (st *State) deriveCurrent() {
	st.Current = nil
	for _, s := range st.Searches {
		if s.IsActive && s.Closed == 0 {
			st.Current = s
			return
		}
	}
}
