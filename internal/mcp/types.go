package mcp

import (
	"fmt"
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/dates"
)

type createSearchParams struct {
	Name string `json:"name"`
}

type searchIDParams struct {
	ID string `json:"id"`
}

type addOpportunityParams struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	JobURL      string `json:"jobUrl,omitempty"`
	JobSource   string `json:"jobSource,omitempty"`
	RecruiterID string `json:"recruiterId,omitempty"`
	Salary      string `json:"salary,omitempty"`
	Location    string `json:"location,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type updateOpportunityParams struct {
	ID          string  `json:"id"`
	Company     *string `json:"company,omitempty"`
	Position    *string `json:"position,omitempty"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
	JobURL      *string `json:"jobUrl,omitempty"`
	JobSource   *string `json:"jobSource,omitempty"`
	Salary      *string `json:"salary,omitempty"`
	Location    *string `json:"location,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type opportunityIDParams struct {
	ID string `json:"id"`
}

type setStatusParams struct {
	OpportunityID string `json:"opportunityId"`
	Status        string `json:"status"`
}

type addInterviewParams struct {
	OpportunityID string `json:"opportunityId"`
	Date          string `json:"date"`
	Time          string `json:"time,omitempty"`
	Type          string `json:"type,omitempty"`
	Interviewer   string `json:"interviewer,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type updateInterviewParams struct {
	OpportunityID string `json:"opportunityId"`
	InterviewID   string `json:"interviewId"`
	Date          string `json:"date"`
	Time          string `json:"time,omitempty"`
	Type          string `json:"type,omitempty"`
	Interviewer   string `json:"interviewer,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type interviewIDParams struct {
	OpportunityID string `json:"opportunityId"`
	InterviewID   string `json:"interviewId"`
}

type addContactParams struct {
	OpportunityID string `json:"opportunityId"`
	Name          string `json:"name"`
	Role          string `json:"role,omitempty"`
	Company       string `json:"company,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type updateContactParams struct {
	OpportunityID string `json:"opportunityId"`
	ContactID     string `json:"contactId"`
	Name          string `json:"name"`
	Role          string `json:"role,omitempty"`
	Company       string `json:"company,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type contactIDParams struct {
	OpportunityID string `json:"opportunityId"`
	ContactID     string `json:"contactId"`
}

type recruiterParams struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type resourceParams struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

type idParams struct {
	ID string `json:"id"`
}

type logEntryParams struct {
	ID            string `json:"id,omitempty"`
	Date          string `json:"date,omitempty"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	Notes         string `json:"notes,omitempty"`
	OpportunityID string `json:"opportunityId,omitempty"`
	RecruiterID   string `json:"recruiterId,omitempty"`
	OtherContact  string `json:"otherContact,omitempty"`
	ContactMode   string `json:"contactMode,omitempty"`
}

type listOpportunitiesParams struct {
	Status  string `json:"status,omitempty"`
	Query   string `json:"query,omitempty"`
	SortBy  string `json:"sortBy,omitempty"`
	Page    int    `json:"page,omitempty"`
	PerPage int    `json:"perPage,omitempty"`
}

type listLogParams struct {
	Query     string `json:"query,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Page      int    `json:"page,omitempty"`
	PerPage   int    `json:"perPage,omitempty"`
}

type exportSearchParams struct {
	Format string `json:"format"`
	Status string `json:"status,omitempty"`
	Query  string `json:"query,omitempty"`
	SortBy string `json:"sortBy,omitempty"`
}

type exportLogParams struct {
	Query     string `json:"query,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type okResult struct {
	OK bool `json:"ok"`
}

type exportResult struct {
	File  string `json:"file"`
	Bytes int    `json:"bytes"`
}

type searchSummary struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	Closed        int        `json:"closed"`
	ClosedDate    *time.Time `json:"closedDate,omitempty"`
	Opportunities int        `json:"opportunities"`
}

// parseLocalDate turns an optional YYYY-MM-DD parameter into a LocalDate.
func parseLocalDate(s string) (dates.LocalDate, error) {
	if s == "" {
		return "", nil
	}
	return dates.Parse(s)
}

// parseInstant accepts RFC 3339 or YYYY-MM-DD (midnight local) timestamps.
func parseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	d, err := dates.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d.Time(), nil
}
