package search

import (
	"context"
	"strings"
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/dates"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/ids"
)

// OpportunityInput carries the user-entered fields for a new opportunity.
type OpportunityInput struct {
	Company     string
	Position    string
	Status      opportunity.Status
	Description string
	JobURL      string
	JobSource   string
	Salary      string
	Location    string
	Notes       string
}

// InterviewInput carries the user-entered fields for an interview.
type InterviewInput struct {
	Date        dates.LocalDate
	Time        string
	Type        string
	Interviewer string
	Notes       string
}

// ContactInput carries the user-entered fields for a contact.
type ContactInput struct {
	Name    string
	Role    string
	Company string
	Email   string
	Phone   string
	Notes   string
}

// AddOpportunity creates an opportunity on the current search and appends
// the automated "Job Added" audit entry.
func (s *Service) AddOpportunity(ctx context.Context, st *State, in OpportunityInput) (*opportunity.Opportunity, error) {
	js, err := s.current(st)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Company) == "" || strings.TrimSpace(in.Position) == "" {
		return nil, ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = opportunity.StatusSaved
	}
	if !status.Valid() {
		return nil, ErrInvalidInput
	}
	now := time.Now()
	opp := opportunity.Opportunity{
		ID:          ids.New(),
		Company:     in.Company,
		Position:    in.Position,
		DateApplied: dates.Today(now),
		CreatedAt:   now,
		Status:      status,
		Description: in.Description,
		JobURL:      in.JobURL,
		JobSource:   in.JobSource,
		Salary:      in.Salary,
		Location:    in.Location,
		Notes:       in.Notes,
	}
	js.Opportunities = append(js.Opportunities, opp)
	s.appendStatusEntry(js, "", status.Label(), &opp)
	s.saveAndReload(ctx, st, js)
	return &opp, nil
}

// UpdateOpportunity merges a patch into an opportunity. A status change in
// the patch goes through the transition engine (last-changed date rewrite
// plus audit entry); edits that leave the status alone never touch the
// date and never log.
func (s *Service) UpdateOpportunity(ctx context.Context, st *State, id string, patch opportunity.Patch) (*opportunity.Opportunity, error) {
	js, err := s.current(st)
	if err != nil {
		return nil, err
	}
	opp := js.Opportunity(id)
	if opp == nil {
		return nil, ErrOpportunityNotFound
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, ErrInvalidInput
	}
	if (patch.Company != nil && strings.TrimSpace(*patch.Company) == "") ||
		(patch.Position != nil && strings.TrimSpace(*patch.Position) == "") {
		return nil, ErrInvalidInput
	}
	patch.Apply(opp)
	if patch.Status != nil && *patch.Status != opp.Status {
		s.transition(js, opp, *patch.Status)
	}
	updated := *opp
	s.saveAndReload(ctx, st, js)
	return &updated, nil
}

// DeleteOpportunity removes an opportunity from the current search.
func (s *Service) DeleteOpportunity(ctx context.Context, st *State, id string) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	kept := js.Opportunities[:0]
	found := false
	for _, opp := range js.Opportunities {
		if opp.ID == id {
			found = true
			continue
		}
		kept = append(kept, opp)
	}
	if !found {
		return ErrOpportunityNotFound
	}
	js.Opportunities = kept
	s.saveAndReload(ctx, st, js)
	return nil
}

// ApplyStatusChange replaces an opportunity's status via the quick-change
// path. Equal statuses are a no-op: nothing is written, nothing is logged.
func (s *Service) ApplyStatusChange(ctx context.Context, st *State, opportunityID string, newStatus opportunity.Status) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	opp := js.Opportunity(opportunityID)
	if opp == nil {
		return ErrOpportunityNotFound
	}
	if !newStatus.Valid() {
		return ErrInvalidInput
	}
	if opp.Status == newStatus {
		return nil
	}
	s.transition(js, opp, newStatus)
	s.saveAndReload(ctx, st, js)
	return nil
}

// transition applies a direct status change: new status, last-changed date
// stamped to today, one automated audit entry.
func (s *Service) transition(js *JobSearch, opp *opportunity.Opportunity, newStatus opportunity.Status) {
	old := opp.Status
	opp.Status = newStatus
	opp.DateApplied = dates.Today(time.Now())
	s.appendStatusEntry(js, old.Label(), newStatus.Label(), opp)
}

func (s *Service) appendStatusEntry(js *JobSearch, oldLabel, newLabel string, opp *opportunity.Opportunity) {
	e := joblog.StatusChangeEntry(oldLabel, newLabel, opp.Company, opp.Position, time.Now())
	e.OpportunityID = opp.ID
	appendEntry(js, e)
}

// AddInterview attaches an interview and forces the opportunity into the
// interview status regardless of its prior status. The audit entry is only
// emitted when the status actually changed; interview-driven transitions
// leave the last-changed date alone.
func (s *Service) AddInterview(ctx context.Context, st *State, opportunityID string, in InterviewInput) (*opportunity.Interview, error) {
	js, err := s.current(st)
	if err != nil {
		return nil, err
	}
	opp := js.Opportunity(opportunityID)
	if opp == nil {
		return nil, ErrOpportunityNotFound
	}
	if in.Date.IsZero() {
		return nil, ErrInvalidInput
	}
	iv := opportunity.Interview{
		ID:          ids.New(),
		Date:        in.Date,
		Time:        in.Time,
		Type:        in.Type,
		Interviewer: in.Interviewer,
		Notes:       in.Notes,
	}
	opp.Interviews = append(opp.Interviews, iv)
	if opp.Status != opportunity.StatusInterview {
		old := opp.Status
		opp.Status = opportunity.StatusInterview
		s.appendStatusEntry(js, old.Label(), opportunity.StatusInterview.Label(), opp)
	}
	s.saveAndReload(ctx, st, js)
	return &iv, nil
}

// UpdateInterview replaces an interview's fields. No status side effects.
func (s *Service) UpdateInterview(ctx context.Context, st *State, opportunityID, interviewID string, in InterviewInput) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	opp := js.Opportunity(opportunityID)
	if opp == nil {
		return ErrOpportunityNotFound
	}
	if in.Date.IsZero() {
		return ErrInvalidInput
	}
	for i := range opp.Interviews {
		if opp.Interviews[i].ID == interviewID {
			opp.Interviews[i].Date = in.Date
			opp.Interviews[i].Time = in.Time
			opp.Interviews[i].Type = in.Type
			opp.Interviews[i].Interviewer = in.Interviewer
			opp.Interviews[i].Notes = in.Notes
			s.saveAndReload(ctx, st, js)
			return nil
		}
	}
	return ErrInterviewNotFound
}

// DeleteInterview removes an interview. Removing the last one reverts the
// opportunity to applied — never any other status — and emits an audit
// entry only when that differs from the status immediately prior.
func (s *Service) DeleteInterview(ctx context.Context, st *State, opportunityID, interviewID string) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	opp := js.Opportunity(opportunityID)
	if opp == nil {
		return ErrOpportunityNotFound
	}
	kept := opp.Interviews[:0]
	found := false
	for _, iv := range opp.Interviews {
		if iv.ID == interviewID {
			found = true
			continue
		}
		kept = append(kept, iv)
	}
	if !found {
		return ErrInterviewNotFound
	}
	opp.Interviews = kept
	if len(opp.Interviews) == 0 && opp.Status != opportunity.StatusApplied {
		old := opp.Status
		opp.Status = opportunity.StatusApplied
		s.appendStatusEntry(js, old.Label(), opportunity.StatusApplied.Label(), opp)
	}
	s.saveAndReload(ctx, st, js)
	return nil
}

// AddContact attaches a contact to an opportunity. Contacts have no status
// side effects.
func (s *Service) AddContact(ctx context.Context, st *State, opportunityID string, in ContactInput) (*opportunity.Contact, error) {
	js, err := s.current(st)
	if err != nil {
		return nil, err
	}
	opp := js.Opportunity(opportunityID)
	if opp == nil {
		return nil, ErrOpportunityNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalidInput
	}
	c := opportunity.Contact{
		ID:      ids.New(),
		Name:    in.Name,
		Role:    in.Role,
		Company: in.Company,
		Email:   in.Email,
		Phone:   in.Phone,
		Notes:   in.Notes,
	}
	opp.Contacts = append(opp.Contacts, c)
	s.saveAndReload(ctx, st, js)
	return &c, nil
}

// UpdateContact replaces a contact's fields.
func (s *Service) UpdateContact(ctx context.Context, st *State, opportunityID, contactID string, in ContactInput) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	opp := js.Opportunity(opportunityID)
	if opp == nil {
		return ErrOpportunityNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	for i := range opp.Contacts {
		if opp.Contacts[i].ID == contactID {
			opp.Contacts[i].Name = in.Name
			opp.Contacts[i].Role = in.Role
			opp.Contacts[i].Company = in.Company
			opp.Contacts[i].Email = in.Email
			opp.Contacts[i].Phone = in.Phone
			opp.Contacts[i].Notes = in.Notes
			s.saveAndReload(ctx, st, js)
			return nil
		}
	}
	return ErrContactNotFound
}

// DeleteContact removes a contact from an opportunity.
func (s *Service) DeleteContact(ctx context.Context, st *State, opportunityID, contactID string) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	opp := js.Opportunity(opportunityID)
	if opp == nil {
		return ErrOpportunityNotFound
	}
	kept := opp.Contacts[:0]
	found := false
	for _, c := range opp.Contacts {
		if c.ID == contactID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrContactNotFound
	}
	opp.Contacts = kept
	s.saveAndReload(ctx, st, js)
	return nil
}
