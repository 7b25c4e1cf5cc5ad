package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/dates"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
)

// activeState seeds one active search and returns the working pieces.
func activeState(t *testing.T) (*search.Service, *search.State, *search.JobSearch) {
	t.Helper()
	js := &search.JobSearch{ID: "s1", Name: "Hunt", IsActive: true, CreatedAt: time.Now()}
	store := &fakeStore{searches: []*search.JobSearch{js}}
	svc := search.NewService(store, nil)
	return svc, newState(store), js
}

func seedOpportunity(js *search.JobSearch, id string, status opportunity.Status) {
	js.Opportunities = append(js.Opportunities, opportunity.Opportunity{
		ID:          id,
		Company:     "Acme Corp",
		Position:    "Engineer",
		Status:      status,
		DateApplied: "2026-01-01",
		CreatedAt:   time.Now().Add(-72 * time.Hour),
	})
}

func TestAddOpportunity(t *testing.T) {
	svc, st, js := activeState(t)
	ctx := context.Background()

	opp, err := svc.AddOpportunity(ctx, st, search.OpportunityInput{
		Company:  "Acme Corp",
		Position: "Engineer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, opp.ID)
	require.Equal(t, opportunity.StatusSaved, opp.Status)
	require.Equal(t, dates.Today(time.Now()), opp.DateApplied)
	require.Len(t, js.Opportunities, 1)

	// One automated audit entry, worded for a new job.
	require.Len(t, js.Log, 1)
	e := js.Log[0]
	require.Equal(t, joblog.TypeStatusChange, e.Type)
	require.Equal(t, `Job Added - Status set to "Saved"`, e.Description)
	require.Equal(t, "Automated entry for Engineer at Acme Corp", e.Notes)
	require.Equal(t, opp.ID, e.OpportunityID)
	require.NotEmpty(t, e.ID)
}

func TestAddOpportunityValidation(t *testing.T) {
	svc, st, _ := activeState(t)
	ctx := context.Background()

	_, err := svc.AddOpportunity(ctx, st, search.OpportunityInput{Company: " ", Position: "Engineer"})
	require.ErrorIs(t, err, search.ErrInvalidInput)

	_, err = svc.AddOpportunity(ctx, st, search.OpportunityInput{Company: "Acme", Position: ""})
	require.ErrorIs(t, err, search.ErrInvalidInput)

	_, err = svc.AddOpportunity(ctx, st, search.OpportunityInput{
		Company: "Acme", Position: "Engineer", Status: "bogus",
	})
	require.ErrorIs(t, err, search.ErrInvalidInput)
}

func TestAddOpportunityNoCurrentSearch(t *testing.T) {
	store := &fakeStore{}
	svc := search.NewService(store, nil)
	st := newState(store)

	_, err := svc.AddOpportunity(context.Background(), st, search.OpportunityInput{
		Company: "Acme", Position: "Engineer",
	})
	require.ErrorIs(t, err, search.ErrNoCurrentSearch)
}

func TestApplyStatusChange(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusApplied)

	err := svc.ApplyStatusChange(context.Background(), st, "o1", opportunity.StatusInterview)
	require.NoError(t, err)

	opp := js.Opportunity("o1")
	require.Equal(t, opportunity.StatusInterview, opp.Status)
	// Every direct transition stamps the last-changed date to today.
	require.Equal(t, dates.Today(time.Now()), opp.DateApplied)

	require.Len(t, js.Log, 1)
	require.Equal(t, `Status changed from "Applied" to "Interview"`, js.Log[0].Description)
	require.Equal(t, "o1", js.Log[0].OpportunityID)
}

func TestApplyStatusChangeSameStatusIsNoOp(t *testing.T) {
	js := &search.JobSearch{ID: "s1", Name: "Hunt", IsActive: true}
	seedOpportunity(js, "o1", opportunity.StatusApplied)
	store := &fakeStore{searches: []*search.JobSearch{js}}
	svc := search.NewService(store, nil)
	st := newState(store)

	err := svc.ApplyStatusChange(context.Background(), st, "o1", opportunity.StatusApplied)
	require.NoError(t, err)

	opp := js.Opportunity("o1")
	require.Equal(t, dates.LocalDate("2026-01-01"), opp.DateApplied)
	require.Empty(t, js.Log)
	require.Zero(t, store.saves)
}

func TestApplyStatusChangeErrors(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusApplied)
	ctx := context.Background()

	require.ErrorIs(t, svc.ApplyStatusChange(ctx, st, "missing", opportunity.StatusOffer), search.ErrOpportunityNotFound)
	require.ErrorIs(t, svc.ApplyStatusChange(ctx, st, "o1", "bogus"), search.ErrInvalidInput)
}

func TestUpdateOpportunityWithStatusChange(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusSaved)

	notes := "spoke to the team"
	status := opportunity.StatusApplied
	updated, err := svc.UpdateOpportunity(context.Background(), st, "o1", opportunity.Patch{
		Notes:  &notes,
		Status: &status,
	})
	require.NoError(t, err)
	require.Equal(t, "spoke to the team", updated.Notes)
	require.Equal(t, opportunity.StatusApplied, updated.Status)
	require.Equal(t, dates.Today(time.Now()), updated.DateApplied)
	require.Len(t, js.Log, 1)
	require.Equal(t, `Status changed from "Saved" to "Applied"`, js.Log[0].Description)
}

func TestUpdateOpportunityWithoutStatusChange(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusApplied)

	// A field edit that leaves the status alone never touches the date and
	// never logs. Passing the same status counts as leaving it alone.
	salary := "$150k"
	status := opportunity.StatusApplied
	updated, err := svc.UpdateOpportunity(context.Background(), st, "o1", opportunity.Patch{
		Salary: &salary,
		Status: &status,
	})
	require.NoError(t, err)
	require.Equal(t, "$150k", updated.Salary)
	require.Equal(t, dates.LocalDate("2026-01-01"), updated.DateApplied)
	require.Empty(t, js.Log)
}

func TestUpdateOpportunityValidation(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusApplied)
	ctx := context.Background()

	blank := "  "
	_, err := svc.UpdateOpportunity(ctx, st, "o1", opportunity.Patch{Company: &blank})
	require.ErrorIs(t, err, search.ErrInvalidInput)

	bogus := opportunity.Status("bogus")
	_, err = svc.UpdateOpportunity(ctx, st, "o1", opportunity.Patch{Status: &bogus})
	require.ErrorIs(t, err, search.ErrInvalidInput)

	_, err = svc.UpdateOpportunity(ctx, st, "missing", opportunity.Patch{})
	require.ErrorIs(t, err, search.ErrOpportunityNotFound)
}

func TestDeleteOpportunity(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusApplied)
	seedOpportunity(js, "o2", opportunity.StatusSaved)
	ctx := context.Background()

	require.NoError(t, svc.DeleteOpportunity(ctx, st, "o1"))
	require.Len(t, js.Opportunities, 1)
	require.Equal(t, "o2", js.Opportunities[0].ID)

	require.ErrorIs(t, svc.DeleteOpportunity(ctx, st, "o1"), search.ErrOpportunityNotFound)
}

func TestAddInterviewForcesInterviewStatus(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusSaved)

	iv, err := svc.AddInterview(context.Background(), st, "o1", search.InterviewInput{
		Date: "2026-04-01",
		Time: "10:00",
		Type: "phone screen",
	})
	require.NoError(t, err)
	require.NotEmpty(t, iv.ID)

	opp := js.Opportunity("o1")
	require.Equal(t, opportunity.StatusInterview, opp.Status)
	require.Len(t, opp.Interviews, 1)
	// Interview-driven transitions do not stamp the last-changed date.
	require.Equal(t, dates.LocalDate("2026-01-01"), opp.DateApplied)
	require.Len(t, js.Log, 1)
	require.Equal(t, `Status changed from "Saved" to "Interview"`, js.Log[0].Description)

	// A second interview changes nothing status-wise, so no new entry.
	_, err = svc.AddInterview(context.Background(), st, "o1", search.InterviewInput{Date: "2026-04-08"})
	require.NoError(t, err)
	require.Len(t, opp.Interviews, 2)
	require.Len(t, js.Log, 1)
}

func TestAddInterviewValidation(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusSaved)
	ctx := context.Background()

	_, err := svc.AddInterview(ctx, st, "o1", search.InterviewInput{})
	require.ErrorIs(t, err, search.ErrInvalidInput)

	_, err = svc.AddInterview(ctx, st, "missing", search.InterviewInput{Date: "2026-04-01"})
	require.ErrorIs(t, err, search.ErrOpportunityNotFound)
}

func TestUpdateInterview(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusSaved)
	ctx := context.Background()

	iv, err := svc.AddInterview(ctx, st, "o1", search.InterviewInput{Date: "2026-04-01"})
	require.NoError(t, err)

	err = svc.UpdateInterview(ctx, st, "o1", iv.ID, search.InterviewInput{
		Date:        "2026-04-02",
		Interviewer: "Dana",
	})
	require.NoError(t, err)

	opp := js.Opportunity("o1")
	require.Equal(t, dates.LocalDate("2026-04-02"), opp.Interviews[0].Date)
	require.Equal(t, "Dana", opp.Interviews[0].Interviewer)

	require.ErrorIs(t,
		svc.UpdateInterview(ctx, st, "o1", "missing", search.InterviewInput{Date: "2026-04-02"}),
		search.ErrInterviewNotFound)
}

func TestDeleteLastInterviewRevertsToApplied(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusOffer)
	ctx := context.Background()

	iv1, err := svc.AddInterview(ctx, st, "o1", search.InterviewInput{Date: "2026-04-01"})
	require.NoError(t, err)
	iv2, err := svc.AddInterview(ctx, st, "o1", search.InterviewInput{Date: "2026-04-08"})
	require.NoError(t, err)

	opp := js.Opportunity("o1")
	entriesBefore := len(js.Log)

	// Deleting one of two interviews leaves the status alone.
	require.NoError(t, svc.DeleteInterview(ctx, st, "o1", iv1.ID))
	require.Equal(t, opportunity.StatusInterview, opp.Status)
	require.Len(t, js.Log, entriesBefore)

	// Deleting the last one reverts to applied, with an audit entry.
	require.NoError(t, svc.DeleteInterview(ctx, st, "o1", iv2.ID))
	require.Equal(t, opportunity.StatusApplied, opp.Status)
	require.Len(t, js.Log, entriesBefore+1)
	require.Equal(t, `Status changed from "Interview" to "Applied"`, js.Log[len(js.Log)-1].Description)

	require.ErrorIs(t, svc.DeleteInterview(ctx, st, "o1", iv2.ID), search.ErrInterviewNotFound)
}

func TestContactLifecycle(t *testing.T) {
	svc, st, js := activeState(t)
	seedOpportunity(js, "o1", opportunity.StatusApplied)
	ctx := context.Background()

	c, err := svc.AddContact(ctx, st, "o1", search.ContactInput{Name: "Dana", Role: "Manager"})
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)

	opp := js.Opportunity("o1")
	require.Len(t, opp.Contacts, 1)
	// Contacts never touch status, date, or log.
	require.Equal(t, opportunity.StatusApplied, opp.Status)
	require.Empty(t, js.Log)

	require.NoError(t, svc.UpdateContact(ctx, st, "o1", c.ID, search.ContactInput{
		Name:  "Dana Lee",
		Email: "dana@acme.test",
	}))
	require.Equal(t, "Dana Lee", opp.Contacts[0].Name)
	require.Equal(t, "dana@acme.test", opp.Contacts[0].Email)

	_, err = svc.AddContact(ctx, st, "o1", search.ContactInput{Name: " "})
	require.ErrorIs(t, err, search.ErrInvalidInput)

	require.NoError(t, svc.DeleteContact(ctx, st, "o1", c.ID))
	require.Empty(t, opp.Contacts)
	require.ErrorIs(t, svc.DeleteContact(ctx, st, "o1", c.ID), search.ErrContactNotFound)
}
