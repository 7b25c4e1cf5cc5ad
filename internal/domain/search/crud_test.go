package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
)

func TestRecruiterLifecycle(t *testing.T) {
	svc, st, js := activeState(t)
	ctx := context.Background()

	r, err := svc.AddRecruiter(ctx, st, search.RecruiterInput{
		Name:    "Sam Recruiter",
		Company: "TalentCo",
	})
	require.NoError(t, err)
	require.NotEmpty(t, r.ID)
	require.Len(t, js.Recruiters, 1)

	require.NoError(t, svc.UpdateRecruiter(ctx, st, r.ID, search.RecruiterInput{
		Name:      "Sam Recruiter",
		Specialty: "Engineering",
	}))
	require.Equal(t, "Engineering", js.Recruiters[0].Specialty)

	_, err = svc.AddRecruiter(ctx, st, search.RecruiterInput{Name: "  "})
	require.ErrorIs(t, err, search.ErrInvalidInput)

	require.NoError(t, svc.DeleteRecruiter(ctx, st, r.ID))
	require.Empty(t, js.Recruiters)
	require.ErrorIs(t, svc.DeleteRecruiter(ctx, st, r.ID), search.ErrRecruiterNotFound)
}

func TestResourceLifecycle(t *testing.T) {
	svc, st, js := activeState(t)
	ctx := context.Background()

	r, err := svc.AddResource(ctx, st, search.ResourceInput{
		Name: "Job Board",
		URL:  "https://jobs.example.com",
	})
	require.NoError(t, err)
	require.Len(t, js.Resources, 1)

	// Name and URL are both required.
	_, err = svc.AddResource(ctx, st, search.ResourceInput{Name: "No URL"})
	require.ErrorIs(t, err, search.ErrInvalidInput)
	require.ErrorIs(t,
		svc.UpdateResource(ctx, st, r.ID, search.ResourceInput{Name: "x", URL: " "}),
		search.ErrInvalidInput)

	require.NoError(t, svc.UpdateResource(ctx, st, r.ID, search.ResourceInput{
		Name:     "Job Board",
		URL:      "https://jobs.example.com",
		Category: "boards",
	}))
	require.Equal(t, "boards", js.Resources[0].Category)

	require.NoError(t, svc.DeleteResource(ctx, st, r.ID))
	require.Empty(t, js.Resources)
	require.ErrorIs(t, svc.DeleteResource(ctx, st, r.ID), search.ErrResourceNotFound)
}

func TestAddLogEntryDefaultsDate(t *testing.T) {
	svc, st, js := activeState(t)

	before := time.Now()
	e, err := svc.AddLogEntry(context.Background(), st, joblog.EntryInput{
		Type:        joblog.TypePhoneCall,
		Description: "Called about the role",
	})
	require.NoError(t, err)
	require.NotEmpty(t, e.ID)
	require.False(t, e.Date.Before(before))
	require.Len(t, js.Log, 1)
}

func TestAddLogEntryValidation(t *testing.T) {
	svc, st, js := activeState(t)

	_, err := svc.AddLogEntry(context.Background(), st, joblog.EntryInput{
		Type:        "voicemail",
		Description: "x",
	})
	require.ErrorIs(t, err, joblog.ErrInvalidEntry)
	// A rejected entry mutates nothing.
	require.Empty(t, js.Log)
}

func TestUpdateLogEntryKeepsID(t *testing.T) {
	svc, st, js := activeState(t)
	ctx := context.Background()

	e, err := svc.AddLogEntry(ctx, st, joblog.EntryInput{
		Type:        joblog.TypeEmail,
		Description: "Sent resume",
	})
	require.NoError(t, err)

	err = svc.UpdateLogEntry(ctx, st, e.ID, joblog.EntryInput{
		Date:        time.Now(),
		Type:        joblog.TypeFollowUp,
		Description: "Followed up on resume",
	})
	require.NoError(t, err)
	require.Len(t, js.Log, 1)
	require.Equal(t, e.ID, js.Log[0].ID)
	require.Equal(t, joblog.TypeFollowUp, js.Log[0].Type)

	// Updates validate strictly; no date defaulting on edit.
	err = svc.UpdateLogEntry(ctx, st, e.ID, joblog.EntryInput{
		Type:        joblog.TypeFollowUp,
		Description: "no date",
	})
	require.ErrorIs(t, err, joblog.ErrInvalidEntry)

	require.ErrorIs(t, svc.UpdateLogEntry(ctx, st, "missing", joblog.EntryInput{
		Date:        time.Now(),
		Type:        joblog.TypeOther,
		Description: "x",
	}), search.ErrEntryNotFound)
}

func TestDeleteLogEntry(t *testing.T) {
	svc, st, js := activeState(t)
	ctx := context.Background()

	e, err := svc.AddLogEntry(ctx, st, joblog.EntryInput{
		Type:        joblog.TypeOther,
		Description: "Networking event",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLogEntry(ctx, st, e.ID))
	require.Empty(t, js.Log)
	require.ErrorIs(t, svc.DeleteLogEntry(ctx, st, e.ID), search.ErrEntryNotFound)
}

func TestOpportunitiesViewCountsFullCollection(t *testing.T) {
	svc, st, _ := activeState(t)
	ctx := context.Background()

	for _, company := range []string{"Acme", "Beta", "Gamma"} {
		_, err := svc.AddOpportunity(ctx, st, search.OpportunityInput{
			Company:  company,
			Position: "Engineer",
		})
		require.NoError(t, err)
	}
	require.NoError(t, svc.ApplyStatusChange(ctx, st, st.Current.Opportunities[0].ID, opportunity.StatusClosed))

	page, counts, err := svc.Opportunities(st,
		opportunity.Filter{Status: opportunity.StatusSaved}, opportunity.SortNewest, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	// Counts come from the full collection, not the filtered view.
	require.Equal(t, 2, counts.Total)
	require.Equal(t, 1, counts.Closed)
	require.Equal(t, 2, counts.Saved)
}

func TestLogEntriesView(t *testing.T) {
	svc, st, _ := activeState(t)
	ctx := context.Background()

	_, err := svc.AddOpportunity(ctx, st, search.OpportunityInput{
		Company:  "Acme",
		Position: "Engineer",
	})
	require.NoError(t, err)
	_, err = svc.AddLogEntry(ctx, st, joblog.EntryInput{
		Type:        joblog.TypePhoneCall,
		Description: "Called the recruiter",
	})
	require.NoError(t, err)

	page, err := svc.LogEntries(st, joblog.Filter{}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 2, page.TotalItems)

	page, err = svc.LogEntries(st, joblog.Filter{Query: "called"}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalItems)

	entries, err := svc.FilteredLog(st, joblog.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
