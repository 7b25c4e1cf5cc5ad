package opportunity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/dates"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
)

func opp(id, company, position string, status opportunity.Status, dateApplied string, createdAt time.Time) opportunity.Opportunity {
	return opportunity.Opportunity{
		ID:          id,
		Company:     company,
		Position:    position,
		Status:      status,
		DateApplied: dates.LocalDate(dateApplied),
		CreatedAt:   createdAt,
	}
}

func TestFilterFuzzyQuery(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	opps := []opportunity.Opportunity{
		opp("1", "Acme Corp", "Coding Lead", opportunity.StatusApplied, "2026-03-01", old),
		opp("2", "Billing Inc", "Accountant", opportunity.StatusApplied, "2026-03-02", old),
	}

	// "cgl" matches "acme corp coding lead" as an in-order subsequence.
	got := opportunity.Select(opps, opportunity.Filter{Query: "cgl"})
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)

	// Case-insensitive.
	got = opportunity.Select(opps, opportunity.Filter{Query: "ACME"})
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)

	// Runes present but out of order do not match.
	got = opportunity.Select(opps, opportunity.Filter{Query: "daeL gnidoC"})
	require.Empty(t, got)

	// Empty query matches everything.
	got = opportunity.Select(opps, opportunity.Filter{})
	require.Len(t, got, 2)
}

func TestFilterStatus(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	opps := []opportunity.Opportunity{
		opp("1", "Acme", "Engineer", opportunity.StatusApplied, "2026-03-01", old),
		opp("2", "Beta", "Engineer", opportunity.StatusSaved, "2026-03-02", old),
		opp("3", "Gamma", "Engineer", opportunity.StatusApplied, "2026-03-03", old),
	}

	got := opportunity.Select(opps, opportunity.Filter{Status: opportunity.StatusApplied})
	require.Len(t, got, 2)

	// Status and query combine.
	got = opportunity.Select(opps, opportunity.Filter{Status: opportunity.StatusApplied, Query: "gamma"})
	require.Len(t, got, 1)
	require.Equal(t, "3", got[0].ID)
}

func TestOrderNewestPinsRecentlyCreated(t *testing.T) {
	now := time.Now()
	opps := []opportunity.Opportunity{
		opp("stale", "Acme", "Engineer", opportunity.StatusApplied, "2026-03-10", now.Add(-72*time.Hour)),
		// Created minutes ago but with an old last-changed date: still first.
		opp("fresh", "Beta", "Engineer", opportunity.StatusSaved, "2026-01-01", now.Add(-10*time.Minute)),
		opp("older", "Gamma", "Engineer", opportunity.StatusApplied, "2026-02-20", now.Add(-72*time.Hour)),
	}

	opportunity.Order(opps, opportunity.SortNewest, now)
	require.Equal(t, "fresh", opps[0].ID)
	require.Equal(t, "stale", opps[1].ID)
	require.Equal(t, "older", opps[2].ID)
}

func TestOrderNewestWithinWindow(t *testing.T) {
	now := time.Now()
	opps := []opportunity.Opportunity{
		opp("a", "Acme", "Engineer", opportunity.StatusSaved, "2026-03-01", now.Add(-30*time.Minute)),
		opp("b", "Beta", "Engineer", opportunity.StatusSaved, "2026-03-02", now.Add(-5*time.Minute)),
	}

	// Both inside the window: newest creation first.
	opportunity.Order(opps, opportunity.SortNewest, now)
	require.Equal(t, "b", opps[0].ID)
	require.Equal(t, "a", opps[1].ID)
}

func TestOrderOldest(t *testing.T) {
	now := time.Now()
	opps := []opportunity.Opportunity{
		opp("b", "Beta", "Engineer", opportunity.StatusSaved, "2026-03-02", now),
		opp("a", "Acme", "Engineer", opportunity.StatusSaved, "2026-03-01", now),
		opp("c", "Gamma", "Engineer", opportunity.StatusSaved, "2026-03-03", now),
	}

	opportunity.Order(opps, opportunity.SortOldest, now)
	require.Equal(t, "a", opps[0].ID)
	require.Equal(t, "b", opps[1].ID)
	require.Equal(t, "c", opps[2].ID)
}

func TestSummarize(t *testing.T) {
	old := time.Now()
	opps := []opportunity.Opportunity{
		opp("1", "A", "X", opportunity.StatusApplied, "2026-03-01", old),
		opp("2", "B", "X", opportunity.StatusApplied, "2026-03-01", old),
		opp("3", "C", "X", opportunity.StatusSaved, "2026-03-01", old),
		opp("4", "D", "X", opportunity.StatusInterview, "2026-03-01", old),
		opp("5", "E", "X", opportunity.StatusRejected, "2026-03-01", old),
		opp("6", "F", "X", opportunity.StatusClosed, "2026-03-01", old),
	}

	c := opportunity.Summarize(opps)
	// Total excludes closed and rejected.
	require.Equal(t, 4, c.Total)
	require.Equal(t, 2, c.Applied)
	require.Equal(t, 1, c.Saved)
	require.Equal(t, 2, c.Closed)
}

func TestPaginate(t *testing.T) {
	now := time.Now()
	opps := make([]opportunity.Opportunity, 23)
	for i := range opps {
		opps[i] = opp(string(rune('a'+i)), "Acme", "Engineer", opportunity.StatusSaved, "2026-03-01", now)
	}

	p := opportunity.Paginate(opps, 1, 10)
	require.Len(t, p.Items, 10)
	require.Equal(t, 1, p.Number)
	require.Equal(t, 3, p.TotalPages)
	require.Equal(t, 23, p.TotalItems)

	p = opportunity.Paginate(opps, 3, 10)
	require.Len(t, p.Items, 3)

	// Out-of-range pages clamp.
	p = opportunity.Paginate(opps, 99, 10)
	require.Equal(t, 3, p.Number)
	require.Len(t, p.Items, 3)

	p = opportunity.Paginate(opps, 0, 10)
	require.Equal(t, 1, p.Number)

	// Empty set still reports one page.
	p = opportunity.Paginate(nil, 1, 10)
	require.Equal(t, 1, p.TotalPages)
	require.Equal(t, 0, p.TotalItems)
	require.Empty(t, p.Items)
}

func TestPatchApplyLeavesStatusAlone(t *testing.T) {
	o := opp("1", "Acme", "Engineer", opportunity.StatusSaved, "2026-03-01", time.Now())
	company := "Acme Corp"
	status := opportunity.StatusApplied
	notes := "updated"
	p := opportunity.Patch{Company: &company, Status: &status, Notes: &notes}
	p.Apply(&o)

	require.Equal(t, "Acme Corp", o.Company)
	require.Equal(t, "updated", o.Notes)
	require.Equal(t, "Engineer", o.Position)
	// The transition engine owns status; Apply never writes it.
	require.Equal(t, opportunity.StatusSaved, o.Status)
}

func TestStatusLabel(t *testing.T) {
	require.Equal(t, "Interview", opportunity.StatusInterview.Label())
	require.True(t, opportunity.StatusOffer.Valid())
	require.False(t, opportunity.Status("bogus").Valid())
}
