package opportunity

import (
	"sort"
	"strings"
	"time"
)

// SortMode selects the ordering of the opportunity list.
type SortMode string

const (
	// SortNewest ranks opportunities created within the last hour first
	// (newest creation first among themselves), then everything else by
	// last-changed date descending.
	SortNewest SortMode = "newest"
	// SortOldest orders by last-changed date ascending.
	SortOldest SortMode = "oldest"
)

// RecencyWindow is the rolling period after creation during which an
// opportunity stays pinned to the top of the newest sort regardless of its
// last-changed date.
const RecencyWindow = time.Hour

// Filter selects opportunities for listing and export.
type Filter struct {
	Status Status // exact match; empty matches all
	Query  string // fuzzy subsequence over "company position"
}

// Empty reports whether the filter has no active constraints.
func (f Filter) Empty() bool {
	return f.Status == "" && f.Query == ""
}

// Match reports whether the opportunity passes the filter.
func (f Filter) Match(o Opportunity) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Query == "" {
		return true
	}
	text := strings.ToLower(o.Company + " " + o.Position)
	return matchSubsequence(strings.ToLower(f.Query), text)
}

// matchSubsequence reports whether every rune of query appears in text in
// order, scanning left to right. This is a pure subsequence test, not
// edit distance or token matching.
func matchSubsequence(query, text string) bool {
	if query == "" {
		return true
	}
	runes := []rune(query)
	i := 0
	for _, r := range text {
		if r == runes[i] {
			i++
			if i == len(runes) {
				return true
			}
		}
	}
	return false
}

// Select returns the opportunities passing the filter, in input order.
func Select(opps []Opportunity, f Filter) []Opportunity {
	out := make([]Opportunity, 0, len(opps))
	for _, o := range opps {
		if f.Match(o) {
			out = append(out, o)
		}
	}
	return out
}

// Order sorts opps in place. The newest mode is two-tier: rows created
// within the recency window before now always rank above the rest so a
// just-added opportunity is visible at the top even when its last-changed
// date is older than other rows'.
func Order(opps []Opportunity, mode SortMode, now time.Time) {
	switch mode {
	case SortOldest:
		sort.SliceStable(opps, func(i, j int) bool {
			return opps[i].DateApplied < opps[j].DateApplied
		})
	default:
		cutoff := now.Add(-RecencyWindow)
		sort.SliceStable(opps, func(i, j int) bool {
			ri := opps[i].CreatedAt.After(cutoff)
			rj := opps[j].CreatedAt.After(cutoff)
			if ri != rj {
				return ri
			}
			if ri {
				return opps[i].CreatedAt.After(opps[j].CreatedAt)
			}
			return opps[i].DateApplied > opps[j].DateApplied
		})
	}
}

// Counts are the derived summary numbers shown above the list. They are
// computed from the full unfiltered collection, never stored.
type Counts struct {
	Total   int `json:"total"`
	Applied int `json:"applied"`
	Saved   int `json:"saved"`
	Closed  int `json:"closed"`
}

// Summarize derives the summary counts. Total excludes closed and rejected
// opportunities; Closed counts both.
func Summarize(opps []Opportunity) Counts {
	var c Counts
	for _, o := range opps {
		switch o.Status {
		case StatusClosed, StatusRejected:
			c.Closed++
		default:
			c.Total++
		}
		switch o.Status {
		case StatusApplied:
			c.Applied++
		case StatusSaved:
			c.Saved++
		}
	}
	return c
}
