package joblog

import (
	"sort"
	"strings"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/dates"
)

// Filter selects log entries for listing and export. The text query is a
// case-insensitive substring match against type, description, notes, and
// other-contact. Date bounds are inclusive local calendar days.
type Filter struct {
	Query string
	Start dates.LocalDate
	End   dates.LocalDate
}

// Empty reports whether the filter has no active constraints.
func (f Filter) Empty() bool {
	return f.Query == "" && f.Start.IsZero() && f.End.IsZero()
}

// Match reports whether the entry passes the filter.
func (f Filter) Match(e Entry) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(string(e.Type)), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) &&
			!strings.Contains(strings.ToLower(e.Notes), q) &&
			!strings.Contains(strings.ToLower(e.OtherContact), q) {
			return false
		}
	}
	if !f.Start.IsZero() && e.Date.Before(f.Start.DayStart()) {
		return false
	}
	if !f.End.IsZero() && e.Date.After(f.End.DayEnd()) {
		return false
	}
	return true
}

// Select returns the entries passing the filter, newest first. Display
// order is always descending by date regardless of insertion order.
func Select(entries []Entry, f Filter) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// PageSizes are the selectable page sizes for the log list.
var PageSizes = []int{5, 10, 25, 50}

// Page is one page of a filtered log.
type Page struct {
	Items      []Entry `json:"items"`
	Number     int     `json:"page"`
	TotalPages int     `json:"totalPages"`
	TotalItems int     `json:"totalItems"`
}

// Paginate slices entries into the requested 1-based page, clamping
// out-of-range page numbers. Callers reset to page 1 whenever a filter or
// the page size changes.
func Paginate(entries []Entry, page, perPage int) Page {
	if perPage <= 0 {
		perPage = PageSizes[0]
	}
	total := len(entries)
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return Page{
		Items:      entries[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
