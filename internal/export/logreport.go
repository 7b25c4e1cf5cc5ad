package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
)

const logBanner = "=================================================="

// LogReport renders the filtered, newest-first log as a plain-text report:
// a banner header with export metadata and active filter annotations, then
// one block per entry. References to deleted opportunities or recruiters
// resolve to placeholder strings instead of failing.
func LogReport(js *search.JobSearch, entries []joblog.Entry, f joblog.Filter, now time.Time) ([]byte, string, error) {
	if len(entries) == 0 {
		return nil, "", ErrEmptyExport
	}

	var b strings.Builder
	b.WriteString(logBanner + "\n")
	b.WriteString(" JOB SEARCH ACTIVITY LOG\n")
	fmt.Fprintf(&b, " Search: %s\n", js.Name)
	fmt.Fprintf(&b, " Exported: %s\n", now.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, " Entries: %d\n", len(entries))
	if !f.Start.IsZero() || !f.End.IsZero() {
		fmt.Fprintf(&b, " Date range: %s to %s\n", orAny(string(f.Start)), orAny(string(f.End)))
	}
	if f.Query != "" {
		fmt.Fprintf(&b, " Text filter: %q\n", f.Query)
	}
	b.WriteString(logBanner + "\n\n")

	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e.Date.Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "   Type: %s\n", e.Type.Label())
		fmt.Fprintf(&b, "   %s\n", e.Description)
		if e.Notes != "" {
			fmt.Fprintf(&b, "   Notes: %s\n", e.Notes)
		}
		if e.OpportunityID != "" {
			fmt.Fprintf(&b, "   Opportunity: %s\n", resolveOpportunity(js, e.OpportunityID))
		}
		if e.RecruiterID != "" {
			fmt.Fprintf(&b, "   Recruiter: %s\n", resolveRecruiter(js, e.RecruiterID))
		}
		if e.OtherContact != "" {
			fmt.Fprintf(&b, "   Contact: %s\n", e.OtherContact)
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), LogFilename(js.Name, now), nil
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

// resolveOpportunity renders "position at company" for the referenced
// opportunity, or the placeholder if it was deleted.
func resolveOpportunity(js *search.JobSearch, id string) string {
	if opp := js.Opportunity(id); opp != nil {
		return fmt.Sprintf("%s at %s", opp.Position, opp.Company)
	}
	return unknownOpportunity
}

// resolveRecruiter renders "name (company)" for the referenced recruiter,
// or the placeholder if it was deleted.
func resolveRecruiter(js *search.JobSearch, id string) string {
	if r := js.RecruiterByID(id); r != nil {
		if r.Company != "" {
			return fmt.Sprintf("%s (%s)", r.Name, r.Company)
		}
		return r.Name
	}
	return unknownRecruiter
}
