// Package export renders a job search's currently filtered views into
// downloadable documents: a JSON snapshot, a multi-section CSV report, a
// fixed-width text table, a tabular PDF, and a plain-text activity log
// report. Every serializer consumes the already-filtered, already-sorted
// set, not the raw collection, and refuses an empty set.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/dates"
)

// ErrEmptyExport indicates the filtered set has nothing to export. Callers
// surface a warning and mutate nothing.
var ErrEmptyExport = errors.New("nothing to export")

// Placeholders for log entry references whose target was deleted.
const (
	unknownOpportunity = "Unknown Position at Unknown Company"
	unknownRecruiter   = "Unknown Recruiter"
)

// sanitizeName derives the filename stem from a search name: lowercased,
// every non-alphanumeric run replaced with an underscore.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// JSONFilename is <name>_job_search_export.json.
func JSONFilename(name string) string {
	return sanitizeName(name) + "_job_search_export.json"
}

// CSVFilename is <name>_job_search_complete_export.csv.
func CSVFilename(name string) string {
	return sanitizeName(name) + "_job_search_complete_export.csv"
}

// TableFilename is <name>_opportunities_table_<date>.txt.
func TableFilename(name string, now time.Time) string {
	return fmt.Sprintf("%s_opportunities_table_%s.txt", sanitizeName(name), dates.Today(now))
}

// PDFFilename is <name>_opportunities_summary.pdf.
func PDFFilename(name string) string {
	return sanitizeName(name) + "_opportunities_summary.pdf"
}

// LogFilename is <name>_log_export_<date>.txt.
func LogFilename(name string, now time.Time) string {
	return fmt.Sprintf("%s_log_export_%s.txt", sanitizeName(name), dates.Today(now))
}

// truncate shortens s to at most n runes, appending an ellipsis when it
// had to cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// titleCase upper-cases the first letter of each space-separated word and
// lower-cases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
