package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVReport renders the complete multi-section report: summary,
// opportunities (filtered set), recruiters, and online resources. Fields
// containing commas, quotes, or newlines get standard CSV quoting. A UTF-8
// byte-order mark is prepended so spreadsheet apps pick up the encoding.
func CSVReport(js *search.JobSearch, opps []opportunity.Opportunity, now time.Time) ([]byte, string, error) {
	if len(opps) == 0 {
		return nil, "", ErrEmptyExport
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	// Writes into a bytes.Buffer cannot fail; w.Error() is checked once
	// after the flush.
	counts := opportunity.Summarize(js.Opportunities)
	w.Write([]string{"JOB SEARCH SUMMARY"})
	w.Write([]string{"Search Name", js.Name})
	w.Write([]string{"Created", js.CreatedAt.Format("2006-01-02")})
	w.Write([]string{"Exported", now.Format("2006-01-02 15:04")})
	w.Write([]string{"Total Opportunities", strconv.Itoa(counts.Total)})
	w.Write([]string{"Applied", strconv.Itoa(counts.Applied)})
	w.Write([]string{"Saved", strconv.Itoa(counts.Saved)})
	w.Write([]string{"Closed", strconv.Itoa(counts.Closed)})
	w.Write([]string{})

	w.Write([]string{"OPPORTUNITIES"})
	w.Write([]string{
		"Company", "Position", "Status", "Last Changed", "Job Source",
		"Location", "Salary", "Description", "Notes", "Interviews", "Contacts",
	})
	for _, o := range opps {
		w.Write([]string{
			o.Company,
			o.Position,
			o.Status.Label(),
			string(o.DateApplied),
			o.JobSource,
			o.Location,
			o.Salary,
			o.Description,
			o.Notes,
			joinInterviews(o.Interviews),
			joinContacts(o.Contacts),
		})
	}
	w.Write([]string{})

	w.Write([]string{"RECRUITERS"})
	w.Write([]string{"Name", "Company", "Email", "Phone", "Specialty", "Notes"})
	for _, r := range js.Recruiters {
		w.Write([]string{r.Name, r.Company, r.Email, r.Phone, r.Specialty, r.Notes})
	}
	w.Write([]string{})

	w.Write([]string{"ONLINE RESOURCES"})
	w.Write([]string{"Name", "URL", "Category", "Description"})
	for _, r := range js.Resources {
		w.Write([]string{r.Name, r.URL, r.Category, r.Description})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("writing CSV report: %w", err)
	}
	return buf.Bytes(), CSVFilename(js.Name), nil
}

// joinInterviews inlines an opportunity's interviews into one cell as
// semicolon-joined summaries.
func joinInterviews(interviews []opportunity.Interview) string {
	var buf bytes.Buffer
	for i, iv := range interviews {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(string(iv.Date))
		if iv.Time != "" {
			buf.WriteString(" " + iv.Time)
		}
		if iv.Type != "" {
			buf.WriteString(" " + iv.Type)
		}
		if iv.Interviewer != "" {
			buf.WriteString(" with " + iv.Interviewer)
		}
	}
	return buf.String()
}

// joinContacts inlines an opportunity's contacts as semicolon-joined
// summaries.
func joinContacts(contacts []opportunity.Contact) string {
	var buf bytes.Buffer
	for i, c := range contacts {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(c.Name)
		if c.Role != "" {
			buf.WriteString(" (" + c.Role + ")")
		}
		if c.Email != "" {
			buf.WriteString(" " + c.Email)
		}
	}
	return buf.String()
}
