package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
)

var tableHeaders = []string{
	"Company", "Position", "Last Changed", "Days Open", "Status", "Location", "Salary",
}

// OpportunityTable renders the filtered set as a fixed-width ASCII box
// table: |-delimited cells, a ---- divider under the header, each column
// as wide as its widest cell or header.
func OpportunityTable(js *search.JobSearch, opps []opportunity.Opportunity, now time.Time) ([]byte, string, error) {
	if len(opps) == 0 {
		return nil, "", ErrEmptyExport
	}

	rows := make([][]string, 0, len(opps))
	for _, o := range opps {
		rows = append(rows, []string{
			o.Company,
			o.Position,
			string(o.DateApplied),
			strconv.Itoa(o.DateApplied.DaysOpen(now)),
			o.Status.Label(),
			o.Location,
			o.Salary,
		})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - Opportunities (%s)\n\n", js.Name, now.Format("2006-01-02"))
	writeTableRow(&b, tableHeaders, widths)
	writeDivider(&b, widths)
	for _, row := range rows {
		writeTableRow(&b, row, widths)
	}

	return []byte(b.String()), TableFilename(js.Name, now), nil
}

func writeTableRow(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("|")
	for i, cell := range cells {
		pad := widths[i] - len([]rune(cell))
		b.WriteString(" " + cell + strings.Repeat(" ", pad) + " |")
	}
	b.WriteString("\n")
}

func writeDivider(b *strings.Builder, widths []int) {
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2) + "|")
	}
	b.WriteString("\n")
}
