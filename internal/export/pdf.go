package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
)

// Column layout for the PDF table, in mm on a landscape A4 page.
var pdfColumns = []struct {
	header string
	width  float64
}{
	{"Company", 48},
	{"Position", 48},
	{"Last Changed", 28},
	{"Status", 24},
	{"Job Source", 44},
	{"Location", 44},
	{"Salary", 32},
}

const (
	pdfRowHeight = 8.0
	// pdfPageBreakY is the printable-area threshold: rows past this
	// vertical cursor start a new page.
	pdfPageBreakY = 185.0
	// pdfCellLimit caps company and position strings before rendering.
	pdfCellLimit = 32
)

// SummaryPDF renders the filtered set as a paginated landscape table with
// an accent-colored header row and alternating row shading.
func SummaryPDF(js *search.JobSearch, opps []opportunity.Opportunity, now time.Time) ([]byte, string, error) {
	if len(opps) == 0 {
		return nil, "", ErrEmptyExport
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("%s - Opportunities Summary", js.Name))
	pdf.Ln(10)

	counts := opportunity.Summarize(js.Opportunities)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Exported %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Showing %d opportunities (%d open, %d applied, %d saved, %d closed)",
		len(opps), counts.Total, counts.Applied, counts.Saved, counts.Closed))
	pdf.Ln(10)

	writePDFHeader(pdf)
	for i, o := range opps {
		if pdf.GetY() > pdfPageBreakY {
			pdf.AddPage()
			writePDFHeader(pdf)
		}
		if i%2 == 1 {
			pdf.SetFillColor(240, 244, 248)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetTextColor(33, 33, 33)
		pdf.SetFont("Helvetica", "", 9)
		cells := []string{
			truncate(o.Company, pdfCellLimit),
			titleCase(truncate(o.Position, pdfCellLimit)),
			string(o.DateApplied),
			o.Status.Label(),
			o.JobSource,
			o.Location,
			o.Salary,
		}
		for c, cell := range cells {
			pdf.CellFormat(pdfColumns[c].width, pdfRowHeight, cell, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(pdfRowHeight)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("rendering PDF: %w", err)
	}
	return buf.Bytes(), PDFFilename(js.Name), nil
}

func writePDFHeader(pdf *fpdf.Fpdf) {
	pdf.SetFillColor(41, 98, 155)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, pdfRowHeight, col.header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(pdfRowHeight)
}
