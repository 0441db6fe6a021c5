package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/pollbox/pollbox/models"
)

const pdfFontFamily = "ReportFont"

// ErrNoFont is returned when no glyph resource is available for the
// report. Option text is CJK in the seeded poll, so the built-in Latin
// fonts cannot render it.
var ErrNoFont = errors.New("report font not configured")

// PDF renders the paginated statistics report. FontPath must point at a
// TTF file covering the option text; it is injected, never fetched.
type PDF struct {
	FontPath string
}

// Render produces the report document: title, generation timestamp, total
// vote count, and one table row per current option with its count.
func (p *PDF) Render(doc *models.PollDocument, counts map[string]int, generatedAt time.Time) ([]byte, error) {
	if p.FontPath == "" {
		return nil, ErrNoFont
	}
	if _, err := os.Stat(p.FontPath); err != nil {
		return nil, fmt.Errorf("report font unavailable: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font(pdfFontFamily, "", p.FontPath)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(pdfFontFamily, "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(pdfFontFamily, "", 20)
	pdf.CellFormat(0, 15, fmt.Sprintf("%s - 統計報告", doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont(pdfFontFamily, "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("報告產生時間: %s", generatedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("總投票數: %d", len(doc.Votes)), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(140, 10, "選項名稱", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 10, "得票數", "1", 1, "R", true, 0, "")

	for _, name := range doc.Options {
		pdf.CellFormat(140, 10, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 10, fmt.Sprintf("%d", counts[name]), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
