package report

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pollbox/pollbox/models"
)

// utf8BOM makes the exported file open correctly in Excel.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV streams the raw vote log as UTF-8 CSV with a BOM. Multi-select
// selections are joined into one cell with ", ".
func WriteCSV(w io.Writer, votes []models.Vote) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"option", "timestamp"}); err != nil {
		return err
	}
	for _, v := range votes {
		row := []string{strings.Join(v.Option.Values(), ", "), v.Timestamp}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
