/*
Package report exports the vote data as CSV and as a paginated PDF.

The CSV export is the raw vote log: UTF-8 with a BOM so spreadsheet apps
detect the encoding, one row per vote, multi-select selections joined into
a single comma-separated cell.

The PDF export is a per-option summary table with title, generation
timestamp, and total vote count. It needs an injected TTF font covering
the option text (the seeded poll is Traditional Chinese); without one,
Render fails with ErrNoFont rather than producing tofu.
*/
package report
