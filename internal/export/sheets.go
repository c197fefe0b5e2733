// Package export writes job listings to external spreadsheets for the
// agency's recruiters.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/jobshop/internal/domain"
	apperr "github.com/honeycarbs/jobshop/internal/errors"
)

// Writer is the subset of the Sheets client used by the exporter
type Writer interface {
	AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	ClearValues(ctx context.Context, spreadsheetID, rng string) error
}

// Target says where and how rows are written
type Target struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets spreadsheet ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Sheet tab name, Sheet1 when empty"`
	// ClearTab empties the tab before writing
	ClearTab bool `json:"clear_tab,omitempty" jsonschema:"Clear the tab before writing"`
	// Upsert overwrites the tab from its first row instead of appending
	Upsert bool `json:"upsert,omitempty" jsonschema:"Overwrite from the first row instead of appending"`
}

// Result reports a finished export
type Result struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab"`
	WrittenRows   int       `json:"written_rows"`
	CompletedAt   time.Time `json:"completed_at"`
	Message       string    `json:"message"`
}

// Header is the first row of every rewritten tab
var Header = []any{"Title", "Company", "Location", "Type", "Category", "Salary", "Experience", "Posted", "Skills"}

type Exporter interface {
	Export(ctx context.Context, jobs []domain.JobPosting, target Target) (Result, error)
}

type SheetsExporter struct {
	writer Writer
	now    func() time.Time
}

var _ Exporter = (*SheetsExporter)(nil)

// NewSheetsExporter wraps w. A nil writer yields an exporter that reports
// itself unavailable.
func NewSheetsExporter(w Writer) *SheetsExporter {
	return &SheetsExporter{writer: w, now: time.Now}
}

// Available reports whether a Sheets client is configured
func (e *SheetsExporter) Available() bool {
	return e != nil && e.writer != nil
}

// Export writes one row per posting. Upsert and ClearTab rewrite the tab
// from the top with a header row; a plain append adds data rows only.
func (e *SheetsExporter) Export(ctx context.Context, jobs []domain.JobPosting, target Target) (Result, error) {
	tab := target.Tab
	if tab == "" {
		tab = "Sheet1"
	}
	result := Result{SpreadsheetID: target.SpreadsheetID, Tab: tab}

	if !e.Available() {
		result.Message = "Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)"
		return result, apperr.Unavailable("sheets export is not configured", nil)
	}
	if target.SpreadsheetID == "" {
		return result, apperr.InvalidInput("spreadsheet_id is required", nil)
	}

	result.CompletedAt = e.now().UTC()
	if len(jobs) == 0 {
		result.Message = "no rows to export"
		return result, nil
	}

	rewrite := target.Upsert || target.ClearTab
	values := Rows(jobs)
	if rewrite {
		values = append([][]any{Header}, values...)
	}

	if target.ClearTab {
		if err := e.writer.ClearValues(ctx, target.SpreadsheetID, cellRange(tab, "A:Z")); err != nil {
			return result, apperr.Unavailable("failed to clear sheet", err)
		}
	}

	var err error
	if rewrite {
		err = e.writer.UpdateValues(ctx, target.SpreadsheetID, cellRange(tab, "A1"), values)
	} else {
		err = e.writer.AppendValues(ctx, target.SpreadsheetID, cellRange(tab, "A1"), values)
	}
	if err != nil {
		return result, apperr.Unavailable("failed to write rows", err)
	}

	result.WrittenRows = len(jobs)
	result.Message = fmt.Sprintf("successfully exported %d row(s)", result.WrittenRows)
	return result, nil
}

// Rows converts postings to sheet rows in Header order
func Rows(jobs []domain.JobPosting) [][]any {
	values := make([][]any, len(jobs))
	for i, j := range jobs {
		values[i] = []any{
			j.Title,
			j.Company,
			j.Location,
			string(j.Type),
			j.Category,
			j.Salary,
			j.Experience,
			j.PostedDate,
			strings.Join(j.Skills, ", "),
		}
	}
	return values
}

// cellRange builds an A1 range, quoting tab names that need it
func cellRange(tab, cells string) string {
	if strings.ContainsAny(tab, " '!&-") {
		tab = "'" + strings.ReplaceAll(tab, "'", "''") + "'"
	}
	return tab + "!" + cells
}
