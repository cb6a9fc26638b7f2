// Package export writes rendered job lists to a spreadsheet.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/jobportal/internal/view"
	"github.com/honeycarbs/jobportal/pkg/logging"
	sheetsclient "github.com/honeycarbs/jobportal/pkg/sheets"
)

// ErrNotConfigured is returned when no spreadsheet client is available
var ErrNotConfigured = errors.New("export: Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)")

// ValuesWriter is the spreadsheet surface used by the exporter
type ValuesWriter interface {
	AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	ClearValues(ctx context.Context, spreadsheetID, rng string) error
}

var _ ValuesWriter = (*sheetsclient.Client)(nil)

// Header is the first row written to a replaced tab
var Header = []any{"ID", "Title", "Company", "Location", "Experience", "Salary", "Work type", "Posted", "Rating", "Skills"}

// Request selects the target sheet and the cards to write
type Request struct {
	SpreadsheetID string
	Tab           string
	// Replace clears the tab and writes a header before the rows;
	// otherwise rows are appended
	Replace bool
	Cards   []view.JobCard
}

type Result struct {
	SpreadsheetID string    `json:"spreadsheetId"`
	Tab           string    `json:"tab"`
	WrittenRows   int       `json:"writtenRows"`
	CompletedAt   time.Time `json:"completedAt"`
	Message       string    `json:"message"`
}

type Exporter struct {
	writer ValuesWriter
	clock  func() time.Time
	logger *logging.Logger
}

// NewExporter accepts a nil writer; Export then reports ErrNotConfigured
func NewExporter(writer ValuesWriter, logger *logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Exporter{writer: writer, clock: time.Now, logger: logger.Named("export")}
}

func (e *Exporter) Export(ctx context.Context, req Request) (Result, error) {
	tab := req.Tab
	if tab == "" {
		tab = "Sheet1"
	}
	result := Result{SpreadsheetID: req.SpreadsheetID, Tab: tab}

	if e.writer == nil {
		result.Message = ErrNotConfigured.Error()
		return result, ErrNotConfigured
	}
	if strings.TrimSpace(req.SpreadsheetID) == "" {
		return result, fmt.Errorf("export: spreadsheet id is required")
	}
	if len(req.Cards) == 0 {
		result.Message = "no rows to export"
		return result, nil
	}

	rows := Rows(req.Cards)
	if req.Replace {
		if err := e.writer.ClearValues(ctx, req.SpreadsheetID, tab+"!A:Z"); err != nil {
			return result, fmt.Errorf("export: failed to clear sheet: %w", err)
		}
		values := append([][]any{Header}, rows...)
		if err := e.writer.UpdateValues(ctx, req.SpreadsheetID, tab+"!A1", values); err != nil {
			return result, fmt.Errorf("export: failed to write rows: %w", err)
		}
	} else {
		if err := e.writer.AppendValues(ctx, req.SpreadsheetID, tab+"!A1", rows); err != nil {
			return result, fmt.Errorf("export: failed to append rows: %w", err)
		}
	}

	result.WrittenRows = len(rows)
	result.CompletedAt = e.clock().UTC()
	result.Message = fmt.Sprintf("successfully exported %d row(s)", result.WrittenRows)
	e.logger.Info("exported job cards", "spreadsheet_id", req.SpreadsheetID, "tab", tab, "rows", result.WrittenRows)
	return result, nil
}

// Rows converts cards to sheet rows in Header order
func Rows(cards []view.JobCard) [][]any {
	values := make([][]any, 0, len(cards))
	for _, c := range cards {
		values = append(values, []any{
			c.ID,
			c.Title,
			c.Company,
			c.Location,
			c.Experience,
			c.Salary,
			c.WorkType,
			c.Posted,
			c.Ratings,
			strings.Join(c.KeySkills, ", "),
		})
	}
	return values
}
