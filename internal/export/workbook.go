// Package export renders a dashboard snapshot as an .xlsx workbook.
package export

import (
	"fmt"
	"strings"

	"osiris-dashboard/internal/dashboard"

	"github.com/xuri/excelize/v2"
)

const (
	SheetJobs     = "Jobs"
	SheetCalls    = "Calls"
	SheetProfiles = "Profiles"
)

var (
	jobHeaders     = []any{"ID", "Title", "Date", "Status", "Client", "Phone", "Team", "Booked", "Paid", "Price"}
	callHeaders    = []any{"ID", "Phone", "Caller", "Date", "Duration (s)", "Outcome", "Recording"}
	profileHeaders = []any{"Phone", "Caller", "Total Calls", "Last Call", "Messages"}
)

// Workbook builds one sheet per collection, each with a header row. The caller owns
// the returned file and must Close it.
func Workbook(data dashboard.Data) (*excelize.File, error) {
	f := excelize.NewFile()

	// NewFile starts with Sheet1; rename it rather than leaving an empty sheet.
	if err := f.SetSheetName("Sheet1", SheetJobs); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetCalls, SheetProfiles} {
		if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("new sheet %s: %w", name, err)
		}
	}

	jobs := make([][]any, 0, len(data.Jobs))
	for _, j := range data.Jobs {
		jobs = append(jobs, []any{
			j.ID, j.Title, j.Date, string(j.Status), j.Client, j.PhoneNumber,
			strings.Join(j.CleaningTeam, ", "), j.Booked, j.Paid, j.Price,
		})
	}
	calls := make([][]any, 0, len(data.Calls))
	for _, c := range data.Calls {
		calls = append(calls, []any{
			c.ID, c.PhoneNumber, c.CallerName, c.Date, c.DurationSeconds, string(c.Outcome), c.AudioURL,
		})
	}
	profiles := make([][]any, 0, len(data.Profiles))
	for _, p := range data.Profiles {
		profiles = append(profiles, []any{
			p.PhoneNumber, p.CallerName, p.TotalCalls, p.LastCallDate, len(p.Messages),
		})
	}

	for _, s := range []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetJobs, jobHeaders, jobs},
		{SheetCalls, callHeaders, calls},
		{SheetProfiles, profileHeaders, profiles},
	} {
		if err := writeSheet(f, s.name, s.header, s.rows); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	idx, err := f.GetSheetIndex(SheetJobs)
	if err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
