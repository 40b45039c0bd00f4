package sheet

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"replylag/internal/chatlog"
)

var summaryHeaders = []string{"Seq", "Received Row", "Received Time", "Sent Row", "Sent Time", DurationHeader}

// Annotate writes every match's duration, rounded to two decimals,
// into the duration column of the log sheet on the matched received
// row, creating the column if the sheet lacks one. Matches with NaN
// minutes leave their cell blank.
func Annotate(f *excelize.File, log *Log, matches []chatlog.Match) error {
	durCol := -1
	for i, h := range log.Headers {
		if strings.TrimSpace(h) == DurationHeader {
			durCol = i
			break
		}
	}
	if durCol < 0 {
		durCol = len(log.Headers)
		cell, err := excelize.CoordinatesToCellName(durCol+1, log.HeaderRow)
		if err != nil {
			return fmt.Errorf("duration header cell: %w", err)
		}
		if err := f.SetCellValue(log.SheetName, cell, DurationHeader); err != nil {
			return fmt.Errorf("write duration header: %w", err)
		}
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("bold style: %w", err)
		}
		if err := f.SetCellStyle(log.SheetName, cell, cell, bold); err != nil {
			return fmt.Errorf("style duration header: %w", err)
		}
	}

	highlight, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return fmt.Errorf("highlight style: %w", err)
	}

	for _, m := range matches {
		if math.IsNaN(m.Minutes) {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(durCol+1, log.Rows[m.ReceivedIndex].SheetRow)
		if err != nil {
			return fmt.Errorf("duration cell: %w", err)
		}
		if err := f.SetCellValue(log.SheetName, cell, round2(m.Minutes)); err != nil {
			return fmt.Errorf("write duration: %w", err)
		}
		if err := f.SetCellStyle(log.SheetName, cell, cell, highlight); err != nil {
			return fmt.Errorf("style duration: %w", err)
		}
	}

	return FitColumns(f, log.SheetName)
}

// Summarize replaces the summary sheet with one row per match, listing
// sheet row numbers and the raw time text of both endpoints.
func Summarize(f *excelize.File, log *Log, matches []chatlog.Match) error {
	if idx, err := f.GetSheetIndex(SummarySheetName); err == nil && idx != -1 {
		if err := f.DeleteSheet(SummarySheetName); err != nil {
			return fmt.Errorf("drop stale summary sheet: %w", err)
		}
	}
	if _, err := f.NewSheet(SummarySheetName); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("bold style: %w", err)
	}
	for i, h := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("summary header cell: %w", err)
		}
		if err := f.SetCellValue(SummarySheetName, cell, h); err != nil {
			return fmt.Errorf("write summary header: %w", err)
		}
		if err := f.SetCellStyle(SummarySheetName, cell, cell, bold); err != nil {
			return fmt.Errorf("style summary header: %w", err)
		}
	}

	for i, m := range matches {
		received := log.Rows[m.ReceivedIndex]
		sent := log.Rows[m.SentIndex]
		values := []any{i + 1, received.SheetRow, m.ReceivedTime, sent.SheetRow, m.SentTime}
		if !math.IsNaN(m.Minutes) {
			values = append(values, round2(m.Minutes))
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("summary cell: %w", err)
			}
			if err := f.SetCellValue(SummarySheetName, cell, v); err != nil {
				return fmt.Errorf("write summary row: %w", err)
			}
		}
	}

	return FitColumns(f, SummarySheetName)
}

// FitColumns widens each column of the sheet to its longest cell text
// plus padding.
func FitColumns(f *excelize.File, sheetName string) error {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read sheet for widths: %w", err)
	}

	var widths []int
	for _, row := range rows {
		for col, cell := range row {
			if col >= len(widths) {
				widths = append(widths, make([]int, col-len(widths)+1)...)
			}
			if len(cell) > widths[col] {
				widths[col] = len(cell)
			}
		}
	}

	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, float64(w+2)); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
