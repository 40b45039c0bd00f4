package sheet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"replylag/internal/chatlog"
)

// ErrColumnsNotFound means the log sheet carries no header row with
// both the direction and session time labels. Nothing is paired in
// that case.
var ErrColumnsNotFound = errors.New("direction and session time columns not found")

// Log is the parsed contents of a workbook's log sheet, plus enough
// position information to write annotations back.
type Log struct {
	SheetName    string
	HeaderRow    int      // 1-based sheet row of the header
	Headers      []string // header cells as read
	DirectionCol int      // 0-based position within the header row
	TimeCol      int
	Rows         []chatlog.Row
}

// Read parses the first sheet of the workbook. The header row is the
// first row containing either label; both labels must then resolve to
// columns. Below the header, rows missing either the direction or the
// time cell are skipped, and each kept row remembers its sheet row
// number. An unparseable timestamp keeps the row with a zero time.
func Read(f *excelize.File, cols Columns) (*Log, error) {
	cols = cols.withDefaults()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}

	headerRow := -1
	for i, row := range rows {
		if rowContains(row, cols.DirectionHeader) || rowContains(row, cols.TimeHeader) {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil, ErrColumnsNotFound
	}

	dirCol, timeCol := -1, -1
	for i, h := range rows[headerRow] {
		switch strings.TrimSpace(h) {
		case cols.DirectionHeader:
			dirCol = i
		case cols.TimeHeader:
			timeCol = i
		}
	}
	if dirCol < 0 || timeCol < 0 {
		return nil, ErrColumnsNotFound
	}

	log := &Log{
		SheetName:    name,
		HeaderRow:    headerRow + 1,
		Headers:      rows[headerRow],
		DirectionCol: dirCol,
		TimeCol:      timeCol,
	}
	for i := headerRow + 1; i < len(rows); i++ {
		dir := cellAt(rows[i], dirCol)
		raw := cellAt(rows[i], timeCol)
		if dir == "" || raw == "" {
			continue
		}
		ts, err := time.Parse(TimeLayout, raw)
		if err != nil {
			// Per-cell parse failure degrades to a zero timestamp; the
			// row still participates in the scan.
			ts = time.Time{}
		}
		log.Rows = append(log.Rows, chatlog.Row{
			Direction: direction(dir, cols),
			Timestamp: ts,
			SheetRow:  i + 1,
			RawTime:   raw,
		})
	}
	return log, nil
}

func direction(value string, cols Columns) chatlog.Direction {
	switch value {
	case cols.SentValue:
		return chatlog.DirectionSent
	case cols.ReceivedValue:
		return chatlog.DirectionReceived
	default:
		return chatlog.DirectionUnknown
	}
}

func rowContains(row []string, label string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) == label {
			return true
		}
	}
	return false
}

// cellAt tolerates the short rows excelize returns when trailing cells
// are empty.
func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
