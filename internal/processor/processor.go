// Package processor runs the full read, pair, annotate pipeline over
// one uploaded workbook. Either every step succeeds and the caller
// gets the rewritten workbook bytes, or an error comes back and no
// partial output does.
package processor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"replylag/internal/chatlog"
	"replylag/internal/sheet"
)

// Processor pairs received rows with sent rows and writes the
// durations back into the workbook.
type Processor struct {
	cols   sheet.Columns
	logger *slog.Logger
}

func New(cols sheet.Columns, logger *slog.Logger) *Processor {
	return &Processor{cols: cols, logger: logger}
}

// Result is one processed workbook plus counters for logging.
type Result struct {
	Output  []byte
	Rows    int
	Matches int
}

// Process reads a workbook, pairs its rows and returns the annotated
// workbook with the summary sheet attached.
func (p *Processor) Process(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	log, err := sheet.Read(f, p.cols)
	if err != nil {
		return nil, err
	}

	matches := chatlog.Pair(log.Rows)

	if err := sheet.Annotate(f, log, matches); err != nil {
		return nil, fmt.Errorf("annotate log sheet: %w", err)
	}
	if err := sheet.Summarize(f, log, matches); err != nil {
		return nil, fmt.Errorf("build summary sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	p.logger.Info("workbook processed", "rows", len(log.Rows), "matches", len(matches))

	return &Result{Output: buf.Bytes(), Rows: len(log.Rows), Matches: len(matches)}, nil
}
