// Package sheet reads chat log workbooks into rows the pairing engine
// understands and writes the computed durations back.
package sheet

// Columns names the header labels and direction values the reader
// looks for. Exports from other helpdesk systems localize these, so
// every field can be overridden; zero fields fall back to the
// defaults.
type Columns struct {
	DirectionHeader string
	TimeHeader      string
	SentValue       string
	ReceivedValue   string
}

const (
	DefaultDirectionHeader = "Direction"
	DefaultTimeHeader      = "Session Time"
	DefaultSentValue       = "Sent"
	DefaultReceivedValue   = "Received"

	// DurationHeader labels the annotation column on the log sheet and
	// the last column of the summary sheet.
	DurationHeader = "Duration (min)"

	// SummarySheetName is replaced wholesale on every run.
	SummarySheetName = "Duration Summary"

	// TimeLayout is the only timestamp format the exports use.
	TimeLayout = "2006/01/02 15:04"
)

func (c Columns) withDefaults() Columns {
	if c.DirectionHeader == "" {
		c.DirectionHeader = DefaultDirectionHeader
	}
	if c.TimeHeader == "" {
		c.TimeHeader = DefaultTimeHeader
	}
	if c.SentValue == "" {
		c.SentValue = DefaultSentValue
	}
	if c.ReceivedValue == "" {
		c.ReceivedValue = DefaultReceivedValue
	}
	return c
}
