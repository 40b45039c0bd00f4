package chatlog

import "time"

// Direction marks a log row as an inbound or outbound message.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionReceived
	DirectionSent
)

func (d Direction) String() string {
	switch d {
	case DirectionReceived:
		return "received"
	case DirectionSent:
		return "sent"
	default:
		return "unknown"
	}
}

// Row is a single chat log entry as collected from the source sheet.
type Row struct {
	Direction Direction
	Timestamp time.Time // zero when the source cell was unparseable
	SheetRow  int       // 1-based row number in the source sheet
	RawTime   string    // original cell text, kept for display
}

// Match pairs a received row with the next sent row after it.
// Indices are positions in the scanned row sequence, not sheet rows.
type Match struct {
	ReceivedIndex int
	SentIndex     int
	ReceivedTime  string
	SentTime      string
	Minutes       float64 // NaN when either endpoint timestamp was invalid
}
