package chatlog

import (
	"math"
	"time"
)

// Pair walks rows in order and matches every received row to the next
// sent row after it, computing the elapsed minutes between the two.
//
// After a match the scan resumes from the sent row itself: a sent row
// never starts a search, but the rows following it are examined fresh,
// so it can still anchor the next pair. A received row with no sent
// row left ahead of it stays unmatched and the scan moves on by one.
// Matches come out in strictly increasing ReceivedIndex order and no
// row index appears in more than one match. Input rows are not
// mutated.
func Pair(rows []Row) []Match {
	var matches []Match
	i := 0
	for i < len(rows) {
		if rows[i].Direction != DirectionReceived {
			i++
			continue
		}
		j := nextSent(rows, i+1)
		if j < 0 {
			// Nothing left to pair this received row with.
			i++
			continue
		}
		matches = append(matches, Match{
			ReceivedIndex: i,
			SentIndex:     j,
			ReceivedTime:  rows[i].RawTime,
			SentTime:      rows[j].RawTime,
			Minutes:       minutesBetween(rows[i].Timestamp, rows[j].Timestamp),
		})
		i = j
	}
	return matches
}

// nextSent returns the index of the first sent row at or after from,
// or -1 when none remains.
func nextSent(rows []Row, from int) int {
	for j := from; j < len(rows); j++ {
		if rows[j].Direction == DirectionSent {
			return j
		}
	}
	return -1
}

// minutesBetween is NaN when either timestamp failed to parse. The
// value can be negative when the sheet is out of order; callers decide
// what to do with that.
func minutesBetween(received, sent time.Time) float64 {
	if received.IsZero() || sent.IsZero() {
		return math.NaN()
	}
	return sent.Sub(received).Minutes()
}
