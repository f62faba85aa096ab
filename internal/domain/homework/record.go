package homework

import "time"

// Cursor is the Unix timestamp (seconds) marking the start of the next poll window.
type Cursor int64

// CursorAt returns the cursor for t.
func CursorAt(t time.Time) Cursor {
	return Cursor(t.Unix())
}

// Record is one validated homework entry from the API.
type Record struct {
	Name   string
	Status Status
}

// PollResult is the outcome of one successful poll.
// Either it carries no record (nothing changed) or exactly one, the most recent.
type PollResult struct {
	record *Record
	Next   Cursor // Value of current_date, used as the next cursor
}

// NoUpdate builds a result without a homework record.
func NoUpdate(next Cursor) PollResult {
	return PollResult{Next: next}
}

// Update builds a result carrying the most recent record.
func Update(rec Record, next Cursor) PollResult {
	return PollResult{record: &rec, Next: next}
}

// Record returns the homework record and true, or false for a no-update result.
func (r PollResult) Record() (Record, bool) {
	if r.record == nil {
		return Record{}, false
	}
	return *r.record, true
}

// Message is the candidate chat message for this result.
func (r PollResult) Message() (string, error) {
	rec, ok := r.Record()
	if !ok {
		return NoUpdateMessage, nil
	}
	return Translate(rec.Name, rec.Status)
}
