package app

// ChangeTracker remembers the last info and error messages that were sent so
// that an unchanged message is not repeated every cycle. State lives only in
// memory and is owned by a single StatusService.
type ChangeTracker struct {
	lastInfo  string
	lastError string
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{}
}

func (t *ChangeTracker) ShouldSendInfo(message string) bool {
	return message != t.lastInfo
}

func (t *ChangeTracker) ShouldSendError(message string) bool {
	return message != t.lastError
}

// RecordInfo marks message as the last delivered info message.
func (t *ChangeTracker) RecordInfo(message string) {
	t.lastInfo = message
}

// RecordError marks message as the last delivered error message.
func (t *ChangeTracker) RecordError(message string) {
	t.lastError = message
}

// LastInfo returns the most recent info message recorded, or "".
func (t *ChangeTracker) LastInfo() string { return t.lastInfo }

// LastError returns the most recent error message recorded, or "".
func (t *ChangeTracker) LastError() string { return t.lastError }
