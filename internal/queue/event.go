// Package queue defines the message payloads exchanged over the
// broker and the background consumer that audits them.
package queue

// LeaveRecordedEvent is published whenever a leave request is
// created, updated or deleted. It carries enough for downstream
// consumers (audit log, notifications) without querying the primary
// database.
type LeaveRecordedEvent struct {
	Action     string `json:"action"` // created | updated | deleted
	LeaveID    int64  `json:"leave_id"`
	UserID     int64  `json:"user_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Type       string `json:"type"`
	RecordedAt string `json:"recorded_at"`
}
