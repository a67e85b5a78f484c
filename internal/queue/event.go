// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingEvent is published when a booking is created or changes
// status. It carries enough for downstream consumers (notification
// log, analytics) to act without querying the primary database.
type BookingEvent struct {
	BookingID  uint64 `json:"booking_id"`
	Reference  string `json:"reference"`
	AccountID  uint64 `json:"account_id"`
	Type       string `json:"type"`   // HOTEL | PARKING | BOTH
	Status     string `json:"status"` // status after the event
	TotalCents int64  `json:"total_cents"`
	Reason     string `json:"reason,omitempty"` // cancellation reason, if any
	OccurredAt string `json:"occurred_at"`
}
