// Package queue defines message payloads exchanged over the message broker.
package queue

// StatusQueueName is the durable queue that carries booking status events.
const StatusQueueName = "booking.status"

// Status strings used in BookingStatusEvent.
const (
    StatusConfirmed = "CONFIRMED"
    StatusDeclined  = "DECLINED"
)

// BookingStatusEvent is published when an admin confirms or declines a
// booking. It contains enough information for downstream consumers to log
// or notify without querying the primary database.
type BookingStatusEvent struct {
    BookingID  uint64 `json:"booking_id"`
    Status     string `json:"status"`
    ActedBy    string `json:"acted_by"`
    OccurredAt string `json:"occurred_at"`
}
