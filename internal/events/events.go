// Package events delivers roster changes to Kafka.
package events

import "time"

// RosterEvent is the message emitted when an activity's roster changes.
type RosterEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}
