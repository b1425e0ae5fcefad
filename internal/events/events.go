package events

import "time"

const (
	RosterPromotedTopic = "onereport.roster.promoted"
	RosterDemotedTopic  = "onereport.roster.demoted"
)

// RosterPromotedEvent is emitted after a roster entry becomes an account.
type RosterPromotedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PersonID   string    `json:"person_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Company    string    `json:"company"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RosterDemotedEvent is emitted after an account reverts to a roster entry.
type RosterDemotedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PersonID   string    `json:"person_id"`
	Email      string    `json:"email"`
	Company    string    `json:"company"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
