package models

import "time"

// Change-event actions and entities published on the /ws feed.
const (
	EntityUser    = "user"
	EntityProduct = "product"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent describes one mutation applied to a collection.
type ChangeEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Entity     string    `json:"entity"` // user | product
	Action     string    `json:"action"` // created | updated | deleted
	RecordID   int       `json:"record_id"`
}
