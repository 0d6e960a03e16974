package models

import "time"

// ChangeAction names the mutation a ChangeEvent reports.
type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// ChangeEvent announces that a catalog list for one store is stale. Consumers
// re-fetch the affected list; the event carries no entity payload.
type ChangeEvent struct {
	StoreID    string       `json:"storeId"`
	Kind       Kind         `json:"kind"`
	EntityID   string       `json:"entityId"`
	Action     ChangeAction `json:"action"`
	OccurredAt time.Time    `json:"occurredAt"`
}
