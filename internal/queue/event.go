// Package queue defines message payloads exchanged over the message broker.
package queue

// Actions carried by PetEvent.  Listed fires when a new pet is created,
// removed when its creator deletes the listing.
const (
    ActionPetListed  = "listed"
    ActionPetRemoved = "removed"
)

// PetEvent is published when a pet listing changes lifecycle.  It contains
// enough information for downstream consumers to log, notify, or trigger
// analytics without querying the primary database.  Name and Type are
// empty on removal events since the row is already gone.
type PetEvent struct {
    Action     string `json:"action"`
    PetID      uint64 `json:"pet_id"`
    Name       string `json:"name,omitempty"`
    Type       string `json:"type,omitempty"`
    UserID     uint64 `json:"user_id"`
    OccurredAt string `json:"occurred_at"`
}
