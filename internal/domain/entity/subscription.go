package entity

import "github.com/google/uuid"

// Subscription is a directed edge: SubscriberID follows AuthorID.
// The pair is unique; self-edges and cycles are allowed.
type Subscription struct {
	SubscriberID uuid.UUID `json:"subscriberId"`
	AuthorID     uuid.UUID `json:"authorId"`
}
