package constants

// Pub/Sub provider names accepted by the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// User change event types.
const (
	UserEventCreated = "user.created"
	UserEventUpdated = "user.updated"
	UserEventDeleted = "user.deleted"
)
