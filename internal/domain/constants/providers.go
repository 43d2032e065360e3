// Package constants holds provider names shared by configuration and infrastructure wiring.
package constants

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

const (
	KVProviderRedis  = "redis"
	KVProviderBucket = "bucket"
)

const (
	// EventTypeOrderPlaced is the type attribute of checkout confirmation events.
	EventTypeOrderPlaced = "order.placed"
)
