// Package constants defines shared domain-level constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// TrackingTopicPrefix prefixes the per-order live tracking topic name,
// e.g. order 42 is broadcast on "delivery_42".
const TrackingTopicPrefix = "delivery_"
