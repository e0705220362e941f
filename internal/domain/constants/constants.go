// Package constants holds string values shared between configuration and wiring.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for mail events.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderDirect = "direct"
)

// Avatar storage drivers understood by the blob bucket opener.
const (
	StorageDriverFile = "file"
	StorageDriverMem  = "mem"
	StorageDriverGCS  = "gcs"
	StorageDriverS3   = "s3"
)
