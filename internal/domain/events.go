package domain

import "strings"

// Record eventName values. MinIO prefixes them with "s3:".
const (
	ObjectCreatedPut   = "ObjectCreated:Put"
	ObjectCreatedEvent = "ObjectCreated:"
	ObjectRemovedEvent = "ObjectRemoved:"

	minioEventNamePrefix = "s3:"
)

func IsObjectCreated(eventName string) bool {
	return strings.HasPrefix(strings.TrimPrefix(eventName, minioEventNamePrefix), ObjectCreatedEvent)
}
