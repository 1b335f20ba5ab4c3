package domain_test

import (
	"errors"
	"github.com/ATenderholt/rainbow-mailer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func loadEvent(t *testing.T, name string) domain.Event {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	event, err := domain.ParseEvent(data)
	require.NoError(t, err)

	return event
}

func assertMissing(t *testing.T, err error, path string) {
	t.Helper()

	var missing *domain.MissingFieldError
	require.True(t, errors.As(err, &missing), "expected MissingFieldError but got %v", err)
	assert.Equal(t, path, missing.Path)
	assert.True(t, domain.IsExtractionError(err))
}

func TestParseEventAccessors(t *testing.T) {
	event := loadEvent(t, "s3-put-event.json")
	require.Len(t, event.Records, 1)

	record, err := event.First()
	require.NoError(t, err)

	timestamp, err := record.EventTimestamp()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00Z", timestamp)

	bucket, err := record.BucketName()
	require.NoError(t, err)
	assert.Equal(t, "my-bucket", bucket)

	key, err := record.ObjectKey()
	require.NoError(t, err)
	assert.Equal(t, "photo.png", key)

	size, err := record.ObjectSize()
	require.NoError(t, err)
	assert.Equal(t, int64(2048), size)

	ip, err := record.SourceIP()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", ip)

	eventType, err := record.EventType()
	require.NoError(t, err)
	assert.Equal(t, "ObjectCreated:Put", eventType)

	owner, err := record.OwnerIdentity()
	require.NoError(t, err)
	assert.Equal(t, "ABCD1234", owner)
}

func TestParseEventMalformed(t *testing.T) {
	_, err := domain.ParseEvent([]byte(`{"Records": [`))

	var decodeErr *domain.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.True(t, domain.IsExtractionError(err))
}

func TestParseEventWrongType(t *testing.T) {
	_, err := domain.ParseEvent([]byte(`{"Records": [{"s3": {"object": {"size": "big"}}}]}`))
	assert.True(t, domain.IsExtractionError(err))
}

func TestFirstWithNoRecords(t *testing.T) {
	event, err := domain.ParseEvent([]byte(`{"Records": []}`))
	require.NoError(t, err)

	_, err = event.First()
	assertMissing(t, err, "Records[0]")

	event, err = domain.ParseEvent([]byte(`{}`))
	require.NoError(t, err)

	_, err = event.First()
	assertMissing(t, err, "Records[0]")
}

func TestDeleteEventHasNoSize(t *testing.T) {
	record, err := loadEvent(t, "s3-delete-event.json").First()
	require.NoError(t, err)

	_, err = record.ObjectSize()
	assertMissing(t, err, "Records[0].s3.object.size")

	key, err := record.ObjectKey()
	require.NoError(t, err)
	assert.Equal(t, "photo.png", key)
}

func TestAccessorsReportFullPath(t *testing.T) {
	var record domain.Record

	_, err := record.EventTimestamp()
	assertMissing(t, err, "Records[0].eventTime")

	_, err = record.EventType()
	assertMissing(t, err, "Records[0].eventName")

	_, err = record.SourceIP()
	assertMissing(t, err, "Records[0].requestParameters")

	_, err = record.BucketName()
	assertMissing(t, err, "Records[0].s3")

	record.RequestParameters = &domain.RequestParameters{}
	_, err = record.SourceIP()
	assertMissing(t, err, "Records[0].requestParameters.sourceIPAddress")

	record.S3 = &domain.S3Record{}
	_, err = record.OwnerIdentity()
	assertMissing(t, err, "Records[0].s3.bucket")

	_, err = record.ObjectKey()
	assertMissing(t, err, "Records[0].s3.object")

	record.S3.Bucket = &domain.S3Bucket{}
	_, err = record.BucketName()
	assertMissing(t, err, "Records[0].s3.bucket.name")

	_, err = record.OwnerIdentity()
	assertMissing(t, err, "Records[0].s3.bucket.ownerIdentity")

	record.S3.Bucket.OwnerIdentity = &domain.S3BucketOwnerIdentity{}
	_, err = record.OwnerIdentity()
	assertMissing(t, err, "Records[0].s3.bucket.ownerIdentity.principalId")

	record.S3.Object = &domain.S3Object{}
	_, err = record.ObjectKey()
	assertMissing(t, err, "Records[0].s3.object.key")
}

func TestEmptyStringsArePresent(t *testing.T) {
	event, err := domain.ParseEvent([]byte(`{"Records": [{"eventTime": "", "s3": {"object": {"size": 0}}}]}`))
	require.NoError(t, err)

	record, err := event.First()
	require.NoError(t, err)

	timestamp, err := record.EventTimestamp()
	assert.NoError(t, err)
	assert.Equal(t, "", timestamp)

	size, err := record.ObjectSize()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), size)
}

func TestIsObjectCreated(t *testing.T) {
	assert.True(t, domain.IsObjectCreated("ObjectCreated:Put"))
	assert.True(t, domain.IsObjectCreated("ObjectCreated:CompleteMultipartUpload"))
	assert.True(t, domain.IsObjectCreated("s3:ObjectCreated:Copy"))
	assert.False(t, domain.IsObjectCreated("ObjectRemoved:Delete"))
	assert.False(t, domain.IsObjectCreated("s3:ObjectRemoved:DeleteMarkerCreated"))
	assert.False(t, domain.IsObjectCreated(""))
}
