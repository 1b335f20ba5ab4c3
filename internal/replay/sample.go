package replay

import (
	"encoding/json"
	"github.com/ATenderholt/rainbow-mailer/internal/domain"
	"github.com/aws/aws-lambda-go/events"
	"os"
	"time"
)

const (
	sampleSourceIP = "127.0.0.1"
	sampleOwner    = "rainbow-mailer"
)

// SampleEvent builds a single-record ObjectCreated:Put notification in the
// shape S3 sends to Lambda.
func SampleEvent(region string, bucket string, key string, size int64, at time.Time) events.S3Event {
	owner := events.S3UserIdentity{PrincipalID: sampleOwner}

	return events.S3Event{
		Records: []events.S3EventRecord{
			{
				EventVersion: "2.1",
				EventSource:  "aws:s3",
				AWSRegion:    region,
				EventTime:    at.UTC(),
				EventName:    domain.ObjectCreatedPut,
				PrincipalID:  owner,
				RequestParameters: events.S3RequestParameters{
					SourceIPAddress: sampleSourceIP,
				},
				S3: events.S3Entity{
					SchemaVersion:   "1.0",
					ConfigurationID: "rainbow-mailer-replay",
					Bucket: events.S3Bucket{
						Name:          bucket,
						OwnerIdentity: owner,
						Arn:           "arn:aws:s3:::" + bucket,
					},
					Object: events.S3Object{
						Key:  key,
						Size: size,
					},
				},
			},
		},
	}
}

// Payload returns the event file at opts.EventPath, or a sample event built
// from the other options when no file is given.
func Payload(opts *Options) ([]byte, error) {
	if opts.EventPath != "" {
		data, err := os.ReadFile(opts.EventPath)
		if err != nil {
			return nil, LoadError{path: opts.EventPath, base: err}
		}
		return data, nil
	}

	event := SampleEvent(opts.Region, opts.Bucket, opts.Key, opts.Size, time.Now())
	return json.Marshal(event)
}
