package domain

import "encoding/json"

// Fields read by the extractor are pointers so that a key missing from the
// payload can be told apart from a zero value.

type S3Object struct {
	Key       *string `json:"key"`
	Size      *int64  `json:"size"`
	ETag      string  `json:"eTag,omitempty"`
	Sequencer string  `json:"sequencer,omitempty"`
}

type S3BucketOwnerIdentity struct {
	PrincipalId *string `json:"principalId"`
}

type S3Bucket struct {
	Name          *string                `json:"name"`
	OwnerIdentity *S3BucketOwnerIdentity `json:"ownerIdentity"`
	Arn           string                 `json:"arn,omitempty"`
}

type S3Record struct {
	S3SchemaVersion string    `json:"s3SchemaVersion,omitempty"`
	ConfigurationId string    `json:"configurationId,omitempty"`
	Bucket          *S3Bucket `json:"bucket"`
	Object          *S3Object `json:"object"`
}

type RequestParameters struct {
	SourceIPAddress *string `json:"sourceIPAddress"`
}

type Record struct {
	EventVersion      string             `json:"eventVersion,omitempty"`
	EventSource       string             `json:"eventSource,omitempty"`
	AwsRegion         string             `json:"awsRegion,omitempty"`
	EventTime         *string            `json:"eventTime"`
	EventName         *string            `json:"eventName"`
	RequestParameters *RequestParameters `json:"requestParameters"`
	S3                *S3Record          `json:"s3"`
}

// Event is an S3 event notification. MinIO webhook deliveries use the same
// Records layout and add top-level keys that are ignored here.
type Event struct {
	Records []Record `json:"Records"`
}

// First returns the only record that is ever processed. S3 normally delivers a
// single record per notification; any further records are dropped.
func (e Event) First() (Record, error) {
	if len(e.Records) == 0 {
		return Record{}, &MissingFieldError{Path: recordPath}
	}

	return e.Records[0], nil
}

func ParseEvent(data []byte) (Event, error) {
	var event Event
	err := json.Unmarshal(data, &event)
	if err != nil {
		return Event{}, &DecodeError{base: err}
	}

	return event, nil
}

const recordPath = "Records[0]"

func missing(path string) error {
	return &MissingFieldError{Path: recordPath + "." + path}
}

func (r Record) EventTimestamp() (string, error) {
	if r.EventTime == nil {
		return "", missing("eventTime")
	}
	return *r.EventTime, nil
}

func (r Record) EventType() (string, error) {
	if r.EventName == nil {
		return "", missing("eventName")
	}
	return *r.EventName, nil
}

func (r Record) SourceIP() (string, error) {
	if r.RequestParameters == nil {
		return "", missing("requestParameters")
	}
	if r.RequestParameters.SourceIPAddress == nil {
		return "", missing("requestParameters.sourceIPAddress")
	}
	return *r.RequestParameters.SourceIPAddress, nil
}

func (r Record) bucket() (*S3Bucket, error) {
	if r.S3 == nil {
		return nil, missing("s3")
	}
	if r.S3.Bucket == nil {
		return nil, missing("s3.bucket")
	}
	return r.S3.Bucket, nil
}

func (r Record) object() (*S3Object, error) {
	if r.S3 == nil {
		return nil, missing("s3")
	}
	if r.S3.Object == nil {
		return nil, missing("s3.object")
	}
	return r.S3.Object, nil
}

func (r Record) BucketName() (string, error) {
	bucket, err := r.bucket()
	if err != nil {
		return "", err
	}
	if bucket.Name == nil {
		return "", missing("s3.bucket.name")
	}
	return *bucket.Name, nil
}

func (r Record) OwnerIdentity() (string, error) {
	bucket, err := r.bucket()
	if err != nil {
		return "", err
	}
	if bucket.OwnerIdentity == nil {
		return "", missing("s3.bucket.ownerIdentity")
	}
	if bucket.OwnerIdentity.PrincipalId == nil {
		return "", missing("s3.bucket.ownerIdentity.principalId")
	}
	return *bucket.OwnerIdentity.PrincipalId, nil
}

func (r Record) ObjectKey() (string, error) {
	object, err := r.object()
	if err != nil {
		return "", err
	}
	if object.Key == nil {
		return "", missing("s3.object.key")
	}
	return *object.Key, nil
}

// ObjectSize is absent on ObjectRemoved events.
func (r Record) ObjectSize() (int64, error) {
	object, err := r.object()
	if err != nil {
		return 0, err
	}
	if object.Size == nil {
		return 0, missing("s3.object.size")
	}
	return *object.Size, nil
}
