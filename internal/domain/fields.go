package domain

import (
	"bytes"
	"encoding/json"
)

// Fields is the flat summary sent as the email body. Field order here is the
// key order of the serialized JSON.
type Fields struct {
	EventTimestamp string `json:"event_timestamp"`
	BucketName     string `json:"bucket_name"`
	ObjectKey      string `json:"object_key"`
	ObjectSize     int64  `json:"object_size"`
	SourceIP       string `json:"source_ip"`
	EventType      string `json:"event_type"`
	OwnerIdentity  string `json:"owner_identity"`
}

// ExtractFields copies the summary fields verbatim from the first record.
func ExtractFields(event Event) (Fields, error) {
	record, err := event.First()
	if err != nil {
		return Fields{}, err
	}

	var fields Fields
	fields.EventTimestamp, err = record.EventTimestamp()
	if err != nil {
		return Fields{}, err
	}

	fields.BucketName, err = record.BucketName()
	if err != nil {
		return Fields{}, err
	}

	fields.ObjectKey, err = record.ObjectKey()
	if err != nil {
		return Fields{}, err
	}

	fields.ObjectSize, err = record.ObjectSize()
	if err != nil {
		return Fields{}, err
	}

	fields.SourceIP, err = record.SourceIP()
	if err != nil {
		return Fields{}, err
	}

	fields.EventType, err = record.EventType()
	if err != nil {
		return Fields{}, err
	}

	fields.OwnerIdentity, err = record.OwnerIdentity()
	if err != nil {
		return Fields{}, err
	}

	return fields, nil
}

// FormatNotification renders fields as compact JSON. HTML escaping is off so
// object keys containing '<' or '&' reach the email unchanged.
func FormatNotification(fields Fields) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(fields)
	if err != nil {
		return "", &EncodeError{fields: fields, base: err}
	}

	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
