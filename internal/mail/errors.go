package mail

import "fmt"

type DeliveryError struct {
	sender    string
	recipient string
	base      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("Unable to send email from %s to %s: %v", e.sender, e.recipient, e.base)
}

func (e *DeliveryError) Unwrap() error {
	return e.base
}
