package clients

import "fmt"

type AwsConfigError struct {
	region string
	base   error
}

func (e AwsConfigError) Error() string {
	return fmt.Sprintf("Unable to load AWS configuration for region %s: %v", e.region, e.base)
}

func (e AwsConfigError) Unwrap() error {
	return e.base
}
