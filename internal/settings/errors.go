package settings

import "fmt"

type MissingSettingError struct {
	Name string
}

func (e MissingSettingError) Error() string {
	return fmt.Sprintf("Setting %s is required but was not provided", e.Name)
}

type InvalidSettingError struct {
	Name  string
	Value string
	base  error
}

func (e InvalidSettingError) Error() string {
	return fmt.Sprintf("Setting %s has invalid value %q: %v", e.Name, e.Value, e.base)
}

func (e InvalidSettingError) Unwrap() error {
	return e.base
}

type LoadError struct {
	path string
	base error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("Unable to load settings from %s: %v", e.path, e.base)
}

func (e LoadError) Unwrap() error {
	return e.base
}
