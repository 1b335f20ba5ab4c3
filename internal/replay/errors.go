package replay

import "fmt"

type InvokeError struct {
	function string
	base     error
}

func (e InvokeError) Error() string {
	return fmt.Sprintf("Unable to invoke function %s: %v", e.function, e.base)
}

func (e InvokeError) Unwrap() error {
	return e.base
}

// FunctionError means the invocation happened but the function itself failed,
// e.g. it returned an extraction or delivery error.
type FunctionError struct {
	Function string
	Kind     string
	Payload  string
}

func (e FunctionError) Error() string {
	return fmt.Sprintf("Function %s failed (%s): %s", e.Function, e.Kind, e.Payload)
}

type LoadError struct {
	path string
	base error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("Unable to load event from %s: %v", e.path, e.base)
}

func (e LoadError) Unwrap() error {
	return e.base
}
