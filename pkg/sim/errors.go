package sim

import "fmt"

// MalformedGraphError reports a link whose endpoint is not present among the
// supplied nodes. It is returned before any simulation work begins; when it
// is returned, no node state has been touched.
type MalformedGraphError struct {
	Source  string // Link source node ID
	Target  string // Link target node ID
	Missing string // The endpoint ID that failed to resolve
}

// Error implements the error interface.
func (e *MalformedGraphError) Error() string {
	return fmt.Sprintf("malformed graph: link %s→%s references unknown node %q", e.Source, e.Target, e.Missing)
}

// InvalidParameterError reports a non-positive or non-finite layout
// parameter. It is returned before any simulation work begins.
type InvalidParameterError struct {
	Param  string  // Parameter name (e.g. "width", "iterations")
	Value  float64 // The rejected value
	Reason string  // Constraint that was violated
}

// Error implements the error interface.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %v (%s)", e.Param, e.Value, e.Reason)
}

func invalidParam(param string, value float64, reason string) *InvalidParameterError {
	return &InvalidParameterError{Param: param, Value: value, Reason: reason}
}
