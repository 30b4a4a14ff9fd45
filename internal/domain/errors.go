package domain

import "fmt"

// NetworkError reports a failed catalog request: either a non-2xx response
// (StatusCode set) or a transport/decoding failure (Err set).
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("This is an HTTP error: The status is %d", e.StatusCode)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "network error"
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FormatError reports a malformed numeric field in a raw record.
type FormatError struct {
	Record string // planet name
	Field  string
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("planet %q: malformed %s %q", e.Record, e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }
