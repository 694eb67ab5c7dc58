package types

import "fmt"

// ProtocolError is a structured error returned by the dashboard API.
type ProtocolError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s - %s", e.Code, e.Message)
}

// GatewayError is a failure that happened before or after the API exchange:
// transport errors, encoding problems, unreadable responses.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
