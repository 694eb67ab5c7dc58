package types

import "fmt"

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	OutcomeSkipped OutcomeKind = iota
	OutcomeFailed
	OutcomeSucceeded
)

// String returns the lower-case name of the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	case OutcomeSucceeded:
		return "succeeded"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Skip reasons.
const (
	ReasonNetworkNotFound = "network name not found"
	ReasonPortIDMissing   = "port id not provided"
)

// GenericFailureCode is the code used for every failure that did not come
// back from the dashboard as a structured API error.
const GenericFailureCode = "500"

// Outcome is the terminal result of processing one Row.
// Only the fields belonging to Kind are populated.
type Outcome struct {
	Kind OutcomeKind

	// Skipped
	Reason string

	// Failed
	Code    string
	Message string

	// Succeeded
	Response PortResponse

	// Reporting context
	Line        int
	NetworkName string
	PortID      string
}

// Skipped builds a Skipped outcome.
func Skipped(reason string) Outcome {
	return Outcome{Kind: OutcomeSkipped, Reason: reason}
}

// Failed builds a Failed outcome.
func Failed(code, message string) Outcome {
	return Outcome{Kind: OutcomeFailed, Code: code, Message: message}
}

// Succeeded builds a Succeeded outcome.
func Succeeded(response PortResponse) Outcome {
	return Outcome{Kind: OutcomeSucceeded, Response: response}
}

// String renders the variant for log lines.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSkipped:
		return fmt.Sprintf("Skipped(%s)", o.Reason)
	case OutcomeFailed:
		return fmt.Sprintf("Failed(%s, %s)", o.Code, o.Message)
	case OutcomeSucceeded:
		return fmt.Sprintf("Succeeded(%v)", map[string]interface{}(o.Response))
	default:
		return o.Kind.String()
	}
}
