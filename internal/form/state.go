package form

// State is the controller's position in a submission.
type State int32

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateRendering
	StateFailure
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateRendering:
		return "rendering"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is how a Submit call ended.
type Outcome int

const (
	// OutcomeIgnored: another submission was pending.
	OutcomeIgnored Outcome = iota
	// OutcomeInvalid: a field failed validation; nothing was sent.
	OutcomeInvalid
	// OutcomeRendered: the estimate was rendered.
	OutcomeRendered
	// OutcomeFailed: the request failed and the user was alerted.
	OutcomeFailed
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRendered:
		return "rendered"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
