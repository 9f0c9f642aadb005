package intake

// State is a stage of the intake state machine.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateUploading  State = "uploading"
	StateFinalizing State = "finalizing"
)

// busy reports whether a submission occupies the pipeline in this state.
func (s State) busy() bool {
	return s != StateIdle
}

// isValidTransition enforces the allowed state machine edges.
func isValidTransition(from, to State) bool {
	switch from {
	case StateIdle:
		return to == StateValidating
	case StateValidating:
		return to == StateUploading || to == StateIdle
	case StateUploading:
		return to == StateFinalizing || to == StateIdle
	case StateFinalizing:
		return to == StateIdle
	default:
		return false
	}
}
