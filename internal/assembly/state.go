package assembly

// testState tracks one in-flight test through assembly. Keeping it as an
// explicit value per test, rather than nested branching, is what makes
// partial-batch failure reporting straightforward.
type testState int

const (
	stateValidating testState = iota
	stateRetrieving
	stateFallback
	stateAssembled
	stateFailed
)

func (s testState) String() string {
	switch s {
	case stateValidating:
		return "validating"
	case stateRetrieving:
		return "retrieving"
	case stateFallback:
		return "fallback"
	case stateAssembled:
		return "assembled"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
