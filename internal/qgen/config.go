package qgen

// Config tunes the LLM-backed generator.
type Config struct {
	// MaxTokens bounds each generation response.
	MaxTokens int

	// Temperature for generation. Review calls always run at zero.
	Temperature float64

	// ExtraAttempts is how many candidates beyond Count the generator may
	// burn on validation and alignment failures before giving up on the
	// shortfall. The total attempt budget is Count + ExtraAttempts.
	ExtraAttempts int

	// AlignmentThreshold is the minimum review score for admission.
	AlignmentThreshold float64
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:          2048,
		Temperature:        0.8,
		ExtraAttempts:      3,
		AlignmentThreshold: 0.7,
	}
}
