package responsive

import "fmt"

// ConfigurationError reports an invalid engine setup detected at construction time
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid layout configuration %s: %s", e.Field, e.Reason)
}

// PreconditionViolation reports viewport dimensions that cannot come from a healthy host
type PreconditionViolation struct {
	Width  float64
	Height float64
}

func (e *PreconditionViolation) Error() string {
	return fmt.Sprintf("viewport must have positive dimensions, got %gx%g", e.Width, e.Height)
}
