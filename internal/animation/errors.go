package animation

import "fmt"

// ConfigurationError reports invalid timing configuration rejected at construction
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid animation configuration %s: %s", e.Field, e.Reason)
}
