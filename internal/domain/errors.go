package domain

import "fmt"

// ConfigError reports a missing or invalid configuration value. It names the
// offending property so the user can fix the file directly.
type ConfigError struct {
	Property string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration %s: %s", e.Property, e.Reason)
}

// StreamError reports abnormal termination of a backend stream before the
// end-of-stream signal. Chunks already delivered are not retracted.
type StreamError struct {
	Cause error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream terminated abnormally: %v", e.Cause)
}

func (e *StreamError) Unwrap() error {
	return e.Cause
}
