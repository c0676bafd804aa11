package sensor

import "context"

// Provider reads a current temperature in degrees Celsius from some
// backend. Implementations are read-only after construction and owned by
// the monitor loop for the process lifetime.
type Provider interface {
	Read(ctx context.Context) (float64, error)
	Describe() string
}
