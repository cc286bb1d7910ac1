package distance

import "context"

// StaticProvider returns a fixed distance (or error) on every call. Useful
// for offline runs and tests.
type StaticProvider struct {
	Miles float64
	Err   error
}

func (s StaticProvider) Distance(_ context.Context, _, _ string) (float64, error) {
	return s.Miles, s.Err
}
