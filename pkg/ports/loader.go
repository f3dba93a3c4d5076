package ports

import "context"

// InputLoader defines how the engine retrieves puzzle input.
// Lines are returned without their trailing newline.
type InputLoader interface {
	// Load returns the input lines for day.
	Load(ctx context.Context, day int) ([]string, error)
}
