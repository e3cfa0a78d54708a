package ports

import "context"

// TelemetryPort checks whether the game's telemetry domains are blocked.
type TelemetryPort interface {
	// Disabled reports whether none of the hosts resolve. A lookup
	// failure is the caller's decision; the readiness resolver fails
	// open and treats errors as disabled.
	Disabled(ctx context.Context, hosts []string) (bool, error)
}
