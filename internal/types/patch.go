package types

// PatchStatus is the verification state of a patch build against a
// specific game version.
type PatchStatus string

const (
	PatchVerified   PatchStatus = "verified"
	PatchUnverified PatchStatus = "unverified"
	PatchBroken     PatchStatus = "broken"
	PatchUnsafe     PatchStatus = "unsafe"
	PatchConcerning PatchStatus = "concerning"
)

// PatchMetadata is the patch project's published state: the latest patch
// version plus the verification status per game version.
type PatchMetadata struct {
	Version string `json:"version" yaml:"version"`

	// Statuses maps game versions to their verification status. Game
	// versions not listed are treated as unverified.
	Statuses map[string]PatchStatus `json:"statuses" yaml:"statuses"`
}

// StatusFor returns the verification status for a game version,
// defaulting to unverified for versions the patch project has not
// assessed yet.
func (m PatchMetadata) StatusFor(gameVersion string) PatchStatus {
	if status, ok := m.Statuses[gameVersion]; ok {
		return status
	}
	return PatchUnverified
}

// Readiness maps a verification status to its readiness outcome;
// verified patches permit launch.
func (s PatchStatus) Readiness() ReadinessKind {
	switch s {
	case PatchVerified:
		return ReadinessLaunch
	case PatchBroken:
		return ReadinessPatchBroken
	case PatchUnsafe:
		return ReadinessPatchUnsafe
	case PatchConcerning:
		return ReadinessPatchConcerning
	default:
		return ReadinessPatchNotVerified
	}
}
