package ports

import "windlass/internal/types"

// ProfileSourcePort loads and validates per-game profile documents.
type ProfileSourcePort interface {
	LoadProfile(path string) (types.GameProfile, error)
}
