package ports

import (
	"context"

	"windlass/internal/types"
)

// GameVersionPort computes version diffs for the game and its voice
// packages. Diff computation is owned by an external collaborator; the
// resolver consumes the tagged result opaquely.
type GameVersionPort interface {
	GameDiff(ctx context.Context, gamePath string, edition types.GameEdition) (types.VersionDiff, error)
	VoiceDiff(ctx context.Context, gamePath string, locale types.VoiceLocale) (types.VersionDiff, error)
}
