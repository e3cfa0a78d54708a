package ports

import (
	"context"

	"windlass/internal/types"
)

// PatchPort syncs the local patch cache against mirror servers and
// reports the installed patch state.
type PatchPort interface {
	// Sync tries each mirror in order and stops at the first success.
	// It reports whether any mirror succeeded plus the errors from the
	// mirrors that did not; callers decide whether to surface them.
	Sync(ctx context.Context, folder string, servers []string) (bool, []error)

	// Installed reports whether the patch cache in folder is populated.
	Installed(folder string) bool

	// InstalledVersion reads the patch version recorded in folder.
	InstalledVersion(folder string) (string, error)

	// Metadata reads the synced patch metadata from folder.
	Metadata(ctx context.Context, folder string) (types.PatchMetadata, error)
}
