package core

import (
	"context"

	"windlass/internal/ports"
	"windlass/internal/types"
)

// PatchInstalledCheck fails with patch-not-installed when the local patch
// cache has never been populated.
func PatchInstalledCheck(patch ports.PatchPort) PatchCheck {
	return func(_ context.Context, check CheckContext, _ types.VersionDiff) (types.ReadinessKind, error) {
		if !patch.Installed(check.PatchFolder) {
			return types.ReadinessPatchNotInstalled, nil
		}
		return "", nil
	}
}

// PatchUpdateCheck fails with patch-update-available when the installed
// patch version is older than the published metadata version.
func PatchUpdateCheck(patch ports.PatchPort) PatchCheck {
	return func(ctx context.Context, check CheckContext, _ types.VersionDiff) (types.ReadinessKind, error) {
		metadata, err := patch.Metadata(ctx, check.PatchFolder)
		if err != nil {
			return "", err
		}
		installed, err := patch.InstalledVersion(check.PatchFolder)
		if err != nil {
			return "", err
		}
		outdated, err := PatchVersionOutdated(installed, metadata.Version)
		if err != nil {
			return "", err
		}
		if outdated {
			return types.ReadinessPatchUpdateAvailable, nil
		}
		return "", nil
	}
}

// PatchVerificationCheck looks up the patch's verification status for the
// installed game version and maps anything short of verified to its own
// terminal state.
func PatchVerificationCheck(patch ports.PatchPort) PatchCheck {
	return func(ctx context.Context, check CheckContext, game types.VersionDiff) (types.ReadinessKind, error) {
		metadata, err := patch.Metadata(ctx, check.PatchFolder)
		if err != nil {
			return "", err
		}
		kind := metadata.StatusFor(game.Current).Readiness()
		if kind != types.ReadinessLaunch {
			return kind, nil
		}
		return "", nil
	}
}

// ExtraPatchCheck gates the game's optional patch (scripting-engine or
// media-foundation, depending on the title) on the context toggle.
// The applied callback reports whether that patch is present.
func ExtraPatchCheck(applied func(check CheckContext) (bool, error)) PatchCheck {
	return func(_ context.Context, check CheckContext, _ types.VersionDiff) (types.ReadinessKind, error) {
		if !check.ApplyExtraPatch {
			return "", nil
		}
		ok, err := applied(check)
		if err != nil {
			return "", err
		}
		if !ok {
			return types.ReadinessPatchNotInstalled, nil
		}
		return "", nil
	}
}

// StandardPatchChecks is the default check order shared by the supported
// titles: cache populated, cache current, build verified for the
// installed game version.
func StandardPatchChecks(patch ports.PatchPort) []PatchCheck {
	return []PatchCheck{
		PatchInstalledCheck(patch),
		PatchUpdateCheck(patch),
		PatchVerificationCheck(patch),
	}
}
