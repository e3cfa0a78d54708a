package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"windlass/internal/core"
	"windlass/internal/types"
)

// GameVersionFileAdapter is the file-backed game version provider used by
// the CLI and tests: the installed version is read from a marker file in
// the game directory and compared against the profile's published
// remote snapshot. Deployments talking to a live version API provide
// their own GameVersionPort instead.
type GameVersionFileAdapter struct {
	Remote types.RemoteVersions
}

func NewGameVersionFileAdapter(remote types.RemoteVersions) GameVersionFileAdapter {
	return GameVersionFileAdapter{Remote: remote}
}

func (a GameVersionFileAdapter) GameDiff(_ context.Context, gamePath string, edition types.GameEdition) (types.VersionDiff, error) {
	if a.Remote.Game == "" {
		return types.VersionDiff{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("remote game version is not set")
	}

	installed := readVersionMarker(filepath.Join(gamePath, ".version"))
	kind, err := core.ClassifyDiff(installed, a.Remote.Game, a.Remote.Predownload, a.Remote.Minimum)
	if err != nil {
		return types.VersionDiff{}, err
	}
	return types.VersionDiff{
		Kind:    kind,
		Current: installed,
		Latest:  latestFor(kind, a.Remote),
		Edition: edition,
	}, nil
}

func (a GameVersionFileAdapter) VoiceDiff(_ context.Context, gamePath string, locale types.VoiceLocale) (types.VersionDiff, error) {
	remote, ok := a.Remote.Voices[locale]
	if !ok {
		return types.VersionDiff{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no remote version for voice locale " + string(locale))
	}

	installed := readVersionMarker(filepath.Join(gamePath, fmt.Sprintf(".voice-%s.version", locale)))
	kind, err := core.ClassifyDiff(installed, remote, a.Remote.VoicesPredownload[locale], a.Remote.Minimum)
	if err != nil {
		return types.VersionDiff{}, err
	}
	latest := remote
	if kind == types.DiffPredownload {
		latest = a.Remote.VoicesPredownload[locale]
	}
	return types.VersionDiff{
		Kind:    kind,
		Current: installed,
		Latest:  latest,
		Locale:  locale,
	}, nil
}

func latestFor(kind types.DiffKind, remote types.RemoteVersions) string {
	if kind == types.DiffPredownload {
		return remote.Predownload
	}
	return remote.Game
}

func readVersionMarker(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
