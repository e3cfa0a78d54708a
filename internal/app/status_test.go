package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"windlass/internal/ports"
	"windlass/internal/types"
)

type fakeProfiles struct {
	profile types.GameProfile
	err     error
}

func (f fakeProfiles) LoadProfile(string) (types.GameProfile, error) {
	return f.profile, f.err
}

type stubVersions struct {
	game  types.VersionDiff
	voice types.VersionDiff
}

func (s stubVersions) GameDiff(context.Context, string, types.GameEdition) (types.VersionDiff, error) {
	return s.game, nil
}

func (s stubVersions) VoiceDiff(context.Context, string, types.VoiceLocale) (types.VersionDiff, error) {
	return s.voice, nil
}

type stubPatch struct{}

func (stubPatch) Sync(context.Context, string, []string) (bool, []error) { return true, nil }
func (stubPatch) Installed(string) bool                                  { return true }
func (stubPatch) InstalledVersion(string) (string, error)                { return "2.1.0", nil }
func (stubPatch) Metadata(context.Context, string) (types.PatchMetadata, error) {
	return types.PatchMetadata{
		Version:  "2.1.0",
		Statuses: map[string]types.PatchStatus{"4.3.0": types.PatchVerified},
	}, nil
}

type stubTelemetry struct{}

func (stubTelemetry) Disabled(context.Context, []string) (bool, error) { return true, nil }

func testService(env types.RuntimeEnvironment, catalog *countingCatalog, profile types.GameProfile) Service {
	return Service{
		Registry:  NewRegistry(catalog, nil, env),
		Profiles:  fakeProfiles{profile: profile},
		Patch:     stubPatch{},
		Telemetry: stubTelemetry{},
		Env:       env,
		VersionsFor: func(types.GameProfile) ports.GameVersionPort {
			return stubVersions{
				game:  types.VersionDiff{Kind: types.DiffLatest, Current: "4.3.0"},
				voice: types.VersionDiff{Kind: types.DiffLatest},
			}
		},
	}
}

func testProfile(t *testing.T) types.GameProfile {
	t.Helper()
	prefix := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "drive_c"), 0o755))
	return types.GameProfile{
		Name:    "test-game",
		Edition: types.EditionGlobal,
		Game:    types.GameConfig{Path: "/games/test"},
		Runner: types.RunnerConfig{
			Selected: "wine-ge-proton8-25",
			Builds:   t.TempDir(),
			Prefix:   prefix,
			Catalog:  "/catalog",
		},
		Voices: []types.VoiceLocale{types.VoiceEnglish},
		Patch:  types.PatchConfig{Folder: "/patch"},
	}
}

func TestStatusLaunchWithDownloadedRunner(t *testing.T) {
	profile := testProfile(t)
	require.NoError(t, os.MkdirAll(filepath.Join(profile.Runner.Builds, "wine-ge-proton8-25"), 0o755))

	service := testService(types.RuntimeEnvironment{Mode: types.ModeIndependent}, &countingCatalog{groups: wineCatalog()}, profile)

	result, err := service.Status(t.Context(), "/profiles/test.yaml", nil)
	require.NoError(t, err)
	require.Equal(t, types.ReadinessLaunch, result.State.Kind)
}

func TestStatusUnknownSelectionReportsWineNotInstalled(t *testing.T) {
	profile := testProfile(t)
	profile.Runner.Selected = "not-in-catalog"

	service := testService(types.RuntimeEnvironment{Mode: types.ModeIndependent}, &countingCatalog{groups: wineCatalog()}, profile)

	result, err := service.Status(t.Context(), "/profiles/test.yaml", nil)
	require.NoError(t, err)
	require.Equal(t, types.ReadinessWineNotInstalled, result.State.Kind)
}

func TestStatusProfileErrorPropagates(t *testing.T) {
	service := testService(types.RuntimeEnvironment{Mode: types.ModeIndependent}, &countingCatalog{groups: wineCatalog()}, types.GameProfile{})
	service.Profiles = fakeProfiles{err: os.ErrNotExist}

	_, err := service.Status(t.Context(), "/profiles/missing.yaml", nil)
	require.Error(t, err)
}

func TestAssembleContextNoSelection(t *testing.T) {
	profile := testProfile(t)
	profile.Runner.Selected = ""

	service := testService(types.RuntimeEnvironment{Mode: types.ModeIndependent}, &countingCatalog{groups: wineCatalog()}, profile)

	check, err := service.assembleContext(profile, nil)
	require.NoError(t, err)
	require.Nil(t, check.Runner)
	require.Equal(t, profile.Runner.Prefix, check.WinePrefix)
	require.Equal(t, profile.Voices, check.SelectedVoices)
}

func TestAssembleContextMissingBuildLeavesRunnerUnset(t *testing.T) {
	profile := testProfile(t)
	service := testService(types.RuntimeEnvironment{Mode: types.ModeIndependent}, &countingCatalog{groups: wineCatalog()}, profile)

	// Builds folder exists but holds no build directory for the selection.
	check, err := service.assembleContext(profile, nil)
	require.NoError(t, err)
	require.Nil(t, check.Runner)
}

func TestAssembleContextManagedRunnerUsesCompatDataPrefix(t *testing.T) {
	proton := types.BundleProton
	groups := map[types.ComponentKind][]types.ComponentGroup{
		types.ComponentKindWine: {{
			Name:    "steam-proton",
			Title:   "Proton Runners via Steam",
			Managed: true,
			Features: &types.Features{
				Bundle:       &proton,
				PrefixSubdir: "pfx",
				Env:          map[string]string{},
			},
			Versions: []types.ComponentVersion{
				{Name: "GE-Proton8-4", Title: "GE-Proton8-4", URI: "/compat/GE-Proton8-4", Managed: true},
			},
		}},
	}

	env := types.RuntimeEnvironment{Mode: types.ModeDeck, CompatDataPath: "/steam/compatdata/0"}
	profile := testProfile(t)
	profile.Runner.Selected = "GE-Proton8-4"

	service := testService(env, &countingCatalog{groups: groups}, profile)

	check, err := service.assembleContext(profile, nil)
	require.NoError(t, err)
	require.NotNil(t, check.Runner)
	require.True(t, check.Runner.Managed)
	require.Equal(t, "GE-Proton8-4", check.Runner.Name)
	require.Equal(t, filepath.Join("/steam/compatdata/0", "pfx"), check.WinePrefix)
}

func TestAssembleContextUnmanagedPrefixSubdir(t *testing.T) {
	groups := wineCatalog()
	groups[types.ComponentKindWine][0].Versions[0].Features = &types.Features{
		NeedDXVK:     true,
		PrefixSubdir: "inner",
		Env:          map[string]string{},
	}

	profile := testProfile(t)
	require.NoError(t, os.MkdirAll(filepath.Join(profile.Runner.Builds, "wine-ge-proton8-25"), 0o755))

	service := testService(types.RuntimeEnvironment{Mode: types.ModeIndependent}, &countingCatalog{groups: groups}, profile)

	check, err := service.assembleContext(profile, nil)
	require.NoError(t, err)
	require.NotNil(t, check.Runner)
	require.False(t, check.Runner.Managed)
	require.Equal(t, filepath.Join(profile.Runner.Prefix, "inner"), check.WinePrefix)
}
