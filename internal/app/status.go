package app

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"windlass/internal/core"
	"windlass/internal/types"
)

// Status assembles a fresh check context from a game profile and runs
// the readiness resolver over it. The context is built once per call and
// discarded; nothing is persisted between calls.
func (s Service) Status(ctx context.Context, profilePath string, statusUpdater func(types.StatusUpdate)) (core.ReadinessResult, error) {
	profile, err := s.Profiles.LoadProfile(profilePath)
	if err != nil {
		return core.ReadinessResult{}, err
	}

	check, err := s.assembleContext(profile, statusUpdater)
	if err != nil {
		return core.ReadinessResult{}, err
	}

	resolver := core.ReadinessResolver{
		Versions:    s.VersionsFor(profile),
		Patch:       s.Patch,
		Telemetry:   s.Telemetry,
		PatchChecks: core.StandardPatchChecks(s.Patch),
	}
	return resolver.Resolve(ctx, check)
}

// assembleContext resolves the selected runner through the registry and
// derives the effective prefix from its features. A selection that does
// not resolve, or an unmanaged selection whose build folder is missing,
// leaves the runner unset so the resolver reports wine-not-installed.
func (s Service) assembleContext(profile types.GameProfile, statusUpdater func(types.StatusUpdate)) (core.CheckContext, error) {
	check := core.CheckContext{
		WinePrefix:      profile.Runner.Prefix,
		GamePath:        profile.Game.Path,
		GameEdition:     profile.Edition,
		SelectedVoices:  profile.Voices,
		PatchServers:    profile.Patch.Servers,
		PatchFolder:     profile.Patch.Folder,
		ApplyExtraPatch: profile.Patch.ApplyExtra,
		TelemetryHosts:  profile.Tracker.Hosts,
		IgnoreTelemetry: profile.Tracker.Ignore,
		StatusUpdater:   statusUpdater,
	}

	if profile.Runner.Selected == "" {
		return check, nil
	}

	version, group, found, err := s.Registry.FindVersion(profile.Runner.Catalog, profile.Runner.Selected)
	if err != nil {
		return core.CheckContext{}, err
	}
	if !found {
		log.Warn().Str("selected", profile.Runner.Selected).Msg("selected runner not present in catalog")
		return check, nil
	}

	managed := version.Managed || group.Managed
	if !managed && !isDir(version.RunnerDir(profile.Runner.Builds)) {
		return check, nil
	}

	check.Runner = &core.SelectedRunner{Name: version.Name, Managed: managed}

	if managed && s.Env.CompatDataPath != "" {
		check.WinePrefix = s.Env.CompatDataPath
	}
	features := core.VersionFeatures(version, group)
	if features.PrefixSubdir != "" {
		check.WinePrefix = filepath.Join(check.WinePrefix, features.PrefixSubdir)
	}
	return check, nil
}
