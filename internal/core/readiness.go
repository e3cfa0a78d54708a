package core

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"windlass/internal/ports"
	"windlass/internal/types"
)

// SelectedRunner is the runner the context was assembled around: its
// resolved version name plus whether it is externally managed (Steam
// Proton). Managed runners skip the prefix check because their prefix
// lifecycle is owned by Steam.
type SelectedRunner struct {
	Name    string
	Managed bool
}

// CheckContext is a one-shot snapshot assembled immediately before a
// resolution call and discarded after it. The resolver never reads
// configuration or ambient environment on its own.
type CheckContext struct {
	Runner     *SelectedRunner
	WinePrefix string

	GamePath    string
	GameEdition types.GameEdition

	SelectedVoices []types.VoiceLocale

	PatchServers []string
	PatchFolder  string

	// ApplyExtraPatch enables the game's optional patch check.
	ApplyExtraPatch bool

	TelemetryHosts  []string
	IgnoreTelemetry bool

	// StatusUpdater is invoked at check boundaries. Observational only;
	// it must not block the resolver.
	StatusUpdater func(types.StatusUpdate)
}

// PatchCheck is one game-specific patch precondition, evaluated after the
// mirror sync. It returns the terminal readiness kind that stops
// evaluation, or the empty string when the precondition is met. The game
// diff from the earlier check is passed in for checks that depend on the
// installed game version.
type PatchCheck func(ctx context.Context, check CheckContext, game types.VersionDiff) (types.ReadinessKind, error)

// ReadinessResolver is the launch readiness state machine, parameterized
// over a game profile's providers and patch checks so one machine serves
// every supported title. It holds no state across calls.
type ReadinessResolver struct {
	Versions  ports.GameVersionPort
	Patch     ports.PatchPort
	Telemetry ports.TelemetryPort

	// PatchChecks run in order after the mirror sync; the first check
	// returning a non-empty kind terminates resolution.
	PatchChecks []PatchCheck
}

// ReadinessResult carries the single terminal state plus the per-mirror
// sync failures. Mirror failures never change the state: sync is
// best-effort, first success wins, and total exhaustion still proceeds
// against the stale cache.
type ReadinessResult struct {
	State             types.ReadinessState
	MirrorDiagnostics []string
}

// Resolve runs the ordered precondition checks and returns exactly one
// terminal state. Checks run strictly in order and the first unmet
// precondition short-circuits the rest: later providers are never
// invoked once an earlier check fails.
func (r ReadinessResolver) Resolve(ctx context.Context, check CheckContext) (ReadinessResult, error) {
	if r.Versions == nil || r.Patch == nil || r.Telemetry == nil {
		return ReadinessResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("readiness resolver requires version, patch and telemetry ports")
	}

	log.Debug().Msg("resolving launch readiness")

	// Runner selected?
	if check.Runner == nil {
		return terminal(types.ReadinessWineNotInstalled), nil
	}

	// Prefix initialized?
	if !check.Runner.Managed && !dirExists(filepath.Join(check.WinePrefix, "drive_c")) {
		return terminal(types.ReadinessPrefixNotExists), nil
	}

	// Game installation status.
	r.notify(check, types.StatusUpdate{Stage: types.StageGame})

	game, err := r.Versions.GameDiff(ctx, check.GamePath, check.GameEdition)
	if err != nil {
		return ReadinessResult{}, err
	}

	switch game.Kind {
	case types.DiffNotInstalled:
		return gameTerminal(types.ReadinessGameNotInstalled, game), nil
	case types.DiffOutdated:
		return gameTerminal(types.ReadinessGameOutdated, game), nil
	case types.DiffAvailable:
		return gameTerminal(types.ReadinessGameUpdateAvailable, game), nil
	}

	// Voice packages, in selection order.
	var predownloads []types.VersionDiff

	for _, locale := range check.SelectedVoices {
		r.notify(check, types.StatusUpdate{Stage: types.StageVoice, Locale: locale})

		voice, err := r.Versions.VoiceDiff(ctx, check.GamePath, locale)
		if err != nil {
			return ReadinessResult{}, err
		}

		switch voice.Kind {
		case types.DiffAvailable:
			return voiceTerminal(types.ReadinessVoiceUpdateAvailable, voice), nil
		case types.DiffOutdated:
			return voiceTerminal(types.ReadinessVoiceOutdated, voice), nil
		case types.DiffNotInstalled:
			return voiceTerminal(types.ReadinessVoiceNotInstalled, voice), nil
		case types.DiffPredownload:
			predownloads = append(predownloads, voice)
		}
	}

	// Patch cache sync plus game-specific patch checks.
	r.notify(check, types.StatusUpdate{Stage: types.StagePatch})

	var diagnostics []string
	if len(check.PatchServers) > 0 {
		synced, failures := r.Patch.Sync(ctx, check.PatchFolder, check.PatchServers)
		for _, failure := range failures {
			log.Warn().Err(failure).Msg("patch mirror sync failed")
			diagnostics = append(diagnostics, failure.Error())
		}
		if !synced {
			log.Warn().Msg("all patch mirrors failed, using local patch cache")
		}
	}

	for _, patchCheck := range r.PatchChecks {
		kind, err := patchCheck(ctx, check, game)
		if err != nil {
			return ReadinessResult{MirrorDiagnostics: diagnostics}, err
		}
		if kind != "" && kind != types.ReadinessLaunch {
			result := terminal(kind)
			result.MirrorDiagnostics = diagnostics
			return result, nil
		}
	}

	// Telemetry servers. Lookup failures count as disabled: never block
	// play on a failed probe.
	disabled, err := r.Telemetry.Disabled(ctx, check.TelemetryHosts)
	if err != nil {
		log.Warn().Err(err).Msg("failed to check telemetry servers, assuming disabled")
		disabled = true
	}
	if !disabled && !check.IgnoreTelemetry {
		result := terminal(types.ReadinessTelemetryNotDisabled)
		result.MirrorDiagnostics = diagnostics
		return result, nil
	}

	if game.Kind == types.DiffPredownload {
		return ReadinessResult{
			State: types.ReadinessState{
				Kind:              types.ReadinessPredownloadAvailable,
				GameDiff:          &game,
				PredownloadVoices: predownloads,
			},
			MirrorDiagnostics: diagnostics,
		}, nil
	}

	result := terminal(types.ReadinessLaunch)
	result.MirrorDiagnostics = diagnostics
	return result, nil
}

func (r ReadinessResolver) notify(check CheckContext, update types.StatusUpdate) {
	if check.StatusUpdater != nil {
		check.StatusUpdater(update)
	}
}

func terminal(kind types.ReadinessKind) ReadinessResult {
	return ReadinessResult{State: types.ReadinessState{Kind: kind}}
}

func gameTerminal(kind types.ReadinessKind, diff types.VersionDiff) ReadinessResult {
	return ReadinessResult{State: types.ReadinessState{Kind: kind, GameDiff: &diff}}
}

func voiceTerminal(kind types.ReadinessKind, diff types.VersionDiff) ReadinessResult {
	return ReadinessResult{State: types.ReadinessState{Kind: kind, VoiceDiff: &diff}}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
