package app

import (
	"windlass/internal/adapters"
	"windlass/internal/ports"
	"windlass/internal/shared"
	"windlass/internal/types"
)

// Service wires the registry and the external providers behind ports so
// commands and tests can swap any collaborator.
type Service struct {
	Registry  *Registry
	Profiles  ports.ProfileSourcePort
	Patch     ports.PatchPort
	Telemetry ports.TelemetryPort
	Env       types.RuntimeEnvironment

	// VersionsFor builds the game version provider for a profile. The
	// default is the file-backed stand-in; deployments with a live
	// version API replace it.
	VersionsFor func(profile types.GameProfile) ports.GameVersionPort
}

func NewService(env types.RuntimeEnvironment, lookup shared.EnvLookup) Service {
	locator := adapters.NewSteamLocatorAdapter(env, lookup)
	return Service{
		Registry:  NewRegistry(adapters.NewCatalogFileAdapter(), adapters.NewProtonDiscoveryAdapter(locator), env),
		Profiles:  adapters.NewProfileFileAdapter(),
		Patch:     adapters.NewPatchMirrorsAdapter(),
		Telemetry: adapters.NewDNSTelemetryAdapter(),
		Env:       env,
		VersionsFor: func(profile types.GameProfile) ports.GameVersionPort {
			return adapters.NewGameVersionFileAdapter(profile.Remote)
		},
	}
}
