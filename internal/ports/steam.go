package ports

import "windlass/internal/types"

// SteamLocatorPort locates the Steam installation root and every
// configured library folder.
type SteamLocatorPort interface {
	Locate() (types.SteamInstall, error)
}

// ProtonDiscoveryPort enumerates Steam-managed Proton builds, synthesized
// as a single managed runner group.
type ProtonDiscoveryPort interface {
	Discover() ([]types.ComponentGroup, error)
}
