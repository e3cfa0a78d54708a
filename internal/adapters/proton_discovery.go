package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"windlass/internal/ports"
	"windlass/internal/types"
)

// ProtonDiscoveryAdapter enumerates Proton builds installed by Steam:
// every library's common directory plus the root's compatibilitytools.d.
// It synthesizes exactly one managed runner group so the rest of the
// launcher treats Steam Proton like any other runner family.
type ProtonDiscoveryAdapter struct {
	Locator ports.SteamLocatorPort
}

func NewProtonDiscoveryAdapter(locator ports.SteamLocatorPort) ProtonDiscoveryAdapter {
	return ProtonDiscoveryAdapter{Locator: locator}
}

func (a ProtonDiscoveryAdapter) Discover() ([]types.ComponentGroup, error) {
	install, err := a.Locator.Locate()
	if err != nil {
		return nil, err
	}

	roots := []string{filepath.Join(install.Root, "compatibilitytools.d")}
	for _, steamapps := range install.LibraryFolders {
		roots = append(roots, filepath.Join(steamapps, "common"))
	}

	var versions []types.ComponentVersion
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			// ReadDir does not follow symlinks, so IsDir also filters
			// out symlinked doppelgangers.
			if !entry.IsDir() {
				continue
			}
			path := filepath.Join(root, entry.Name())
			if !fileExists(filepath.Join(path, "proton")) {
				continue
			}
			version, ok := protonVersionAt(path, entry.Name())
			if !ok {
				continue
			}
			versions = append(versions, version)
		}
	}

	return []types.ComponentGroup{{
		Name:     "steam-proton",
		Title:    "Proton Runners via Steam",
		Features: protonFeatures(),
		Versions: versions,
		Managed:  true,
	}}, nil
}

// protonVersionAt reads a build's version file: whitespace-separated
// build id plus human-readable name, split on the first space. Builds
// whose version file lacks the separator are skipped, not fatal.
func protonVersionAt(path, dirName string) (types.ComponentVersion, bool) {
	raw, err := os.ReadFile(filepath.Join(path, "version"))
	if err != nil {
		log.Debug().Str("path", path).Err(err).Msg("proton build has no readable version file, skipping")
		return types.ComponentVersion{}, false
	}

	content := strings.TrimSpace(string(raw))
	separator := strings.Index(content, " ")
	if separator < 0 {
		log.Debug().Str("path", path).Msg("proton version file does not follow the two-token format, skipping")
		return types.ComponentVersion{}, false
	}
	name := strings.TrimSpace(content[separator+1:])
	if name == "" {
		log.Debug().Str("path", path).Msg("proton version file does not follow the two-token format, skipping")
		return types.ComponentVersion{}, false
	}

	return types.ComponentVersion{
		Name:  name,
		Title: dirName,
		URI:   path,
		Files: types.FilesLayout{
			Wine:       "files/bin/wine",
			Wine64:     "files/bin/wine64",
			Wineserver: "files/bin/wineserver",
			Winecfg:    "files/lib64/wine/x86_64-windows/winecfg.exe",
		},
		Managed: true,
	}, true
}

func protonFeatures() *types.Features {
	proton := types.BundleProton
	return &types.Features{
		Bundle:        &proton,
		NeedDXVK:      false,
		CompactLaunch: true,
		PrefixSubdir:  "pfx",
		Command:       "python3 '%build%/proton' waitforexitandrun",
		Env: map[string]string{
			"STEAM_COMPAT_DATA_PATH":           "%prefix%",
			"STEAM_COMPAT_CLIENT_INSTALL_PATH": "",
			"SteamAppId":                       "0",
		},
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
