package adapters

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"windlass/internal/shared"
	"windlass/internal/types"
)

// SteamLocatorAdapter finds the Steam installation by probing the
// conventional install roots, then reads libraryfolders.vdf for the
// additional library locations.
type SteamLocatorAdapter struct {
	Env    types.RuntimeEnvironment
	Lookup shared.EnvLookup
}

func NewSteamLocatorAdapter(env types.RuntimeEnvironment, lookup shared.EnvLookup) SteamLocatorAdapter {
	return SteamLocatorAdapter{Env: env, Lookup: lookup}
}

// Locate returns the Steam root plus every library's steamapps
// directory. A missing installation is only a hard failure
// (failed-precondition) when the environment asserts a Steam launch;
// otherwise it is a plain not-found.
func (a SteamLocatorAdapter) Locate() (types.SteamInstall, error) {
	for _, root := range a.candidateRoots() {
		if !isDir(filepath.Join(root, "steamapps")) {
			continue
		}
		install := types.SteamInstall{
			Root:           root,
			LibraryFolders: []string{filepath.Join(root, "steamapps")},
		}
		for _, library := range readLibraryFolders(filepath.Join(root, "steamapps", "libraryfolders.vdf")) {
			steamapps := filepath.Join(library, "steamapps")
			if steamapps != install.LibraryFolders[0] && isDir(steamapps) {
				install.LibraryFolders = append(install.LibraryFolders, steamapps)
			}
		}
		return install, nil
	}

	if a.Env.SteamLaunched() {
		return types.SteamInstall{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("steam launch asserted but no steam installation found")
	}
	return types.SteamInstall{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("no steam installation found")
}

func (a SteamLocatorAdapter) candidateRoots() []string {
	if root, ok := a.Lookup("STEAM_ROOT"); ok && root != "" {
		return []string{root}
	}
	home, _ := a.Lookup("HOME")
	return []string{
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".steam", "root"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	}
}

// readLibraryFolders extracts the "path" values from a libraryfolders.vdf
// document. Only the quoted key/value line shape is consumed, so a full
// VDF parser is not needed.
func readLibraryFolders(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var folders []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), `"`)
		// A quoted key/value line splits into five parts with the key at
		// index 1 and the value at index 3.
		if len(parts) >= 4 && parts[1] == "path" {
			folders = append(folders, parts[3])
		}
	}
	return folders
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
