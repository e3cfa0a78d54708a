package app

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"windlass/internal/ports"
	"windlass/internal/types"
)

type catalogKey struct {
	path string
	kind types.ComponentKind
}

// Registry resolves component groups from the JSON catalog, overriding
// the wine catalog with Steam-managed Proton discovery when running
// under Steam (falling back to the catalog when discovery fails).
//
// Results are memoized per (catalog path, kind): a catalog edited on
// disk after first load is not observed until Invalidate is called or
// the process restarts. That staleness window is deliberate; the catalog
// only changes when the launcher updates it. The cache is mutex-guarded
// so concurrent first loads neither duplicate entries nor expose a
// partially built result.
type Registry struct {
	Catalog   ports.CatalogSourcePort
	Discovery ports.ProtonDiscoveryPort
	Env       types.RuntimeEnvironment

	mu    sync.Mutex
	cache map[catalogKey][]types.ComponentGroup
}

func NewRegistry(catalog ports.CatalogSourcePort, discovery ports.ProtonDiscoveryPort, env types.RuntimeEnvironment) *Registry {
	return &Registry{
		Catalog:   catalog,
		Discovery: discovery,
		Env:       env,
		cache:     map[catalogKey][]types.ComponentGroup{},
	}
}

// Groups returns the component groups for one kind, loading and caching
// them on first use.
func (r *Registry) Groups(catalogPath string, kind types.ComponentKind) ([]types.ComponentGroup, error) {
	key := catalogKey{path: catalogPath, kind: kind}

	r.mu.Lock()
	defer r.mu.Unlock()

	if groups, ok := r.cache[key]; ok {
		return groups, nil
	}
	groups, err := r.load(catalogPath, kind)
	if err != nil {
		return nil, err
	}
	r.cache[key] = groups
	return groups, nil
}

func (r *Registry) load(catalogPath string, kind types.ComponentKind) ([]types.ComponentGroup, error) {
	if kind == types.ComponentKindWine && r.Env.SteamLaunched() && r.Discovery != nil {
		groups, err := r.Discovery.Discover()
		if err == nil {
			return groups, nil
		}
		log.Warn().Err(err).Msg("proton discovery failed, falling back to components catalog")
	}
	return r.Catalog.LoadGroups(catalogPath, kind)
}

// Invalidate drops the cached groups for one catalog path, both kinds.
func (r *Registry) Invalidate(catalogPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cache, catalogKey{path: catalogPath, kind: types.ComponentKindWine})
	delete(r.cache, catalogKey{path: catalogPath, kind: types.ComponentKindDxvk})
}

// Reload drops and reloads one catalog entry.
func (r *Registry) Reload(catalogPath string, kind types.ComponentKind) ([]types.ComponentGroup, error) {
	r.mu.Lock()
	delete(r.cache, catalogKey{path: catalogPath, kind: kind})
	r.mu.Unlock()
	return r.Groups(catalogPath, kind)
}

// FindGroup looks up a runner group by its own name or by any member
// version's name, so a runner is addressable by family or by specific
// build.
func (r *Registry) FindGroup(catalogPath, name string) (types.ComponentGroup, bool, error) {
	groups, err := r.Groups(catalogPath, types.ComponentKindWine)
	if err != nil {
		return types.ComponentGroup{}, false, err
	}
	for _, group := range groups {
		if group.Name == name {
			return group, true, nil
		}
		for _, version := range group.Versions {
			if version.Name == name {
				return group, true, nil
			}
		}
	}
	return types.ComponentGroup{}, false, nil
}

// FindVersion looks up a single runner version by name across all
// groups, returning the version together with its group.
func (r *Registry) FindVersion(catalogPath, name string) (types.ComponentVersion, types.ComponentGroup, bool, error) {
	groups, err := r.Groups(catalogPath, types.ComponentKindWine)
	if err != nil {
		return types.ComponentVersion{}, types.ComponentGroup{}, false, err
	}
	for _, group := range groups {
		for _, version := range group.Versions {
			if version.Name == name {
				return version, group, true, nil
			}
		}
	}
	return types.ComponentVersion{}, types.ComponentGroup{}, false, nil
}

// Latest returns the recommended version: the first version of the first
// group, which is how the catalog orders recommendations.
func (r *Registry) Latest(catalogPath string, kind types.ComponentKind) (types.ComponentVersion, error) {
	groups, err := r.Groups(catalogPath, kind)
	if err != nil {
		return types.ComponentVersion{}, err
	}
	for _, group := range groups {
		if len(group.Versions) > 0 {
			return group.Versions[0], nil
		}
	}
	return types.ComponentVersion{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("catalog lists no versions for kind " + string(kind))
}

// Downloaded filters each group to the versions whose name exists as a
// subdirectory of localFolder. Managed groups pass through unfiltered:
// their presence is asserted externally, not by directory existence.
// Groups left without versions are dropped.
func (r *Registry) Downloaded(catalogPath string, kind types.ComponentKind, localFolder string) ([]types.ComponentGroup, error) {
	groups, err := r.Groups(catalogPath, kind)
	if err != nil {
		return nil, err
	}

	var downloaded []types.ComponentGroup
	for _, group := range groups {
		if group.Managed {
			downloaded = append(downloaded, group)
			continue
		}
		// The cached slices are shared; filter into a fresh one.
		var present []types.ComponentVersion
		for _, version := range group.Versions {
			if isDir(filepath.Join(localFolder, version.Name)) {
				present = append(present, version)
			}
		}
		if len(present) > 0 {
			filtered := group
			filtered.Versions = present
			downloaded = append(downloaded, filtered)
		}
	}
	return downloaded, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
