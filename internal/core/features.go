package core

import (
	"strings"

	"windlass/internal/types"
)

// ResolveFeatures returns the effective features using whole-object
// fallback: the version-level features win completely when present, else
// the group-level features, else the documented defaults. There is no
// field-by-field merge across the two levels; catalog authors must write
// complete feature objects.
func ResolveFeatures(version, group *types.Features) types.Features {
	if version != nil {
		return *version
	}
	if group != nil {
		return *group
	}
	return types.DefaultFeatures()
}

// VersionFeatures resolves the effective features of a version inside the
// group it belongs to.
func VersionFeatures(version types.ComponentVersion, group types.ComponentGroup) types.Features {
	return ResolveFeatures(version.Features, group.Features)
}

// PathContext carries the concrete paths substituted into launch command
// and environment templates.
type PathContext struct {
	Build    string
	Prefix   string
	Temp     string
	Launcher string
	Game     string
}

// ExpandTemplate substitutes the %build%, %prefix%, %temp%, %launcher%
// and %game% placeholders in a feature template.
func ExpandTemplate(template string, paths PathContext) string {
	replacer := strings.NewReplacer(
		"%build%", paths.Build,
		"%prefix%", paths.Prefix,
		"%temp%", paths.Temp,
		"%launcher%", paths.Launcher,
		"%game%", paths.Game,
	)
	return replacer.Replace(template)
}

// ExpandEnv applies ExpandTemplate to every value of a feature
// environment map, returning a new map.
func ExpandEnv(env map[string]string, paths PathContext) map[string]string {
	expanded := make(map[string]string, len(env))
	for key, value := range env {
		expanded[key] = ExpandTemplate(value, paths)
	}
	return expanded
}
