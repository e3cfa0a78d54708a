package types

import "path/filepath"

type ComponentKind string

const (
	ComponentKindWine ComponentKind = "wine"
	ComponentKindDxvk ComponentKind = "dxvk"
)

type BundleKind string

const (
	BundleProton BundleKind = "proton"
)

// Features describes how a runner build is launched: its environment
// variables, launch command template, prefix layout and bundle kind.
//
// Command and Env values understand the placeholders %build%, %prefix%,
// %temp%, %launcher% and %game%, expanded at launch assembly time.
type Features struct {
	// Bundle marks builds that are not plain Wine (currently only Proton).
	Bundle *BundleKind `json:"bundle,omitempty" yaml:"bundle,omitempty"`

	// NeedDXVK reports whether DXVK must be installed into the prefix for
	// this build. Proton ships its own.
	NeedDXVK bool `json:"need_dxvk" yaml:"need_dxvk"`

	// CompactLaunch writes the launch call into a temporary bat file.
	// Needed for runners whose Command cannot handle multiline arguments.
	CompactLaunch bool `json:"compact_launch" yaml:"compact_launch"`

	// PrefixSubdir is the subdirectory of the configured prefix that holds
	// the actual Wine prefix (Proton keeps it under "pfx").
	PrefixSubdir string `json:"prefix_subdir,omitempty" yaml:"prefix_subdir,omitempty"`

	// Command overrides the default launch command.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`

	Env map[string]string `json:"env" yaml:"env"`
}

// DefaultFeatures returns the documented feature defaults: DXVK needed,
// no bundle, no command override, empty environment.
func DefaultFeatures() Features {
	return Features{
		NeedDXVK: true,
		Env:      map[string]string{},
	}
}

// FilesLayout locates the platform binaries inside a runner build.
// Only Wine is required; the rest depend on the build's layout.
type FilesLayout struct {
	Wine       string `json:"wine" yaml:"wine"`
	Wine64     string `json:"wine64,omitempty" yaml:"wine64,omitempty"`
	Wineserver string `json:"wineserver,omitempty" yaml:"wineserver,omitempty"`
	Wineboot   string `json:"wineboot,omitempty" yaml:"wineboot,omitempty"`
	Winecfg    string `json:"winecfg,omitempty" yaml:"winecfg,omitempty"`
}

// ComponentVersion is a single installable build inside a group. Name is
// unique within the group and doubles as the on-disk folder name for
// unmanaged entries. For managed entries URI is a live filesystem path
// instead of a downloadable artifact name.
type ComponentVersion struct {
	Name     string      `json:"name" yaml:"name"`
	Title    string      `json:"title" yaml:"title"`
	URI      string      `json:"uri" yaml:"uri"`
	Files    FilesLayout `json:"files" yaml:"files"`
	Features *Features   `json:"features,omitempty" yaml:"features,omitempty"`
	Managed  bool        `json:"managed" yaml:"managed"`
}

// RunnerDir returns the directory holding this build's binaries: the URI
// itself for managed builds, buildsDir/Name otherwise.
func (v ComponentVersion) RunnerDir(buildsDir string) string {
	if v.Managed {
		return v.URI
	}
	return filepath.Join(buildsDir, v.Name)
}

// ComponentGroup is a family of builds sharing default features.
// Managed groups (Steam Proton) are owned externally: their presence is
// asserted by the environment, not by catalog downloads.
type ComponentGroup struct {
	Name     string             `json:"name" yaml:"name"`
	Title    string             `json:"title" yaml:"title"`
	Features *Features          `json:"features,omitempty" yaml:"features,omitempty"`
	Versions []ComponentVersion `json:"versions" yaml:"versions"`
	Managed  bool               `json:"managed" yaml:"managed"`
}
