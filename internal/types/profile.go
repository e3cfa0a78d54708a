package types

// GameProfile is a per-game document shipped with the launcher. It names
// everything the readiness service needs to assemble a check context:
// install paths, runner selection, voice locales, patch mirrors and
// telemetry hosts.
type GameProfile struct {
	Name    string          `yaml:"name"`
	Title   string          `yaml:"title"`
	Edition GameEdition     `yaml:"edition"`
	Game    GameConfig      `yaml:"game"`
	Runner  RunnerConfig    `yaml:"runner"`
	Voices  []VoiceLocale   `yaml:"voices,omitempty"`
	Patch   PatchConfig     `yaml:"patch"`
	Tracker TelemetryConfig `yaml:"telemetry"`
	Remote  RemoteVersions  `yaml:"remote"`
}

type GameConfig struct {
	Path string `yaml:"path"`

	// DataFolder is the game's data directory name inside Path
	// (e.g. "GameName_Data").
	DataFolder string `yaml:"data_folder"`
}

type RunnerConfig struct {
	// Selected is a group or version name resolvable through the registry.
	Selected string `yaml:"selected,omitempty"`
	Builds   string `yaml:"builds"`
	Prefix   string `yaml:"prefix"`
	Catalog  string `yaml:"catalog"`
}

type PatchConfig struct {
	Folder  string   `yaml:"folder"`
	Servers []string `yaml:"servers,omitempty"`

	// ApplyExtra enables the optional game-specific patch check
	// (scripting-engine or media-foundation, depending on the game).
	ApplyExtra bool `yaml:"apply_extra"`
}

type TelemetryConfig struct {
	Hosts  []string `yaml:"hosts,omitempty"`
	Ignore bool     `yaml:"ignore"`
}

// RemoteVersions is the published version snapshot the file-based game
// version provider compares installations against. Real deployments
// replace that provider with a live API client.
type RemoteVersions struct {
	Game string `yaml:"game"`

	// Predownload, when set, is a version available ahead of release.
	Predownload string `yaml:"predownload,omitempty"`

	// Minimum is the oldest installed version still served incremental
	// updates; anything older is reported outdated.
	Minimum string `yaml:"minimum,omitempty"`

	Voices map[VoiceLocale]string `yaml:"voices,omitempty"`

	// VoicesPredownload lists per-locale versions available ahead of
	// release; locales absent here have no pending voice predownload.
	VoicesPredownload map[VoiceLocale]string `yaml:"voices_predownload,omitempty"`
}
