package types

// ReadinessKind discriminates the closed set of launch readiness outcomes.
// Exactly one is produced per resolution call.
type ReadinessKind string

const (
	ReadinessLaunch               ReadinessKind = "launch"
	ReadinessPredownloadAvailable ReadinessKind = "predownload-available"

	ReadinessWineNotInstalled ReadinessKind = "wine-not-installed"
	ReadinessPrefixNotExists  ReadinessKind = "prefix-not-exists"

	ReadinessGameNotInstalled    ReadinessKind = "game-not-installed"
	ReadinessGameOutdated        ReadinessKind = "game-outdated"
	ReadinessGameUpdateAvailable ReadinessKind = "game-update-available"

	ReadinessVoiceNotInstalled    ReadinessKind = "voice-not-installed"
	ReadinessVoiceOutdated        ReadinessKind = "voice-outdated"
	ReadinessVoiceUpdateAvailable ReadinessKind = "voice-update-available"

	ReadinessPatchNotInstalled    ReadinessKind = "patch-not-installed"
	ReadinessPatchUpdateAvailable ReadinessKind = "patch-update-available"
	ReadinessPatchNotVerified     ReadinessKind = "patch-not-verified"
	ReadinessPatchBroken          ReadinessKind = "patch-broken"
	ReadinessPatchUnsafe          ReadinessKind = "patch-unsafe"
	ReadinessPatchConcerning      ReadinessKind = "patch-concerning"

	ReadinessTelemetryNotDisabled ReadinessKind = "telemetry-not-disabled"
)

// ReadinessState is the terminal outcome of one resolution call. It is
// immutable and carries only the payload needed to act on it: the game
// diff for game states, the voice diff for voice states, and the
// accumulated voice predownloads alongside the game diff for
// predownload-available.
type ReadinessState struct {
	Kind              ReadinessKind `json:"kind"`
	GameDiff          *VersionDiff  `json:"game_diff,omitempty"`
	VoiceDiff         *VersionDiff  `json:"voice_diff,omitempty"`
	PredownloadVoices []VersionDiff `json:"predownload_voices,omitempty"`
}

// CheckStage identifies the resolver check a status update refers to.
type CheckStage string

const (
	StageGame  CheckStage = "game"
	StageVoice CheckStage = "voice"
	StagePatch CheckStage = "patch"
)

// StatusUpdate is delivered to the context's status callback at check
// boundaries. Observational only; handlers must not block the resolver.
type StatusUpdate struct {
	Stage  CheckStage
	Locale VoiceLocale
}
