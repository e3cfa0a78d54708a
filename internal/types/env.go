package types

// RuntimeMode classifies where the launcher is running.
type RuntimeMode string

const (
	// ModeIndependent means not launched through Steam at all.
	ModeIndependent RuntimeMode = "independent"
	// ModeDesktop means Steam-launched on a regular desktop.
	ModeDesktop RuntimeMode = "desktop"
	// ModeDeck means Steam-launched on a Steam Deck.
	ModeDeck RuntimeMode = "deck"
	// ModeOS means Steam-launched on SteamOS (non-Deck).
	ModeOS RuntimeMode = "steamos"
)

// RuntimeEnvironment is computed once from the process environment and
// passed by value into discovery and the readiness service. Nothing below
// this point reads ambient environment variables.
type RuntimeEnvironment struct {
	Mode RuntimeMode

	// CompatDataPath is Steam's STEAM_COMPAT_DATA_PATH when set; managed
	// prefixes live under it.
	CompatDataPath string
}

// SteamLaunched reports whether the launcher runs under a Steam
// environment of any flavor.
func (e RuntimeEnvironment) SteamLaunched() bool {
	return e.Mode != ModeIndependent
}

// DetectEnvironment derives the runtime environment from the three Steam
// boolean signals plus the compat data path. The lookup is injected so
// tests can supply their own environment.
//
// A Steam Deck also reports SteamOS, so the Deck flag wins over the OS
// flag; both are only meaningful when SteamEnv asserts a Steam launch.
func DetectEnvironment(lookup func(string) (string, bool)) RuntimeEnvironment {
	flag := func(name string) bool {
		value, ok := lookup(name)
		return ok && value == "1"
	}

	env := RuntimeEnvironment{Mode: ModeIndependent}
	if compat, ok := lookup("STEAM_COMPAT_DATA_PATH"); ok {
		env.CompatDataPath = compat
	}

	if !flag("SteamEnv") {
		return env
	}

	switch {
	case flag("SteamDeck"):
		env.Mode = ModeDeck
	case flag("SteamOS"):
		env.Mode = ModeOS
	default:
		env.Mode = ModeDesktop
	}
	return env
}

// SteamInstall is the located Steam installation: its root plus every
// configured library folder (the root's own library included).
type SteamInstall struct {
	Root           string
	LibraryFolders []string
}
