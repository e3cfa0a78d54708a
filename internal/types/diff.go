package types

type DiffKind string

const (
	DiffLatest       DiffKind = "latest"
	DiffPredownload  DiffKind = "predownload"
	DiffAvailable    DiffKind = "diff"
	DiffOutdated     DiffKind = "outdated"
	DiffNotInstalled DiffKind = "not-installed"
)

type GameEdition string

const (
	EditionGlobal GameEdition = "global"
	EditionChina  GameEdition = "china"
)

type VoiceLocale string

const (
	VoiceEnglish  VoiceLocale = "en-us"
	VoiceJapanese VoiceLocale = "ja-jp"
	VoiceKorean   VoiceLocale = "ko-kr"
	VoiceChinese  VoiceLocale = "zh-cn"
)

// VersionDiff is the externally computed comparison between an installed
// and a remote game or voice-package version. The resolver treats it as an
// opaque tagged value: only Kind drives control flow.
type VersionDiff struct {
	Kind         DiffKind    `json:"kind"`
	Current      string      `json:"current,omitempty"`
	Latest       string      `json:"latest,omitempty"`
	DownloadSize uint64      `json:"download_size,omitempty"`
	Edition      GameEdition `json:"edition,omitempty"`
	Locale       VoiceLocale `json:"locale,omitempty"`
}
