package adapters

import (
	"context"
	"os"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"windlass/internal/types"
)

var validEditions = map[types.GameEdition]struct{}{
	types.EditionGlobal: {},
	types.EditionChina:  {},
}

var validLocales = map[types.VoiceLocale]struct{}{
	types.VoiceEnglish:  {},
	types.VoiceJapanese: {},
	types.VoiceKorean:   {},
	types.VoiceChinese:  {},
}

// ProfileFileAdapter loads per-game profile documents from YAML.
type ProfileFileAdapter struct{}

func NewProfileFileAdapter() ProfileFileAdapter {
	return ProfileFileAdapter{}
}

func (a ProfileFileAdapter) LoadProfile(path string) (types.GameProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.GameProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("profile file not found").
			WithCause(err)
	}
	var profile types.GameProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return types.GameProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse profile yaml").
			WithCause(err)
	}
	if profile.Edition == "" {
		profile.Edition = types.EditionGlobal
	}
	if err := validateProfile(profile); err != nil {
		return types.GameProfile{}, err
	}
	return profile, nil
}

func validateProfile(profile types.GameProfile) error {
	ctx := context.Background()
	assert.NotEmpty(ctx, profile.Name, "name must be set")
	assert.NotEmpty(ctx, profile.Game.Path, "game.path must be set")
	assert.NotEmpty(ctx, profile.Runner.Prefix, "runner.prefix must be set")

	if _, ok := validEditions[profile.Edition]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("edition must be global or china")
	}
	for _, locale := range profile.Voices {
		if _, ok := validLocales[locale]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("unknown voice locale: " + string(locale))
		}
	}
	if len(profile.Patch.Servers) > 0 && profile.Patch.Folder == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("patch.folder must be set when patch.servers are configured")
	}
	return nil
}
