package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"windlass/internal/types"
)

func TestResolveFeaturesWholeObjectFallback(t *testing.T) {
	proton := types.BundleProton
	versionLevel := types.Features{
		Bundle:       &proton,
		PrefixSubdir: "pfx",
		Env:          map[string]string{"SteamAppId": "0"},
	}
	groupLevel := types.Features{
		NeedDXVK: true,
		Command:  "wine '%game%'",
		Env:      map[string]string{"WINEARCH": "win64"},
	}

	cases := []struct {
		name    string
		version *types.Features
		group   *types.Features
		want    types.Features
	}{
		{"version wins over group", &versionLevel, &groupLevel, versionLevel},
		{"group when version absent", nil, &groupLevel, groupLevel},
		{"defaults when both absent", nil, nil, types.DefaultFeatures()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveFeatures(tc.version, tc.group)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected features (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveFeaturesNoFieldMerge(t *testing.T) {
	// A sparse version-level object replaces the group object entirely;
	// unset fields do not inherit from the group.
	version := types.Features{PrefixSubdir: "pfx"}
	group := types.Features{NeedDXVK: true, Command: "wine '%game%'"}

	got := ResolveFeatures(&version, &group)
	require.False(t, got.NeedDXVK)
	require.Empty(t, got.Command)
	require.Equal(t, "pfx", got.PrefixSubdir)
}

func TestVersionFeatures(t *testing.T) {
	group := types.ComponentGroup{
		Name:     "wine-ge-proton",
		Features: &types.Features{NeedDXVK: true, Env: map[string]string{}},
	}
	version := types.ComponentVersion{Name: "wine-ge-proton8-25"}

	got := VersionFeatures(version, group)
	require.True(t, got.NeedDXVK)

	version.Features = &types.Features{CompactLaunch: true}
	got = VersionFeatures(version, group)
	require.True(t, got.CompactLaunch)
	require.False(t, got.NeedDXVK)
}

func TestExpandTemplate(t *testing.T) {
	paths := PathContext{
		Build:  "/builds/GE-Proton8-4",
		Prefix: "/prefixes/default",
		Game:   "/games/global",
	}

	got := ExpandTemplate("python3 '%build%/proton' waitforexitandrun", paths)
	require.Equal(t, "python3 '/builds/GE-Proton8-4/proton' waitforexitandrun", got)

	// Unknown placeholders pass through untouched.
	require.Equal(t, "%unknown%", ExpandTemplate("%unknown%", paths))
}

func TestExpandEnv(t *testing.T) {
	paths := PathContext{Prefix: "/prefixes/default"}
	env := map[string]string{
		"STEAM_COMPAT_DATA_PATH": "%prefix%",
		"SteamAppId":             "0",
	}

	got := ExpandEnv(env, paths)
	want := map[string]string{
		"STEAM_COMPAT_DATA_PATH": "/prefixes/default",
		"SteamAppId":             "0",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected env (-want +got):\n%s", diff)
	}

	// The input map is never mutated.
	require.Equal(t, "%prefix%", env["STEAM_COMPAT_DATA_PATH"])
}
