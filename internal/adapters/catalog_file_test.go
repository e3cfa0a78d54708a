package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"windlass/internal/types"
)

func writeCatalogFile(t *testing.T, catalog, name, content string) {
	t.Helper()
	path := filepath.Join(catalog, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	catalog := t.TempDir()
	writeCatalogFile(t, catalog, "components.json", `{
		"wine": [
			{"name": "wine-ge-proton", "title": "Wine-GE-Proton"},
			{"name": "lutris", "title": "Lutris", "features": {"need_dxvk": true, "command": "wine '%game%'"}}
		],
		"dxvk": [
			{"name": "vanilla", "title": "Vanilla"}
		]
	}`)
	writeCatalogFile(t, catalog, "wine/wine-ge-proton.json", `[
		{"name": "wine-ge-proton8-25", "title": "Wine-GE-Proton 8-25", "uri": "wine-ge-proton8-25.tar.xz",
		 "files": {"wine": "bin/wine", "wine64": "bin/wine64"}},
		{"name": "wine-ge-proton8-24", "title": "Wine-GE-Proton 8-24", "uri": "wine-ge-proton8-24.tar.xz",
		 "files": {"wine": "bin/wine"},
		 "features": {"compact_launch": true, "env": {"WINEARCH": "win64", "SteamAppId": 0}}}
	]`)
	writeCatalogFile(t, catalog, "wine/lutris.json", `[
		{"name": "lutris-8.0", "title": "Lutris 8.0", "uri": "lutris-8.0.tar.xz",
		 "files": {"wine": "bin/wine"}}
	]`)
	writeCatalogFile(t, catalog, "dxvk/vanilla.json", `[
		{"name": "dxvk-2.3", "title": "DXVK 2.3", "uri": "dxvk-2.3.tar.gz"},
		{"name": "dxvk-2.2", "title": "DXVK 2.2", "uri": "dxvk-2.2.tar.gz"}
	]`)
	return catalog
}

func TestLoadGroupsWine(t *testing.T) {
	catalog := writeTestCatalog(t)

	groups, err := NewCatalogFileAdapter().LoadGroups(catalog, types.ComponentKindWine)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	require.Equal(t, "wine-ge-proton", groups[0].Name)
	require.Nil(t, groups[0].Features)
	require.Len(t, groups[0].Versions, 2)

	first := groups[0].Versions[0]
	require.Equal(t, "wine-ge-proton8-25", first.Name)
	require.Equal(t, "wine-ge-proton8-25.tar.xz", first.URI)
	require.Equal(t, "bin/wine", first.Files.Wine)
	require.Equal(t, "bin/wine64", first.Files.Wine64)
	require.Nil(t, first.Features)

	second := groups[0].Versions[1]
	require.NotNil(t, second.Features)
	require.True(t, second.Features.CompactLaunch)
	wantEnv := map[string]string{"WINEARCH": "win64", "SteamAppId": "0"}
	if diff := cmp.Diff(wantEnv, second.Features.Env); diff != "" {
		t.Fatalf("unexpected env (-want +got):\n%s", diff)
	}

	require.NotNil(t, groups[1].Features)
	require.Equal(t, "wine '%game%'", groups[1].Features.Command)
}

func TestLoadGroupsDxvkSkipsFiles(t *testing.T) {
	catalog := writeTestCatalog(t)

	groups, err := NewCatalogFileAdapter().LoadGroups(catalog, types.ComponentKindDxvk)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Versions, 2)
	require.Empty(t, groups[0].Versions[0].Files.Wine)
}

func TestLoadGroupsStructuralErrorsNamePath(t *testing.T) {
	cases := []struct {
		name     string
		index    string
		wantPath string
	}{
		{
			name:     "missing group name",
			index:    `{"wine": [{"title": "No Name"}]}`,
			wantPath: "wine[0].name",
		},
		{
			name:     "non-string title",
			index:    `{"wine": [{"name": "x", "title": 7}]}`,
			wantPath: "wine[0].title",
		},
		{
			name:     "kind missing",
			index:    `{"dxvk": []}`,
			wantPath: "wine",
		},
		{
			name:     "index not an object",
			index:    `[]`,
			wantPath: "components",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := t.TempDir()
			writeCatalogFile(t, catalog, "components.json", tc.index)

			_, err := NewCatalogFileAdapter().LoadGroups(catalog, types.ComponentKindWine)
			require.Error(t, err)
			require.Contains(t, err.Error(), "wrong components index structure")
			require.Contains(t, err.Error(), tc.wantPath)
		})
	}
}

func TestLoadGroupsMissingVersionDocument(t *testing.T) {
	catalog := t.TempDir()
	writeCatalogFile(t, catalog, "components.json", `{"wine": [{"name": "ghost", "title": "Ghost"}]}`)

	_, err := NewCatalogFileAdapter().LoadGroups(catalog, types.ComponentKindWine)
	require.Error(t, err)
	require.Contains(t, err.Error(), "catalog document not found")
}

func TestLoadGroupsWineRequiresFiles(t *testing.T) {
	catalog := t.TempDir()
	writeCatalogFile(t, catalog, "components.json", `{"wine": [{"name": "g", "title": "G"}]}`)
	writeCatalogFile(t, catalog, "wine/g.json", `[{"name": "v", "title": "V", "uri": "v.tar.xz"}]`)

	_, err := NewCatalogFileAdapter().LoadGroups(catalog, types.ComponentKindWine)
	require.Error(t, err)
	require.Contains(t, err.Error(), "wine/g.json[0].files")
}

func TestFeaturesFromTolerance(t *testing.T) {
	// Present but non-object features degrade to the defaults.
	features := featuresFrom("not an object")
	require.NotNil(t, features)
	require.True(t, features.NeedDXVK)
	require.Empty(t, features.Env)

	// Mistyped fields keep their defaults without failing the document.
	features = featuresFrom(map[string]any{
		"need_dxvk":     "yes",
		"prefix_subdir": "pfx",
		"bundle":        "proton",
	})
	require.True(t, features.NeedDXVK)
	require.Equal(t, "pfx", features.PrefixSubdir)
	require.NotNil(t, features.Bundle)
	require.Equal(t, types.BundleProton, *features.Bundle)

	require.Nil(t, featuresFrom(nil))
}
