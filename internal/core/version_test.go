package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"windlass/internal/types"
)

func TestCompareGameVersions(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"4.2.0", "4.3.0", -1},
		{"4.3.0", "4.3.0", 0},
		{"4.10.0", "4.9.0", 1},
		{"4.2", "4.2.0", 0},
	}
	for _, tc := range cases {
		got, err := CompareGameVersions(tc.a, tc.b)
		require.NoError(t, err)
		require.Equalf(t, tc.want, got, "compare %s %s", tc.a, tc.b)
	}

	_, err := CompareGameVersions("not-a-version", "4.2.0")
	require.Error(t, err)
}

func TestClassifyDiff(t *testing.T) {
	cases := []struct {
		name        string
		installed   string
		latest      string
		predownload string
		minimum     string
		want        types.DiffKind
	}{
		{"empty installed", "", "4.3.0", "", "", types.DiffNotInstalled},
		{"up to date", "4.3.0", "4.3.0", "", "", types.DiffLatest},
		{"ahead of latest", "4.4.0", "4.3.0", "", "", types.DiffLatest},
		{"predownload pending", "4.3.0", "4.3.0", "4.4.0", "", types.DiffPredownload},
		{"predownload equal to latest", "4.3.0", "4.3.0", "4.3.0", "", types.DiffLatest},
		{"update available", "4.2.0", "4.3.0", "", "4.0.0", types.DiffAvailable},
		{"below minimum", "3.9.0", "4.3.0", "", "4.0.0", types.DiffOutdated},
		{"no minimum configured", "3.9.0", "4.3.0", "", "", types.DiffAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClassifyDiff(tc.installed, tc.latest, tc.predownload, tc.minimum)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPatchVersionOutdated(t *testing.T) {
	outdated, err := PatchVersionOutdated("2.0.0", "2.1.0")
	require.NoError(t, err)
	require.True(t, outdated)

	outdated, err = PatchVersionOutdated("2.1.0", "2.1.0")
	require.NoError(t, err)
	require.False(t, outdated)

	// Revision suffixes order after the base version.
	outdated, err = PatchVersionOutdated("2.1.0", "2.1.0-1")
	require.NoError(t, err)
	require.True(t, outdated)
}
