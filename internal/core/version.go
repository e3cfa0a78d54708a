package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"windlass/internal/types"
)

// CompareGameVersions orders two dotted game versions (PEP 440 covers the
// dotted-triple scheme the games publish). Returns -1, 0 or 1.
func CompareGameVersions(a, b string) (int, error) {
	left, err := pep440.Parse(a)
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unparseable game version: " + a).
			WithCause(err)
	}
	right, err := pep440.Parse(b)
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unparseable game version: " + b).
			WithCause(err)
	}
	switch {
	case left.LessThan(right):
		return -1, nil
	case left.Equal(right):
		return 0, nil
	default:
		return 1, nil
	}
}

// ClassifyDiff turns a version comparison into a diff kind: empty
// installed means not installed; up to date with a pending predownload
// version means predownload; behind the minimum supported version means
// outdated (too old for an incremental update), otherwise an update is
// available.
func ClassifyDiff(installed, latest, predownload, minimum string) (types.DiffKind, error) {
	if installed == "" {
		return types.DiffNotInstalled, nil
	}
	cmp, err := CompareGameVersions(installed, latest)
	if err != nil {
		return "", err
	}
	if cmp >= 0 {
		if predownload != "" && predownload != latest {
			return types.DiffPredownload, nil
		}
		return types.DiffLatest, nil
	}
	if minimum != "" {
		old, err := CompareGameVersions(installed, minimum)
		if err != nil {
			return "", err
		}
		if old < 0 {
			return types.DiffOutdated, nil
		}
	}
	return types.DiffAvailable, nil
}

// PatchVersionOutdated reports whether the installed patch version is
// older than the published one, using Debian version ordering (patch
// projects tag releases with revision suffixes Debian ordering handles).
func PatchVersionOutdated(installed, published string) (bool, error) {
	have, err := debversion.NewVersion(installed)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unparseable installed patch version: " + installed).
			WithCause(err)
	}
	want, err := debversion.NewVersion(published)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unparseable published patch version: " + published).
			WithCause(err)
	}
	return have.LessThan(want), nil
}
