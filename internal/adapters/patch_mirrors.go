package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"windlass/internal/shared"
	"windlass/internal/types"
)

const defaultPatchTimeout = 5 * time.Second

const patchMetadataFile = "metadata.json"
const patchVersionFile = "version"

// PatchMirrorsAdapter syncs the local patch cache against an ordered list
// of mirror servers: each mirror is tried in order and the first one that
// serves every file wins. Per-mirror failures are collected for the
// caller's diagnostics, never fatal on their own.
type PatchMirrorsAdapter struct {
	Client *http.Client

	// Files are fetched from each mirror into the patch folder.
	Files []string
}

func NewPatchMirrorsAdapter() PatchMirrorsAdapter {
	return PatchMirrorsAdapter{
		Client: &http.Client{Timeout: defaultPatchTimeout},
		Files:  []string{patchMetadataFile},
	}
}

func (a PatchMirrorsAdapter) Sync(ctx context.Context, folder string, servers []string) (bool, []error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return false, []error{err}
	}

	var failures []error
	for _, server := range servers {
		if err := a.syncFrom(ctx, folder, server); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", server, err))
			continue
		}
		return true, failures
	}
	return false, failures
}

func (a PatchMirrorsAdapter) syncFrom(ctx context.Context, folder, server string) error {
	base := strings.TrimRight(server, "/")
	for _, file := range a.Files {
		url := base + "/" + file
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := a.Client.Do(req)
		if err != nil {
			return err
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return shared.HTTPStatusError(resp.StatusCode, url)
		}
		if err := os.WriteFile(filepath.Join(folder, file), body, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Installed reports whether the patch has been applied at least once:
// patch application records its version into the cache folder.
func (a PatchMirrorsAdapter) Installed(folder string) bool {
	_, err := os.Stat(filepath.Join(folder, patchVersionFile))
	return err == nil
}

func (a PatchMirrorsAdapter) InstalledVersion(folder string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(folder, patchVersionFile))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no patch version recorded in " + folder).
			WithCause(err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func (a PatchMirrorsAdapter) Metadata(_ context.Context, folder string) (types.PatchMetadata, error) {
	raw, err := os.ReadFile(filepath.Join(folder, patchMetadataFile))
	if err != nil {
		return types.PatchMetadata{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("patch metadata not found in " + folder).
			WithCause(err)
	}
	var metadata types.PatchMetadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return types.PatchMetadata{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse patch metadata").
			WithCause(err)
	}
	return metadata, nil
}
