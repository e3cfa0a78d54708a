package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/ohler55/ojg/oj"

	"windlass/internal/types"
)

// CatalogFileAdapter reads the two-level JSON catalog: components.json
// listing the groups per kind, plus <kind>/<group>.json per group. The
// catalog ships separately from the binary, so required structure is
// validated strictly and failures name the offending field path.
// Optional feature fields, by contrast, degrade to defaults silently.
type CatalogFileAdapter struct{}

func NewCatalogFileAdapter() CatalogFileAdapter {
	return CatalogFileAdapter{}
}

func (a CatalogFileAdapter) LoadGroups(catalogPath string, kind types.ComponentKind) ([]types.ComponentGroup, error) {
	root, err := parseJSONFile(filepath.Join(catalogPath, "components.json"))
	if err != nil {
		return nil, err
	}

	index, ok := root.(map[string]any)
	if !ok {
		return nil, structuralError("components", "index document must be an object")
	}
	entry, ok := index[string(kind)]
	if !ok {
		return nil, structuralError(string(kind), "entry not found")
	}
	list, ok := entry.([]any)
	if !ok {
		return nil, structuralError(string(kind), "entry must be a list")
	}

	groups := make([]types.ComponentGroup, 0, len(list))
	for i, raw := range list {
		path := fmt.Sprintf("%s[%d]", kind, i)
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, structuralError(path, "group entry must be an object")
		}
		name, err := requiredString(obj, path, "name")
		if err != nil {
			return nil, err
		}
		title, err := requiredString(obj, path, "title")
		if err != nil {
			return nil, err
		}
		versions, err := a.loadVersions(catalogPath, kind, name)
		if err != nil {
			return nil, err
		}
		groups = append(groups, types.ComponentGroup{
			Name:     name,
			Title:    title,
			Features: featuresFrom(obj["features"]),
			Versions: versions,
		})
	}
	return groups, nil
}

func (a CatalogFileAdapter) loadVersions(catalogPath string, kind types.ComponentKind, group string) ([]types.ComponentVersion, error) {
	docPath := filepath.Join(string(kind), group+".json")
	root, err := parseJSONFile(filepath.Join(catalogPath, docPath))
	if err != nil {
		return nil, err
	}

	list, ok := root.([]any)
	if !ok {
		return nil, structuralError(docPath, "version document must be a list")
	}

	versions := make([]types.ComponentVersion, 0, len(list))
	for i, raw := range list {
		path := fmt.Sprintf("%s[%d]", docPath, i)
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, structuralError(path, "version entry must be an object")
		}
		name, err := requiredString(obj, path, "name")
		if err != nil {
			return nil, err
		}
		title, err := requiredString(obj, path, "title")
		if err != nil {
			return nil, err
		}
		uri, err := requiredString(obj, path, "uri")
		if err != nil {
			return nil, err
		}
		files := types.FilesLayout{}
		if kind == types.ComponentKindWine {
			files, err = filesFrom(obj["files"], path)
			if err != nil {
				return nil, err
			}
		}
		versions = append(versions, types.ComponentVersion{
			Name:     name,
			Title:    title,
			URI:      uri,
			Files:    files,
			Features: featuresFrom(obj["features"]),
		})
	}
	return versions, nil
}

// filesFrom parses the wine binary layout. The wine binary path is
// required; the rest depend on the build.
func filesFrom(value any, path string) (types.FilesLayout, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return types.FilesLayout{}, structuralError(path+".files", "files entry must be an object")
	}
	wine, err := requiredString(obj, path+".files", "wine")
	if err != nil {
		return types.FilesLayout{}, err
	}
	return types.FilesLayout{
		Wine:       wine,
		Wine64:     optionalString(obj, "wine64"),
		Wineserver: optionalString(obj, "wineserver"),
		Wineboot:   optionalString(obj, "wineboot"),
		Winecfg:    optionalString(obj, "winecfg"),
	}, nil
}

// featuresFrom parses an optional features object field by field: a
// missing or mistyped field keeps its default instead of failing the
// document. A present but non-object features value still produces the
// defaults, matching the catalog's tolerant feature contract.
func featuresFrom(value any) *types.Features {
	if value == nil {
		return nil
	}
	features := types.DefaultFeatures()
	obj, ok := value.(map[string]any)
	if !ok {
		return &features
	}
	if bundle, ok := obj["bundle"].(string); ok && strings.EqualFold(bundle, string(types.BundleProton)) {
		proton := types.BundleProton
		features.Bundle = &proton
	}
	if need, ok := obj["need_dxvk"].(bool); ok {
		features.NeedDXVK = need
	}
	if compact, ok := obj["compact_launch"].(bool); ok {
		features.CompactLaunch = compact
	}
	if subdir, ok := obj["prefix_subdir"].(string); ok {
		features.PrefixSubdir = subdir
	}
	if command, ok := obj["command"].(string); ok {
		features.Command = command
	}
	if env, ok := obj["env"].(map[string]any); ok {
		for key, raw := range env {
			if text, ok := raw.(string); ok {
				features.Env[key] = text
			} else {
				features.Env[key] = fmt.Sprint(raw)
			}
		}
	}
	return &features
}

func parseJSONFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog document not found: " + path).
			WithCause(err)
	}
	root, err := oj.Parse(data)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog document: " + path).
			WithCause(err)
	}
	return root, nil
}

func requiredString(obj map[string]any, path, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", structuralError(path+"."+key, "entry not found")
	}
	text, ok := raw.(string)
	if !ok {
		return "", structuralError(path+"."+key, "entry must be a string")
	}
	return text, nil
}

func optionalString(obj map[string]any, key string) string {
	text, _ := obj[key].(string)
	return text
}

func structuralError(path, msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("wrong components index structure: " + path + ": " + msg)
}
