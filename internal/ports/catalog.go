package ports

import "windlass/internal/types"

// CatalogSourcePort loads component groups of one kind from a two-level
// JSON catalog directory: a components.json index naming the groups, plus
// a <kind>/<group>.json version document per group.
type CatalogSourcePort interface {
	LoadGroups(catalogPath string, kind types.ComponentKind) ([]types.ComponentGroup, error)
}
