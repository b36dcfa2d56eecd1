package summaries

import (
	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/svcerrors"
)

// DimensionRegistry holds the set of dimensions enabled by configuration.
// Dispatching and querying both consult it: disabled dimensions are never
// counted and cannot be summarized.
type DimensionRegistry struct {
	enabled []models.Dimension
	index   map[models.Dimension]struct{}
}

// NewDimensionRegistry builds a registry from configured dimension names.
// Names are resolved the same way summary queries resolve them, so legacy
// hook names are accepted here too. Duplicates collapse to one entry.
func NewDimensionRegistry(names []string) (*DimensionRegistry, *svcerrors.ServiceError) {
	registry := &DimensionRegistry{
		index: make(map[models.Dimension]struct{}),
	}
	for _, name := range names {
		dimension, err := models.NewDimensionFromString(name)
		if err != nil {
			return nil, errInvalidDimensionName(name, err)
		}
		if _, ok := registry.index[dimension]; ok {
			continue
		}
		registry.index[dimension] = struct{}{}
		registry.enabled = append(registry.enabled, dimension)
	}
	return registry, nil
}

// Enabled returns the enabled dimensions in configuration order.
func (r *DimensionRegistry) Enabled() []models.Dimension {
	return r.enabled
}

// Resolve maps a summary name to an enabled dimension. Unknown names and
// known-but-disabled dimensions both report not found, so clients cannot
// probe which dimensions exist.
func (r *DimensionRegistry) Resolve(name string) (models.Dimension, *svcerrors.ServiceError) {
	dimension, err := models.NewDimensionFromString(name)
	if err != nil {
		return "", errSummaryNotFound(name, err)
	}
	if _, ok := r.index[dimension]; !ok {
		return "", errSummaryNotFound(name, nil)
	}
	return dimension, nil
}
