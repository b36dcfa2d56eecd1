package summaries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usage-analytics/internal/models"
)

func TestNewDimensionRegistry(t *testing.T) {
	t.Parallel()

	registry, svcErr := NewDimensionRegistry([]string{"url", "sumLanguage", "URL", "server"})
	require.Nil(t, svcErr)

	assert.Equal(t, []models.Dimension{
		models.DimensionUrl,
		models.DimensionLanguage,
		models.DimensionServer,
	}, registry.Enabled(), "duplicates collapse, order is preserved")
}

func TestNewDimensionRegistry_UnknownName(t *testing.T) {
	t.Parallel()

	_, svcErr := NewDimensionRegistry([]string{"url", "visitor"})
	require.NotNil(t, svcErr)
	assert.Equal(t, "SUM_1002", svcErr.Code)
	assert.Equal(t, 400, svcErr.HttpStatusCode)
}

func TestDimensionRegistry_Resolve(t *testing.T) {
	t.Parallel()

	registry, svcErr := NewDimensionRegistry([]string{"url", "remote"})
	require.Nil(t, svcErr)

	tests := []struct {
		name     string
		expected models.Dimension
	}{
		{"url", models.DimensionUrl},
		{"sumUrl", models.DimensionUrl},
		{"remote", models.DimensionRemote},
		{"sumRemote", models.DimensionRemote},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, svcErr := registry.Resolve(tt.name)
			require.Nil(t, svcErr)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDimensionRegistry_Resolve_NotFound(t *testing.T) {
	t.Parallel()

	registry, svcErr := NewDimensionRegistry([]string{"url"})
	require.Nil(t, svcErr)

	// A disabled dimension and an unknown name are indistinguishable.
	for _, name := range []string{"language", "sumLanguage", "visitor", ""} {
		_, svcErr := registry.Resolve(name)
		require.NotNil(t, svcErr, "name %q", name)
		assert.Equal(t, "SUM_1000", svcErr.Code)
		assert.Equal(t, 404, svcErr.HttpStatusCode)
	}
}
