package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledWithNoHosts(t *testing.T) {
	adapter := NewDNSTelemetryAdapter()
	disabled, err := adapter.Disabled(t.Context(), nil)
	require.NoError(t, err)
	require.True(t, disabled, "no configured hosts means nothing to block")
}
