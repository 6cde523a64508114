package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	args, err := ParseArgs([]string{"name=strategy", "note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "strategy", "note": "a=b"}, args)

	empty, err := ParseArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseArgs([]string{"strategy"})
	assert.Error(t, err)

	_, err = ParseArgs([]string{"=value"})
	assert.Error(t, err)
}
