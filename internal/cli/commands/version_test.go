package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, NewVersionCommand("1.2.3", "abcdef0"))
	require.NoError(t, err)
	assert.Equal(t, "schemabridge 1.2.3 (abcdef0)\n", out)
}
