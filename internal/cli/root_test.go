package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemabridge-labs/schemabridge/internal/config"
	"github.com/schemabridge-labs/schemabridge/internal/match"
)

func TestRootMatchListsJSONOutput(t *testing.T) {
	t.Cleanup(config.Reset)

	rootCmd := NewRootCmd()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{
		"match", "--list",
		"CitizenID, Full Name, DOB", "citizen_id,dob,address",
		"--output", "json",
	})

	require.NoError(t, rootCmd.Execute())

	var result match.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, match.Result{
		Matches:    []string{"citizenid", "dob"},
		UnmatchedA: []string{"fullname"},
		UnmatchedB: []string{"address"},
	}, result)
}

func TestRootVersionFlag(t *testing.T) {
	rootCmd := NewRootCmd()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--version"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "schemabridge")
	assert.Contains(t, buf.String(), Version)
}

func TestRootUnknownCommand(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"frobnicate"})

	assert.Error(t, rootCmd.Execute())
}
