package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMatchCommandLists(t *testing.T) {
	out, err := executeCommand(t, NewMatchCommand(),
		"--list", "CitizenID, Full Name, DOB", "citizen_id,dob,address")
	require.NoError(t, err)

	assert.Contains(t, out, "citizenid")
	assert.Contains(t, out, "dob")
	assert.Contains(t, out, "fullname")
	assert.Contains(t, out, "only in A")
	assert.Contains(t, out, "address")
	assert.Contains(t, out, "only in B")
	assert.Contains(t, out, "(2 matched, 1 only in A, 1 only in B)")
}

func TestMatchCommandFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "CitizenID,Full Name,DOB\n1,Ada,1815-12-10\n")
	b := writeFile(t, dir, "b.json", `[{"citizen_id":1,"dob":"x","address":"y"}]`)

	out, err := executeCommand(t, NewMatchCommand(), a, b)
	require.NoError(t, err)

	assert.Contains(t, out, "citizenid")
	assert.Contains(t, out, "(2 matched, 1 only in A, 1 only in B)")
}

func TestMatchCommandFormatOverride(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "export-a", "id,name\n")
	b := writeFile(t, dir, "export-b", `<row><id>1</id><email>x</email></row>`)

	out, err := executeCommand(t, NewMatchCommand(), a, b, "--format-a", "csv", "--format-b", "xml")
	require.NoError(t, err)

	assert.Contains(t, out, "(1 matched, 1 only in A, 1 only in B)")
}

func TestMatchCommandUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "id,name\n")
	b := writeFile(t, dir, "b.csv", "id\n")

	_, err := executeCommand(t, NewMatchCommand(), a, b)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestMatchCommandMissingFile(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.csv", "id\n")

	_, err := executeCommand(t, NewMatchCommand(), filepath.Join(dir, "nope.csv"), b)
	assert.Error(t, err)
}

func TestMatchCommandMalformedContentDegrades(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"id":`)
	b := writeFile(t, dir, "b.csv", "id,name\n")

	out, err := executeCommand(t, NewMatchCommand(), a, b)
	require.NoError(t, err)

	assert.Contains(t, out, "(0 matched, 0 only in A, 2 only in B)")
}

func TestMatchCommandRejectsWrongArgCount(t *testing.T) {
	_, err := executeCommand(t, NewMatchCommand(), "only-one.csv")
	assert.Error(t, err)
}
