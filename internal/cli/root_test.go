package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/clientq/internal/testutil"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "clientq", cmd.Use)
	assert.Contains(t, cmd.Long, "duplicate")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"search", "duplicates", "fields"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	fileFlag := cmd.PersistentFlags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)
	assert.Equal(t, "clients.json", fileFlag.DefValue)

	fieldFlag := cmd.PersistentFlags().Lookup("field")
	require.NotNil(t, fieldFlag)
	assert.Equal(t, "", fieldFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("strict"))
}

func TestRootFlags(t *testing.T) {
	cmd := NewRootCommand()

	searchFlag := cmd.Flags().Lookup("search")
	require.NotNil(t, searchFlag)
	assert.Equal(t, "s", searchFlag.Shorthand)

	dupFlag := cmd.Flags().Lookup("duplicates")
	require.NotNil(t, dupFlag)
	assert.Equal(t, "d", dupFlag.Shorthand)
	assert.Equal(t, "false", dupFlag.DefValue)
}

func TestRoot_NoOperationPrintsGuidance(t *testing.T) {
	path := testutil.WriteFile(t, "clients.json", testutil.SampleJSON)

	res := runCLI(t, "-f", path)

	assert.Equal(t, ExitSuccess, res.Code)
	assert.Equal(t, GuidanceMessage+"\n", res.Stdout)
}

func TestRoot_NoOperationDoesNotLoad(t *testing.T) {
	res := runCLI(t, "-f", testutil.MissingPath(t, "missing.json"))

	assert.Equal(t, ExitSuccess, res.Code)
	assert.Equal(t, GuidanceMessage+"\n", res.Stdout)
}

func TestRoot_SearchFlag(t *testing.T) {
	path := testutil.WriteFile(t, "clients.json", testutil.SampleJSON)

	res := runCLI(t, "-f", path, "-s", "jane")

	assert.Equal(t, ExitSuccess, res.Code)
	assert.Equal(t, "Found clients:\n"+
		`{id: 2, full_name: "Jane Smith", email: "jane.smith@example.com"}`+"\n"+
		`{id: 3, full_name: "Another Jane Smith", email: "jane.smith@example.com"}`+"\n",
		res.Stdout)
}

func TestRoot_EmptySearchMatchesAll(t *testing.T) {
	path := testutil.WriteFile(t, "clients.json", testutil.SampleJSON)

	res := runCLI(t, "-f", path, "-s", "")

	assert.Equal(t, ExitSuccess, res.Code)
	assert.Contains(t, res.Stdout, "Found clients:")
	assert.Contains(t, res.Stdout, `"John Doe"`)
	assert.Contains(t, res.Stdout, `"Jane Smith"`)
	assert.Contains(t, res.Stdout, `"Another Jane Smith"`)
}

func TestRoot_SearchWinsOverDuplicates(t *testing.T) {
	path := testutil.WriteFile(t, "clients.json", testutil.SampleJSON)

	res := runCLI(t, "-f", path, "-s", "john", "-d")

	assert.Equal(t, ExitSuccess, res.Code)
	assert.Equal(t, "Found clients:\n"+
		`{id: 1, full_name: "John Doe", email: "john.doe@example.com"}`+"\n",
		res.Stdout)
}

func TestRoot_DuplicatesFlag(t *testing.T) {
	path := testutil.WriteFile(t, "clients.json", testutil.SampleJSON)

	res := runCLI(t, "-f", path, "-d")

	assert.Equal(t, ExitSuccess, res.Code)
	assert.Equal(t, "Duplicate emails found:\n"+
		`{id: 2, full_name: "Jane Smith", email: "jane.smith@example.com"}`+"\n"+
		`{id: 3, full_name: "Another Jane Smith", email: "jane.smith@example.com"}`+"\n",
		res.Stdout)
}

func TestRoot_FieldFlag(t *testing.T) {
	path := testutil.WriteFile(t, "clients.json", testutil.SampleJSON)

	res := runCLI(t, "-f", path, "--field", "email", "-s", "JOHN.DOE")

	assert.Equal(t, ExitSuccess, res.Code)
	assert.Contains(t, res.Stdout, `"john.doe@example.com"`)
	assert.NotContains(t, res.Stdout, "Jane")
}

func TestRoot_UnknownFlag(t *testing.T) {
	res := runCLI(t, "--bogus")

	assert.Equal(t, ExitCommandError, res.Code)
	assert.Contains(t, res.Stderr, "unknown flag")
	assert.Empty(t, res.Stdout)
}
