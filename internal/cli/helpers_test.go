package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/clientq/internal/config"
	"github.com/roach88/clientq/internal/runid"
)

// cliResult captures one invocation.
type cliResult struct {
	Stdout string
	Stderr string
	Code   int
}

// runCLI executes the root command with a fixed run id and no .env
// loading, isolated from CLIENTQ_* variables in the test environment.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	return runCLIWithEnv(t, nil, args...)
}

// runCLIWithEnv is runCLI with the given variables set.
func runCLIWithEnv(t *testing.T, env map[string]string, args ...string) cliResult {
	t.Helper()

	for _, name := range []string{
		config.EnvConfig,
		config.EnvFile,
		config.EnvFormat,
		config.EnvSearchField,
		config.EnvDuplicateField,
		config.EnvStrict,
		config.EnvLogLevel,
		config.EnvSQLiteTable,
	} {
		t.Setenv(name, "")
	}
	for name, v := range env {
		t.Setenv(name, v)
	}

	opts := &RootOptions{
		RunIDs:      runid.NewFixedGenerator("run-1"),
		DotEnvFiles: []string{},
	}
	cmd := newRootCommand(opts)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	code := Execute(cmd)
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Code: code}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}
