package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs cmd and returns the process exit code.
//
// Errors already reported through an OutputFormatter are not printed again.
// Anything else (cobra argument and flag errors) is printed to stderr.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || !exitErr.reported {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Run 'clientq --help' for usage.")
	}
	return GetExitCode(err)
}
