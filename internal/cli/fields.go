package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/clientq/internal/client"
)

// NewFieldsCommand creates the fields command.
func NewFieldsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fields",
		Short:         "List the fields accepted by --field",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := client.Fields()
			names := make([]string, len(fields))
			for i, f := range fields {
				names[i] = string(f)
			}
			return rootOpts.session.formatter.Success(FieldsResult{Fields: names})
		},
	}

	return cmd
}
