package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/clientq/internal/client"
	"github.com/roach88/clientq/internal/query"
)

// NewDuplicatesCommand creates the duplicates command.
func NewDuplicatesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "List clients sharing a field value",
		Long: `List every client whose field value is shared with at least one other client.

Values are compared exactly (case matters). The field defaults to email
(or duplicate_field from the config file). Clients are listed grouped by
value, groups in order of first appearance.

Example:
  clientq duplicates
  clientq duplicates --field full_name`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDuplicates(rootOpts, cmd)
		},
	}

	return cmd
}

func runDuplicates(opts *RootOptions, cmd *cobra.Command) error {
	s := opts.session

	field, err := opts.resolveField(s.cfg.DuplicateField)
	if err != nil {
		return err
	}

	st, err := opts.loadStore(cmd.Context())
	if err != nil {
		return err
	}

	groups := query.DuplicateGroups(st, field)
	var results []client.Client
	for _, g := range groups {
		results = append(results, g.Members...)
		s.logger.Debug("duplicate group", "field", field, "key", g.Key, "members", len(g.Members))
	}
	s.logger.Info("duplicate detection complete", "field", field, "groups", len(groups), "clients", len(results))

	return s.formatter.Success(newDuplicatesResult(field, len(groups), results))
}
