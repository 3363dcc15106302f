package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/clientq/internal/query"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find clients whose field contains a substring",
		Long: `Find clients whose field value contains the query, ignoring case.

The field defaults to full_name (or search_field from the config file).
An empty query lists every client with a non-null value in the field.

Example:
  clientq search Jane
  clientq search --field email yahoo.com`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSearch(opts *RootOptions, q string, cmd *cobra.Command) error {
	s := opts.session

	field, err := opts.resolveField(s.cfg.SearchField)
	if err != nil {
		return err
	}

	st, err := opts.loadStore(cmd.Context())
	if err != nil {
		return err
	}

	results := query.Search(st, q, field)
	s.logger.Info("search complete", "query", q, "field", field, "matches", len(results))

	return s.formatter.Success(newSearchResult(q, field, results))
}
