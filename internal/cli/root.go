package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/clientq/internal/runid"
)

// RootOptions holds global flags for all commands, plus state resolved
// once per invocation in the persistent pre-run.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	File       string
	Field      string
	ConfigPath string
	Strict     bool

	// Root-only flags mirroring the search and duplicates subcommands.
	Search     string
	Duplicates bool

	// RunIDs allows overriding the run id generator (for testing).
	// If nil, defaults to runid.UUIDv7Generator.
	RunIDs runid.Generator

	// DotEnvFiles lists .env files loaded before config resolution.
	// If nil, defaults to ".env" in the working directory.
	DotEnvFiles []string

	session *session
}

// NewRootCommand creates the root command for the clientq CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clientq",
		Short: "clientq - query client records",
		Long: `Load client records from a data file and query them.

Search matches a substring of one field, ignoring case. Duplicate detection
lists clients sharing the exact value of one field with another client.

Client data may be JSON, YAML, CUE or a SQLite database, optionally
gzip- or zstd-compressed.

Example:
  clientq -f clients.json -s Jane
  clientq -f clients.json --field email -s yahoo
  clientq -f clients.json -d
  clientq search --field email gmail.com
  clientq duplicates --field full_name --format json`,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Errors are reported through OutputFormatter or Execute
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(opts, cmd)
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.File, "file", "f", "clients.json", "client data file (.json, .yaml, .cue, .db; optionally .gz or .zst)")
	flags.StringVar(&opts.Field, "field", "", "field to query (default: full_name for search, email for duplicates)")
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default: $CLIENTQ_CONFIG or ./.clientq.yaml)")
	flags.BoolVar(&opts.Strict, "strict", false, "reject unknown fields and records missing keys")

	// Root flags
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "search query")
	cmd.Flags().BoolVarP(&opts.Duplicates, "duplicates", "d", false, "find duplicate clients")

	// Add subcommands
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewDuplicatesCommand(opts))
	cmd.AddCommand(NewFieldsCommand(opts))

	return cmd
}

// runRoot dispatches on the root flags. Search wins over duplicates when
// both are given; neither prints guidance and succeeds.
func runRoot(opts *RootOptions, cmd *cobra.Command) error {
	switch {
	case cmd.Flags().Changed("search"):
		return runSearch(opts, opts.Search, cmd)
	case opts.Duplicates:
		return runDuplicates(opts, cmd)
	default:
		return opts.session.formatter.Success(Notice{Message: GuidanceMessage})
	}
}
