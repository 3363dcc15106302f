package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/clientq/internal/client"
	"github.com/roach88/clientq/internal/config"
	"github.com/roach88/clientq/internal/runid"
	"github.com/roach88/clientq/internal/store"
)

// session is the per-invocation state built by RootOptions.prepare.
type session struct {
	cfg       config.Config
	runID     string
	logger    *slog.Logger
	formatter *OutputFormatter
}

// prepare resolves config, run id, logging and output format.
//
// Precedence, lowest first: defaults, config file, environment, flags.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	gen := o.RunIDs
	if gen == nil {
		gen = runid.UUIDv7Generator{}
	}
	id := gen.Generate()

	// Until config is resolved, report errors in the requested format if valid
	early := &OutputFormatter{Format: "text", Writer: cmd.OutOrStdout(), Verbose: o.Verbose, RunID: id}
	if config.IsValidFormat(o.Format) {
		early.Format = o.Format
	}

	dotEnv := o.DotEnvFiles
	if dotEnv == nil {
		dotEnv = []string{".env"}
	}
	if err := config.LoadDotEnv(dotEnv...); err != nil {
		return early.Fail(ExitCommandError, ErrCodeConfig, "Could not load .env file.", err)
	}

	cfg, cfgPath, err := config.Load(o.ConfigPath)
	if err != nil {
		return early.Fail(ExitCommandError, ErrCodeConfig, "Could not load configuration.", err)
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = o.File
	}
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("strict") {
		cfg.Strict = o.Strict
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return early.Fail(ExitCommandError, ErrCodeConfig, fmt.Sprintf("Invalid configuration: %v.", err), nil)
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel) // checked by Validate
	logger := newLogger(cmd.ErrOrStderr(), level).With("run_id", id)
	logger.Debug("configuration resolved",
		"config_file", cfgPath,
		"file", cfg.File,
		"format", cfg.Format,
		"strict", cfg.Strict,
	)

	o.session = &session{
		cfg:    cfg,
		runID:  id,
		logger: logger,
		formatter: &OutputFormatter{
			Format:  cfg.Format,
			Writer:  cmd.OutOrStdout(),
			Verbose: o.Verbose,
			RunID:   id,
		},
	}
	return nil
}

// resolveField picks the field to query: --field if given, else def.
//
// In strict mode an unknown name is reported and returned as an error.
// Otherwise it is logged and passed through: the query engine treats it as
// null on every record.
func (o *RootOptions) resolveField(def string) (string, error) {
	s := o.session
	field := o.Field
	if field == "" {
		field = def
	}

	if _, err := client.ParseField(field); err != nil {
		if s.cfg.Strict {
			msg := fmt.Sprintf("Unrecognized field '%s'. Known fields: %s.", field, client.FieldList())
			return "", s.formatter.Fail(ExitCommandError, ErrCodeUnknownField, msg, err)
		}
		s.logger.Warn("unrecognized field, every client reads it as null",
			"field", field,
			"known_fields", client.FieldList(),
		)
	}
	return field, nil
}

// loadStore loads the configured client data file.
func (o *RootOptions) loadStore(ctx context.Context) (*store.Store, error) {
	s := o.session
	if ctx == nil {
		ctx = context.Background()
	}

	format, compression := store.DetectFormat(s.cfg.File)
	s.logger.Debug("loading clients",
		"file", s.cfg.File,
		"format", string(format),
		"compression", string(compression),
	)

	st, err := store.Load(ctx, s.cfg.File, store.Options{
		RequireKeys: s.cfg.Strict,
		Table:       s.cfg.SQLiteTable,
	})
	if err != nil {
		var loadErr *store.LoadError
		if errors.As(err, &loadErr) {
			s.logger.Error("failed to load clients", "file", s.cfg.File, "code", loadErr.Code, "error", err)
			return nil, s.formatter.Fail(ExitFailure, loadErr.Code, loadErr.Message, loadErr.Err)
		}
		return nil, s.formatter.Fail(ExitFailure, ErrCodeGeneric, "Could not load clients.", err)
	}

	s.logger.Info("clients loaded", "file", st.Source(), "count", st.Len())
	return st, nil
}
