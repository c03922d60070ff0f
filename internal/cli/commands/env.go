package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/crudgen/internal/artifact"
	"github.com/conduit-lang/crudgen/internal/cli/config"
	"github.com/conduit-lang/crudgen/internal/cli/ui"
	"github.com/conduit-lang/crudgen/internal/emit"
	"github.com/conduit-lang/crudgen/internal/generator"
	"github.com/conduit-lang/crudgen/internal/templates"
)

// env is the per-invocation state shared by commands.
type env struct {
	cfg     *config.Config
	logger  *zap.Logger
	out     io.Writer
	errOut  io.Writer
	noColor bool
}

func loadEnv(cmd *cobra.Command, opts *globalOptions) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, &configError{err: err}
	}

	logger := opts.logger
	if logger == nil {
		logger = newLogger(opts.verbose)
	}
	if cfg.File != "" {
		logger.Debug("loaded config", zap.String("file", cfg.File))
	}

	return &env{
		cfg:     cfg,
		logger:  logger,
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
		noColor: opts.noColor || color.NoColor,
	}, nil
}

// assembler builds the artifact assembler, applying template overrides from
// templates_dir.
func (e *env) assembler() (*artifact.Assembler, error) {
	engine, err := templates.NewEngine()
	if err != nil {
		return nil, err
	}

	if dir := e.cfg.TemplatesDir; dir != "" {
		replaced, err := engine.OverrideDir(dir)
		if err != nil {
			return nil, &configError{err: err}
		}
		if len(replaced) == 0 {
			fmt.Fprint(e.errOut, ui.Warning(fmt.Sprintf("templates_dir %s holds no templates; using built-ins", dir), nil, e.noColor))
		}
		for _, name := range replaced {
			e.logger.Debug("template overridden", zap.String("template", string(name)), zap.String("dir", dir))
		}
	}

	return artifact.NewAssembler(engine, e.cfg.Layout(), e.cfg.Policy()), nil
}

func (e *env) generator(dryRun bool) (*generator.Generator, error) {
	asm, err := e.assembler()
	if err != nil {
		return nil, err
	}
	return generator.New(asm, generator.Options{DryRun: dryRun}), nil
}

// logReport records every item of a report.
func (e *env) logReport(r *generator.Report) {
	for _, item := range r.Items {
		fields := []zap.Field{
			zap.String("entity", r.Entity),
			zap.String("artifact", item.Kind.String()),
			zap.String("path", item.Path),
			zap.String("status", item.Outcome.Status.String()),
			zap.Int("appended", item.Outcome.Appended),
			zap.Bool("dry_run", r.DryRun),
		}
		if item.Err != nil {
			fields = append(fields, zap.Error(item.Err))
		}
		e.logger.Info("artifact", fields...)
	}
}

// configError marks configuration failures for formatting.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// manifestError marks manifest failures for formatting.
type manifestError struct {
	err error
}

func (e *manifestError) Error() string { return e.err.Error() }
func (e *manifestError) Unwrap() error { return e.err }

// unknownArtifactError reports an unrecognized --only value.
type unknownArtifactError struct {
	name        string
	suggestions []string
}

func (e *unknownArtifactError) Error() string {
	return fmt.Sprintf("unknown artifact %q", e.name)
}

var artifactNames = []string{"create", "update", "serialization", "routes"}

// parseOnly parses --only values, accepting comma-separated lists.
func parseOnly(values []string) ([]artifact.Kind, error) {
	var names []string
	for _, v := range values {
		for _, n := range strings.Split(v, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}
	for _, n := range names {
		if _, err := artifact.ParseKind(n); err != nil {
			return nil, &unknownArtifactError{name: n, suggestions: ui.FindSimilar(n, artifactNames, nil)}
		}
	}
	return artifact.ParseKinds(names)
}

// formatError renders err with the ui helper matching its kind.
func formatError(err error, noColor bool) string {
	var (
		cfgErr      *configError
		manifestErr *manifestError
		unknownErr  *unknownArtifactError
	)
	switch {
	case errors.As(err, &cfgErr):
		return ui.ConfigError(cfgErr.Error(), noColor)
	case errors.As(err, &manifestErr):
		return ui.ManifestError(manifestErr.Error(), noColor)
	case errors.As(err, &unknownErr):
		return ui.UnknownArtifactError(unknownErr.name, unknownErr.suggestions, noColor)
	case generator.IsInputError(err):
		return ui.InputError(trimPrefix(err), noColor)
	case emit.IsFilesystemError(err):
		return ui.FilesystemError(trimPrefix(err), noColor)
	default:
		red := color.New(color.FgRed, color.Bold)
		if noColor {
			red.DisableColor()
		}
		return red.Sprintf("Error: %v\n", err)
	}
}

func trimPrefix(err error) string {
	return strings.ReplaceAll(err.Error(), "crudgen: ", "")
}
