package commands

import (
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
	noColor    bool

	// logger overrides the logger built from --verbose.
	logger *zap.Logger
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	return newRootCommand(&globalOptions{})
}

func newRootCommand(opts *globalOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "crudgen",
		Short: "CRUD scaffolding generator",
		Long: color.CyanString(`crudgen - CRUD scaffolding for API resources

Given an entity and its columns, crudgen writes the conventional CRUD surface:
  • Creation and modification validation requests
  • An output serialization resource
  • Resource routes, optionally with trashed/restore/forceDelete

Existing files are never overwritten and existing routes are never
duplicated, so re-running is always safe.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: ./crudgen.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every emitted artifact")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(newGenerateCommand(opts))
	rootCmd.AddCommand(newApplyCommand(opts))
	rootCmd.AddCommand(newWatchCommand(opts))
	rootCmd.AddCommand(newRoutesCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// newLogger builds the invocation logger: development output when verbose,
// otherwise warnings and above on stderr.
func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return logger
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the crudgen version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}
			writeVersion(cmd.OutOrStdout(), goVer)
		},
	}
}

func writeVersion(w io.Writer, goVer string) {
	titleColor := color.New(color.FgCyan, color.Bold)

	titleColor.Fprint(w, "crudgen version: ")
	io.WriteString(w, Version+"\n")

	titleColor.Fprint(w, "Git commit: ")
	io.WriteString(w, GitCommit+"\n")

	titleColor.Fprint(w, "Build date: ")
	io.WriteString(w, BuildDate+"\n")

	titleColor.Fprint(w, "Go version: ")
	io.WriteString(w, goVer+"\n")
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		io.WriteString(rootCmd.ErrOrStderr(), formatError(err, color.NoColor))
		return err
	}
	return nil
}
