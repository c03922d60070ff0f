package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/crudgen/internal/cli/ui"
	"github.com/conduit-lang/crudgen/internal/generator"
	"github.com/conduit-lang/crudgen/internal/watch"
)

func newWatchCommand(global *globalOptions) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "watch <manifest.yaml>",
		Short: "Re-apply a manifest whenever it changes",
		Long: `Apply a manifest, then apply it again every time the file is saved.

Runs are serialized. Because generation never overwrites files or repeats
routes, each run only adds what the manifest newly asks for.

Examples:
  crudgen watch crudgen.manifest.yaml
  crudgen watch crudgen.manifest.yaml --delay 500ms`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, global)
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			gen, err := e.generator(false)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return e.watchManifest(ctx, gen, args[0], delay)
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", watch.DefaultDelay, "quiet period before re-applying")

	return cmd
}

// watchManifest applies path once, then on every change until ctx is done.
func (e *env) watchManifest(ctx context.Context, gen *generator.Generator, path string, delay time.Duration) error {
	var mu sync.Mutex
	run := func() error {
		mu.Lock()
		defer mu.Unlock()

		result, err := e.applyManifest(gen, path)
		if err != nil {
			fmt.Fprint(e.errOut, formatError(err, e.noColor))
			return err
		}
		return result.err()
	}

	if err := run(); err != nil {
		e.logger.Warn("initial apply failed", zap.String("manifest", path), zap.Error(err))
	}

	fw, err := watch.NewFileWatcher([]string{path}, func([]string) error {
		fmt.Fprintln(e.out)
		return run()
	}, watch.Options{Delay: delay, Logger: e.logger})
	if err != nil {
		return err
	}
	if err := fw.Start(); err != nil {
		return err
	}
	defer fw.Stop()

	fmt.Fprint(e.out, ui.Info(fmt.Sprintf("Watching %s (Ctrl+C to stop)", path), e.noColor))
	<-ctx.Done()
	return nil
}
