package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/crudgen/internal/cli/ui"
	"github.com/conduit-lang/crudgen/internal/generator"
	"github.com/conduit-lang/crudgen/internal/manifest"
)

func newApplyCommand(global *globalOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply <manifest.yaml>",
		Short: "Generate every entity listed in a manifest",
		Long: `Generate the artifacts of every entity in a YAML manifest, in order.

An invalid entity is reported and skipped; the remaining entities are still
generated.

Manifest format:
  entities:
    - name: Product
      columns: [id, name, cover_img, price, created_at]
      soft_delete_routes: true
    - name: Category
      columns: [name, banner_img]
      only: [create, update]

Examples:
  crudgen apply crudgen.manifest.yaml
  crudgen apply crudgen.manifest.yaml --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, global)
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			gen, err := e.generator(dryRun)
			if err != nil {
				return err
			}

			result, err := e.applyManifest(gen, args[0])
			if err != nil {
				return err
			}
			return result.err()
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render and report without writing")

	return cmd
}

// applyResult counts the entities of one manifest run.
type applyResult struct {
	total  int
	failed int
}

func (r applyResult) err() error {
	if r.failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d entities failed", r.failed, r.total)
}

// applyManifest generates every manifest entity with gen. Entity failures are
// printed and counted; only an unreadable manifest returns an error.
func (e *env) applyManifest(gen *generator.Generator, path string) (applyResult, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return applyResult{}, &manifestError{err: err}
	}

	result := applyResult{total: len(m.Entities)}
	for i, entity := range m.Entities {
		if i > 0 {
			fmt.Fprintln(e.out)
		}
		if err := e.applyEntity(gen, entity); err != nil {
			result.failed++
			e.logger.Info("entity failed", zap.String("manifest", path), zap.String("entity", entity.Name), zap.Error(err))
		}
	}
	return result, nil
}

func (e *env) applyEntity(gen *generator.Generator, entity manifest.Entity) error {
	req, err := entity.Request(e.cfg.SoftDeleteRoutes)
	if err != nil {
		fmt.Fprint(e.errOut, formatError(err, e.noColor))
		return err
	}

	report, err := gen.Generate(req)
	if report == nil {
		fmt.Fprint(e.errOut, formatError(err, e.noColor))
		return err
	}
	e.logReport(report)
	ui.WriteReport(e.out, report, ui.ReportOptions{NoColor: e.noColor})
	return err
}
