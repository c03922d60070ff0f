package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/crudgen/internal/artifact"
	"github.com/conduit-lang/crudgen/internal/cli/ui"
	"github.com/conduit-lang/crudgen/internal/emit"
	"github.com/conduit-lang/crudgen/internal/generator"
)

func newRoutesCommand(global *globalOptions) *cobra.Command {
	var softDelete bool

	cmd := &cobra.Command{
		Use:   "routes <Entity>",
		Short: "Preview an entity's route declarations",
		Long: `List the route declarations generated for an entity and whether each one
is already present in the route file. Nothing is written.

Examples:
  crudgen routes Product
  crudgen routes ProductCategory --soft-delete`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, global)
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			if !cmd.Flags().Changed("soft-delete") {
				softDelete = e.cfg.SoftDeleteRoutes
			}
			return e.previewRoutes(args[0], softDelete)
		},
	}

	cmd.Flags().BoolVar(&softDelete, "soft-delete", false, "include trashed/restore/forceDelete routes (default from soft_delete_routes)")

	return cmd
}

func (e *env) previewRoutes(name string, softDelete bool) error {
	entity, err := generator.NormalizeEntity(name)
	if err != nil {
		return err
	}

	asm, err := e.assembler()
	if err != nil {
		return err
	}
	declarations, err := asm.Declarations(entity, softDelete)
	if err != nil {
		return err
	}

	path := asm.RoutesPath()
	pending, err := emit.PendingRoutes(path, declarations)
	if err != nil {
		return err
	}
	missing := make(map[string]bool, len(pending))
	for _, p := range pending {
		missing[p] = true
	}

	ui.Header(e.out, fmt.Sprintf("%s → %s", artifact.Identity(artifact.Routes, entity), path), e.noColor)
	table := ui.NewTable(e.out, []string{"DECLARATION", "STATUS"}, &ui.TableOptions{NoColor: e.noColor})
	for _, d := range declarations {
		status := "present"
		if missing[d] {
			status = "missing"
		}
		table.AddRow(d, status)
	}
	table.Render()

	if len(pending) == 0 {
		fmt.Fprintln(e.out, "\nAll declarations present.")
		return nil
	}

	hint := "crudgen generate " + entity + " --only routes"
	if softDelete {
		hint += " --soft-delete"
	}
	fmt.Fprintf(e.out, "\n%d of %d declarations missing. Run: %s\n", len(pending), len(declarations), hint)
	return nil
}
