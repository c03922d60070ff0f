package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/crudgen/internal/cli/ui"
)

func newConfigCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration after defaults, crudgen.yaml and CRUDGEN_*
environment overrides are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, global)
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			file := e.cfg.File
			if file == "" {
				file = "(none, defaults)"
			}
			templatesDir := e.cfg.TemplatesDir
			if templatesDir == "" {
				templatesDir = "(built-in)"
			}

			kv := ui.NewKeyValueTable(e.out, e.noColor)
			kv.AddRow("config file", file)
			kv.AddRow("base_dir", e.cfg.BaseDir)
			kv.AddRow("namespace", e.cfg.Namespace)
			kv.AddRow("paths.requests", e.cfg.Paths.Requests)
			kv.AddRow("paths.resources", e.cfg.Paths.Resources)
			kv.AddRow("paths.routes", e.cfg.Paths.Routes)
			kv.AddRow("templates_dir", templatesDir)
			kv.AddRow("soft_delete_routes", strconv.FormatBool(e.cfg.SoftDeleteRoutes))
			kv.AddRow("auth_entity", e.cfg.AuthEntity)
			kv.Render()
			return nil
		},
	}
}
