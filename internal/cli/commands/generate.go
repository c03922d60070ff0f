package commands

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/crudgen/internal/artifact"
	"github.com/conduit-lang/crudgen/internal/cli/ui"
	"github.com/conduit-lang/crudgen/internal/generator"
)

type generateOptions struct {
	columns     []string
	softDelete  bool
	only        []string
	dryRun      bool
	show        bool
	interactive bool
}

func newGenerateCommand(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate [Entity]",
		Aliases: []string{"g"},
		Short:   "Generate validation, serialization and routes for an entity",
		Long: `Generate the CRUD artifacts of one entity.

Artifacts:
  create         creation validation request (Store{Entity}Request)
  update         modification validation request (Update{Entity}Request)
  serialization  output resource ({Entity}Resource)
  routes         resource routes appended to the shared route file

Existing files are skipped and routes already present are not repeated.

Examples:
  crudgen generate Product --columns id,name,cover_img,price,created_at
  crudgen generate Product --columns name,price --soft-delete
  crudgen generate Product --columns name --only create,update --dry-run
  crudgen g --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, global)
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			req, err := opts.request(cmd, e, args)
			if err != nil {
				return err
			}

			gen, err := e.generator(opts.dryRun)
			if err != nil {
				return err
			}

			report, err := gen.Generate(req)
			if report == nil {
				return err
			}
			e.logReport(report)
			ui.WriteReport(e.out, report, ui.ReportOptions{
				NoColor:     e.noColor,
				ShowContent: opts.dryRun && opts.show,
			})
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.columns, "columns", nil, "comma-separated column names")
	flags.BoolVar(&opts.softDelete, "soft-delete", false, "add trashed/restore/forceDelete routes (default from soft_delete_routes)")
	flags.StringSliceVar(&opts.only, "only", nil, "generate only these artifacts: create,update,serialization,routes")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "render and report without writing")
	flags.BoolVar(&opts.show, "show", false, "with --dry-run, print the rendered artifacts")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for entity, columns and options")
	_ = cmd.RegisterFlagCompletionFunc("only", completeArtifacts)

	return cmd
}

// request builds the generation request from arguments, flags, config
// defaults and, with --interactive, prompts.
func (o *generateOptions) request(cmd *cobra.Command, e *env, args []string) (generator.Request, error) {
	columns, err := generator.ParseColumns(strings.Join(o.columns, ","))
	if err != nil {
		return generator.Request{}, err
	}
	req := generator.Request{
		Columns:          columns,
		SoftDeleteRoutes: e.cfg.SoftDeleteRoutes,
	}
	if len(args) > 0 {
		req.Entity = args[0]
	}
	if cmd.Flags().Changed("soft-delete") {
		req.SoftDeleteRoutes = o.softDelete
	}

	only, err := parseOnly(o.only)
	if err != nil {
		return req, err
	}
	req.Only = only

	if o.interactive {
		if err := prompt(&req); err != nil {
			return req, err
		}
	}

	if req.Entity == "" {
		return req, fmt.Errorf("entity name required\n\nUsage: crudgen generate <Entity> --columns a,b,c")
	}
	if len(req.Columns) == 0 {
		fmt.Fprint(e.errOut, ui.Warning("no columns given; artifacts will have no fields", nil, e.noColor))
	}
	return req, nil
}

// prompt asks for every request field left empty by arguments and flags.
func prompt(req *generator.Request) error {
	if req.Entity == "" {
		q := &survey.Input{Message: "Entity name (singular, PascalCase):"}
		if err := survey.AskOne(q, &req.Entity, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if len(req.Columns) == 0 {
		var columns string
		q := &survey.Input{
			Message: "Columns (comma-separated):",
			Help:    "Suffixes _img, _vid, _aud and _docs mark media columns, e.g. cover_img.",
		}
		if err := survey.AskOne(q, &columns); err != nil {
			return err
		}
		cols, err := generator.ParseColumns(columns)
		if err != nil {
			return err
		}
		req.Columns = cols
	}

	softDelete := &survey.Confirm{
		Message: "Add soft-delete routes (trashed, restore, forceDelete)?",
		Default: req.SoftDeleteRoutes,
	}
	if err := survey.AskOne(softDelete, &req.SoftDeleteRoutes); err != nil {
		return err
	}

	defaults := make([]string, len(req.Only))
	for i, k := range req.Only {
		defaults[i] = k.String()
	}
	var selected []string
	q := &survey.MultiSelect{
		Message: "Artifacts:",
		Options: artifactNames,
		Default: defaults,
	}
	if err := survey.AskOne(q, &selected, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	only, err := artifact.ParseKinds(selected)
	if err != nil {
		return err
	}
	req.Only = only

	if req.Entity = strings.TrimSpace(req.Entity); req.Entity == "" {
		return fmt.Errorf("entity name cannot be empty")
	}
	return nil
}
