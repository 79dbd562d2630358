package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vijay4057/task-tracker/internal/app"
	"github.com/vijay4057/task-tracker/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export all tasks as YAML",
		GroupID: groupTask,
		Long: `Export the whole task collection as a YAML document, suitable for
backup or for re-importing with 'task-tracker import'.

By default the document is written to stdout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ExportTasksUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(out.YAML)
				return err
			}

			if err := os.WriteFile(output, out.YAML, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", out.Count, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   "Import tasks from a YAML document",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		Long: `Import tasks from a YAML document produced by 'task-tracker export'
or written by hand. IDs, timestamps, and time totals are assigned
fresh; the whole document is validated before anything is created.

Examples:
  task-tracker import backlog.yaml
  task-tracker import backlog.yaml --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: content,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintf(w, "Would import %d tasks:\n", len(out.Tasks))
				for _, t := range out.Tasks {
					fmt.Fprintf(w, "  - %s\n", t.Title)
				}
				return nil
			}
			fmt.Fprintf(w, "Imported %d tasks\n", len(out.Tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without creating tasks")

	return cmd
}
