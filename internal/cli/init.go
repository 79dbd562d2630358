package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vijay4057/task-tracker/internal/app"
	"github.com/vijay4057/task-tracker/internal/domain"
)

// newInitCommand creates the init command for setting up the task store.
func newInitCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Initialize the task store",
		GroupID: groupSetup,
		Long: `Initialize the task store in the data directory.

Creates an empty store document. Running init again on an existing
store is a no-op.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitStoreUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			path := filepath.Join(c.DataDir, domain.StoreFileName)
			if out.AlreadyInitialized {
				fmt.Fprintf(cmd.OutOrStdout(), "Store already initialized at %s\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty store at %s\n", path)
			return nil
		},
	}
	return cmd
}
