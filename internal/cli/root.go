// Package cli implements parkctl, the back-office command line used to
// migrate the schema and bootstrap employees and rates.
package cli

import (
	"github.com/spf13/cobra"

	"parkwash/internal/domain/employee"
	"parkwash/internal/domain/rate"
)

// App holds what the commands act on.
type App struct {
	Migrate   func() error
	Employees *employee.Service
	Rates     *rate.Service
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "parkctl",
		Short:         "Parking and washing back-office tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(app),
		newEmployeeCmd(app),
		newRateCmd(app),
	)

	return root
}

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Migrate(); err != nil {
				return err
			}
			cmd.Println("schema up to date")
			return nil
		},
	}
}
