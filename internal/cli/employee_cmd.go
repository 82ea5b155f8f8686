package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"parkwash/internal/domain/employee"
)

func newEmployeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage console accounts",
	}

	cmd.AddCommand(
		newEmployeeCreateCmd(app),
		newEmployeeListCmd(app),
	)

	return cmd
}

func newEmployeeCreateCmd(app *App) *cobra.Command {
	var req employee.CreateEmployeeRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee account",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Employees.Create(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("create employee: %w", err)
			}
			cmd.Printf("created employee id=%d username=%s role=%s\n", e.ID, e.Username, e.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&req.Username, "username", "", "login name")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&req.Role, "role", string(employee.RoleOperationalAdmin), "global_admin, operational_admin or washer")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newEmployeeListCmd(app *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Employees.List(cmd.Context(), role)
			if err != nil {
				return err
			}
			for _, e := range list {
				cmd.Printf("%d\t%s\t%s\t%s\tactive=%t\n", e.ID, e.Username, e.Role, e.FullName, e.IsActive)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "filter by role")

	return cmd
}
