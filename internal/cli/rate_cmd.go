package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"parkwash/internal/domain/rate"
)

func newRateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Manage the price catalog",
	}

	cmd.AddCommand(
		newRateSetCmd(app),
		newRateListCmd(app),
	)

	return cmd
}

func newRateSetCmd(app *App) *cobra.Command {
	var req rate.RateRequest

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Add an active rate for a vehicle type",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := app.Rates.Create(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("set rate: %w", err)
			}
			cmd.Printf("rate id=%d %s/%s price=%d\n", rt.ID, rt.VehicleType, rt.RateType, rt.Price)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.VehicleType, "vehicle", "", "CAR, MOTORCYCLE, VAN, TRUCK or OTHER")
	cmd.Flags().StringVar(&req.RateType, "type", "", "MINUTE, HOUR, DAY, MONTH or HELMET")
	cmd.Flags().Int64Var(&req.Price, "price", 0, "price in whole currency units")
	cmd.Flags().StringVar(&req.Description, "description", "", "free text")
	_ = cmd.MarkFlagRequired("vehicle")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newRateListCmd(app *App) *cobra.Command {
	var vehicle string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Rates.List(cmd.Context(), vehicle)
			if err != nil {
				return err
			}
			for _, r := range list {
				cmd.Printf("%d\t%s\t%s\t%d\tactive=%t\n", r.ID, r.VehicleType, r.RateType, r.Price, r.IsActive)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vehicle, "vehicle", "", "filter by vehicle type")

	return cmd
}
