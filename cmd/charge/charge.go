package charge

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manjeettahkur/smartcar-go/cmd/root"
)

var chargeLimit float64

var ChargeCmd = &cobra.Command{
	Use:   "charge",
	Short: "Control and inspect charging",
	Long:  `Start or stop a charging session, or get/set the charge limit.`,
}

var chargeStatusCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current charging state",
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicle, err := root.GetVehicle()
		if err != nil {
			return err
		}

		state, err := vehicle.Charge()
		if err != nil {
			return fmt.Errorf("failed to read charge state: %w", err)
		}
		limit, err := vehicle.ChargeLimit()
		if err != nil {
			return fmt.Errorf("failed to read charge limit: %w", err)
		}

		fmt.Printf("State:      %s\n", state.State)
		fmt.Printf("Plugged in: %v\n", state.IsPluggedIn)
		fmt.Printf("Limit:      %.0f%%\n", limit.Limit*100)
		return nil
	},
}

var chargeStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a charging session",
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicle, err := root.GetVehicle()
		if err != nil {
			return err
		}

		res, err := vehicle.StartCharge()
		if err != nil {
			return fmt.Errorf("failed to start charging: %w", err)
		}

		fmt.Println("✅ Charging started")
		root.GetLogger().Debugf("start charge response: %+v", res)
		return nil
	},
}

var chargeStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current charging session",
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicle, err := root.GetVehicle()
		if err != nil {
			return err
		}

		res, err := vehicle.StopCharge()
		if err != nil {
			return fmt.Errorf("failed to stop charging: %w", err)
		}

		fmt.Println("✅ Charging stopped")
		root.GetLogger().Debugf("stop charge response: %+v", res)
		return nil
	},
}

var chargeLimitCmd = &cobra.Command{
	Use:   "limit",
	Short: "Set the charge limit",
	Example: `  # Charge up to 80%
  smartcar charge limit --percent 80`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicle, err := root.GetVehicle()
		if err != nil {
			return err
		}
		if chargeLimit <= 0 || chargeLimit > 100 {
			return fmt.Errorf("charge limit must be between 1 and 100, got %v", chargeLimit)
		}

		res, err := vehicle.SetChargeLimit(chargeLimit / 100)
		if err != nil {
			return fmt.Errorf("failed to set charge limit: %w", err)
		}

		fmt.Printf("✅ Charge limit set to %.0f%%\n", chargeLimit)
		root.GetLogger().Debugf("set charge limit response: %+v", res)
		return nil
	},
}

func init() {
	chargeLimitCmd.Flags().Float64Var(&chargeLimit, "percent", 0, "charge limit percentage (1-100)")
	chargeLimitCmd.MarkFlagRequired("percent")

	ChargeCmd.AddCommand(chargeStatusCmd)
	ChargeCmd.AddCommand(chargeStartCmd)
	ChargeCmd.AddCommand(chargeStopCmd)
	ChargeCmd.AddCommand(chargeLimitCmd)

	root.RootCmd.AddCommand(ChargeCmd)
}
