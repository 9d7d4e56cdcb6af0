package unlock

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manjeettahkur/smartcar-go/cmd/root"
)

var UnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock the vehicle's doors",
	Example: `  # Unlock the configured vehicle
  smartcar unlock`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicle, err := root.GetVehicle()
		if err != nil {
			return err
		}

		res, err := vehicle.Unlock()
		if err != nil {
			return fmt.Errorf("failed to unlock: %w", err)
		}

		fmt.Println("✅ Vehicle unlocked")
		root.GetLogger().Debugf("unlock response: %+v", res)
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(UnlockCmd)
}
