package lock

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manjeettahkur/smartcar-go/cmd/root"
)

var LockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock the vehicle's doors",
	Example: `  # Lock the configured vehicle
  smartcar lock`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicle, err := root.GetVehicle()
		if err != nil {
			return err
		}

		res, err := vehicle.Lock()
		if err != nil {
			return fmt.Errorf("failed to lock: %w", err)
		}

		fmt.Println("✅ Vehicle locked")
		root.GetLogger().Debugf("lock response: %+v", res)
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(LockCmd)
}
