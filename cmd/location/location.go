package location

import (
	"fmt"

	geo "github.com/kellydunn/golang-geo"
	"github.com/spf13/cobra"

	"github.com/manjeettahkur/smartcar-go/cmd/root"
)

var LocationCmd = &cobra.Command{
	Use:   "location",
	Short: "Show the vehicle's last known position",
	Long: `Print the vehicle's GPS coordinates. When a home point is configured
(home.latitude/home.longitude), also print the great-circle distance from
home.`,
	Example: `  # Show coordinates and distance from home
  smartcar location`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicle, err := root.GetVehicle()
		if err != nil {
			return err
		}

		loc, err := vehicle.Location()
		if err != nil {
			return fmt.Errorf("failed to read location: %w", err)
		}

		fmt.Printf("Latitude:  %f\n", loc.Latitude)
		fmt.Printf("Longitude: %f\n", loc.Longitude)

		cfg := root.GetConfig()
		if cfg.HasHome() {
			home := geo.NewPoint(cfg.Home.Latitude, cfg.Home.Longitude)
			car := geo.NewPoint(loc.Latitude, loc.Longitude)
			fmt.Printf("Distance from home: %.2f km\n", home.GreatCircleDistance(car))
		}
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(LocationCmd)
}
