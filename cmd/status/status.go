package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/manjeettahkur/smartcar-go/cmd/root"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a telemetry summary for the configured vehicle",
	Long: `Read the odometer, battery, fuel and charging state of the configured
vehicle and print them as a table. Readings the vehicle does not support
(e.g. fuel on an EV) are shown as dashes.`,
	Example: `  # Metric summary
  smartcar status

  # Imperial summary
  smartcar status --units imperial`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicle, err := root.GetVehicle()
		if err != nil {
			return err
		}
		log := root.GetLogger()

		var rows [][]string
		addRow := func(name, value string) {
			rows = append(rows, []string{name, value})
		}

		if odo, err := vehicle.Odometer(); err != nil {
			log.Debugf("odometer read failed: %v", err)
			addRow("Odometer", "-")
		} else {
			addRow("Odometer", fmt.Sprintf("%.1f", odo.Distance))
		}

		if battery, err := vehicle.Battery(); err != nil {
			log.Debugf("battery read failed: %v", err)
			addRow("Battery", "-")
		} else {
			addRow("Battery", fmt.Sprintf("%.0f%% (range %.0f)", battery.PercentRemaining*100, battery.Range))
		}

		if charge, err := vehicle.Charge(); err != nil {
			log.Debugf("charge read failed: %v", err)
			addRow("Charge", "-")
		} else {
			plugged := "unplugged"
			if charge.IsPluggedIn {
				plugged = "plugged in"
			}
			addRow("Charge", fmt.Sprintf("%s, %s", charge.State, plugged))
		}

		if fuel, err := vehicle.Fuel(); err != nil {
			log.Debugf("fuel read failed: %v", err)
			addRow("Fuel", "-")
		} else {
			addRow("Fuel", fmt.Sprintf("%.0f%% (range %.0f)", fuel.PercentRemaining*100, fuel.Range))
		}

		if tires, err := vehicle.TirePressure(); err != nil {
			log.Debugf("tire pressure read failed: %v", err)
			addRow("Tires", "-")
		} else {
			addRow("Tires", fmt.Sprintf("FL %.0f / FR %.0f / BL %.0f / BR %.0f",
				tires.FrontLeft, tires.FrontRight, tires.BackLeft, tires.BackRight))
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
			Headers("READING", "VALUE").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == 0 {
					return lipgloss.NewStyle().Bold(true).PaddingLeft(1).PaddingRight(1)
				}
				return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			}).
			Rows(rows...)

		fmt.Println(t)
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(StatusCmd)
}
