package monitor

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-co-op/gocron/v2"
	"github.com/spf13/cobra"

	"github.com/manjeettahkur/smartcar-go/cmd/root"
	"github.com/manjeettahkur/smartcar-go/smartcar"
)

var (
	cronSchedule string
	lowBattery   int
)

var MonitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Periodically poll the vehicle's battery and charging state",
	Long: `Monitor polls the configured vehicle on a cron schedule and logs its
battery level and charging state. A warning is logged when the battery
drops below the threshold while the vehicle is unplugged.`,
	Example: `  # Poll every 15 minutes, warn below 20%
  smartcar monitor --cron "*/15 * * * *" --low-battery 20`,
	RunE: runMonitor,
}

func init() {
	MonitorCmd.Flags().StringVar(&cronSchedule, "cron", "*/5 * * * *", "cron schedule (default: every 5 minutes)")
	MonitorCmd.Flags().IntVar(&lowBattery, "low-battery", 20, "battery percentage to warn below")

	root.RootCmd.AddCommand(MonitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	vehicle, err := root.GetVehicle()
	if err != nil {
		return err
	}

	service := &monitorService{
		vehicle:    vehicle,
		lowBattery: float64(lowBattery) / 100,
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	defer func() { _ = s.Shutdown() }()

	_, err = s.NewJob(
		gocron.CronJob(cronSchedule, false),
		gocron.NewTask(func() {
			if err := service.check(); err != nil {
				root.GetLogger().Errorf("Monitor check failed: %v", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	fmt.Printf("Monitoring vehicle on cron schedule: %s\n", cronSchedule)
	fmt.Println("Press Ctrl+C to stop")
	s.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down monitor...")
	return nil
}

type monitorService struct {
	vehicle    *smartcar.Vehicle
	lowBattery float64
}

func (m *monitorService) check() error {
	log := root.GetLogger()

	battery, err := m.vehicle.Battery()
	if err != nil {
		return err
	}
	charge, err := m.vehicle.Charge()
	if err != nil {
		return err
	}

	log.Infof("battery %.0f%%, range %.0f, state %s, plugged in: %v",
		battery.PercentRemaining*100, battery.Range, charge.State, charge.IsPluggedIn)

	if battery.PercentRemaining < m.lowBattery && !charge.IsPluggedIn {
		log.Warnf("battery is at %.0f%% and the vehicle is not plugged in", battery.PercentRemaining*100)
	}
	return nil
}
