package root

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manjeettahkur/smartcar-go/smartcar"
)

var (
	cfgFile  string
	logLevel string
	units    string
	cfg      *Config
	client   *smartcar.Client
	log      = logrus.StandardLogger()
)

var RootCmd = &cobra.Command{
	Use:   "smartcar",
	Short: "Smartcar CLI - Query and control your connected vehicle",
	Long: `Smartcar CLI is a command line tool built on the Smartcar API.
You can read vehicle telemetry (odometer, battery, location), send commands
(lock, unlock, charge) and run compatibility checks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setLogLevel(); err != nil {
			return err
		}

		// Commands that don't talk to the API skip config loading.
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		if err := initConfig(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		initClient()
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/smartcar/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().StringVar(&units, "units", "", "unit system for readings (metric, imperial)")

	viper.BindPFlag("config", RootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", RootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("units", RootCmd.PersistentFlags().Lookup("units"))

	viper.SetEnvPrefix("SMARTCAR")
	viper.AutomaticEnv()
}

func initConfig() error {
	configPath := ""

	if cfgFile != "" {
		configPath = cfgFile
		viper.SetConfigFile(cfgFile)
	} else {
		configPath = filepath.Join(xdg.ConfigHome, "smartcar", "config.yaml")

		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "smartcar"))
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		log.Debug("No config file found, using defaults and environment variables")
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
		configPath = viper.ConfigFileUsed()
	}

	var err error
	cfg, err = LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Overlay viper values (flags and SMARTCAR_* environment variables).
	if viper.IsSet("access_token") {
		cfg.AccessToken = viper.GetString("access_token")
	}
	if viper.IsSet("vehicle_id") {
		cfg.VehicleID = viper.GetString("vehicle_id")
	}
	if viper.IsSet("client_id") {
		cfg.ClientID = viper.GetString("client_id")
	}
	if viper.IsSet("client_secret") {
		cfg.ClientSecret = viper.GetString("client_secret")
	}
	if viper.IsSet("management_token") {
		cfg.ManagementToken = viper.GetString("management_token")
	}
	if viper.IsSet("api_version") {
		cfg.APIVersion = viper.GetString("api_version")
	}
	if units != "" {
		cfg.Units = units
	} else if viper.GetString("units") != "" {
		cfg.Units = viper.GetString("units")
	}
	if viper.IsSet("home.latitude") {
		cfg.Home.Latitude = viper.GetFloat64("home.latitude")
	}
	if viper.IsSet("home.longitude") {
		cfg.Home.Longitude = viper.GetFloat64("home.longitude")
	}

	return cfg.Validate()
}

func initClient() {
	client = smartcar.New(&smartcar.Config{
		APIVersion:   cfg.APIVersion,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
	})
}

func setLogLevel() error {
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", logLevel)
	}
	log.SetLevel(lvl)
	return nil
}

func Execute() error {
	return RootCmd.Execute()
}

func GetClient() *smartcar.Client {
	return client
}

func GetConfig() *Config {
	return cfg
}

func GetLogger() *logrus.Logger {
	return log
}

// GetVehicle builds a handle for the configured vehicle, honoring the
// selected unit system.
func GetVehicle() (*smartcar.Vehicle, error) {
	if client == nil || cfg == nil {
		return nil, fmt.Errorf("client not initialized")
	}
	if cfg.VehicleID == "" {
		return nil, fmt.Errorf("vehicle id is required (set vehicle_id in config or SMARTCAR_VEHICLE_ID)")
	}
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("access token is required (set access_token in config or SMARTCAR_ACCESS_TOKEN)")
	}
	opts := &smartcar.VehicleOptions{}
	if cfg.Units == "imperial" {
		opts.UnitSystem = smartcar.Imperial
	}
	return client.Vehicle(cfg.VehicleID, cfg.AccessToken, opts), nil
}
