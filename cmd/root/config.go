package root

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HomeConfig is an optional reference point used by the location command to
// report the vehicle's distance from home.
type HomeConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Config is the CLI configuration, read from the YAML config file and
// overlaid with SMARTCAR_* environment variables and flags.
type Config struct {
	AccessToken     string `yaml:"access_token"`
	VehicleID       string `yaml:"vehicle_id"`
	ClientID        string `yaml:"client_id"`
	ClientSecret    string `yaml:"client_secret"`
	ManagementToken string `yaml:"management_token"`
	APIVersion      string `yaml:"api_version"`
	Units           string `yaml:"units"`

	Home HomeConfig `yaml:"home"`
}

// LoadConfig reads the YAML config file. A missing file yields an empty
// config: everything can come from the environment.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values that would only fail later with a confusing API
// error.
func (c *Config) Validate() error {
	switch c.Units {
	case "", "metric", "imperial":
	default:
		return fmt.Errorf("invalid units %q: must be metric or imperial", c.Units)
	}
	return nil
}

// HasHome reports whether a home reference point is configured.
func (c *Config) HasHome() bool {
	return c.Home.Latitude != 0 || c.Home.Longitude != 0
}
