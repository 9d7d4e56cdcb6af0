package compat

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manjeettahkur/smartcar-go/cmd/root"
	"github.com/manjeettahkur/smartcar-go/smartcar"
)

var (
	scopes    []string
	country   string
	testMode  bool
	compLevel string
)

var CompatCmd = &cobra.Command{
	Use:   "compat <vin>",
	Short: "Check whether a VIN is compatible with the requested scopes",
	Long: `Run a compatibility check for a VIN before sending the user through the
authorization flow. Requires client_id/client_secret in the config or the
SMARTCAR_CLIENT_ID/SMARTCAR_CLIENT_SECRET environment variables.`,
	Example: `  # Check odometer and location access for a VIN
  smartcar compat 4T1BF1FK5GU260429 --scope read_odometer,read_location

  # Check against the German vehicle pool
  smartcar compat WBA3A5G59DNP26082 --scope read_odometer --country DE`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("client not initialized")
		}

		var opts *smartcar.CompatibilityOptions
		if cmd.Flags().Changed("test-mode") || compLevel != "" {
			opts = &smartcar.CompatibilityOptions{TestModeCompatibilityLevel: compLevel}
			if cmd.Flags().Changed("test-mode") {
				opts.TestMode = &testMode
			}
		}

		res, err := client.GetCompatibility(args[0], scopes, country, opts)
		if err != nil {
			return fmt.Errorf("compatibility check failed: %w", err)
		}

		if res.Compatible {
			fmt.Println("✅ Compatible")
		} else {
			reason := "unknown reason"
			if res.Reason != nil {
				reason = *res.Reason
			}
			fmt.Printf("❌ Not compatible: %s\n", reason)
		}
		for _, cap := range res.Capabilities {
			marker := "❌"
			if cap.Capable {
				marker = "✅"
			}
			fmt.Printf("  %s %s (%s)\n", marker, cap.Permission, strings.TrimPrefix(cap.Endpoint, "/"))
		}
		return nil
	},
}

func init() {
	CompatCmd.Flags().StringSliceVar(&scopes, "scope", nil, "permission scopes to check (comma-separated)")
	CompatCmd.Flags().StringVar(&country, "country", "", "two-letter country code (default US)")
	CompatCmd.Flags().BoolVar(&testMode, "test-mode", false, "check against the test vehicle pool")
	CompatCmd.Flags().StringVar(&compLevel, "compatibility-level", "", "test mode compatibility level (implies test mode)")

	root.RootCmd.AddCommand(CompatCmd)
}
