package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manjeettahkur/smartcar-go/cmd/root"
)

var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Show the id of the user who authorized the access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		cfg := root.GetConfig()
		if client == nil || cfg == nil {
			return fmt.Errorf("client not initialized")
		}
		if cfg.AccessToken == "" {
			return fmt.Errorf("access token is required (set access_token in config or SMARTCAR_ACCESS_TOKEN)")
		}

		u, err := client.GetUser(cfg.AccessToken)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		fmt.Printf("User ID: %s\n", u.ID)
		root.GetLogger().Debugf("request id: %s", u.Meta.RequestID)
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(UserCmd)
}
