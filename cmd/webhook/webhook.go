package webhook

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/manjeettahkur/smartcar-go/cmd/root"
	"github.com/manjeettahkur/smartcar-go/smartcar"
)

var signature string

var WebhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Webhook signature utilities",
	Long: `Answer webhook verification challenges and verify payload signatures
using the application management token from the config.`,
}

var webhookChallengeCmd = &cobra.Command{
	Use:   "challenge <challenge-string>",
	Short: "Compute the response to a webhook verification challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amt, err := managementToken()
		if err != nil {
			return err
		}
		fmt.Println(smartcar.HashChallenge(amt, args[0]))
		return nil
	},
}

var webhookVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a webhook payload signature read from stdin",
	Example: `  # Verify a delivered payload
  cat payload.json | smartcar webhook verify --signature 4c0b5...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amt, err := managementToken()
		if err != nil {
			return err
		}

		payload, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read payload from stdin: %w", err)
		}

		if !smartcar.VerifyPayload(amt, signature, payload) {
			return fmt.Errorf("signature mismatch")
		}
		fmt.Println("✅ Signature valid")
		return nil
	},
}

func managementToken() (string, error) {
	cfg := root.GetConfig()
	if cfg == nil || cfg.ManagementToken == "" {
		return "", fmt.Errorf("management token is required (set management_token in config or SMARTCAR_MANAGEMENT_TOKEN)")
	}
	return cfg.ManagementToken, nil
}

func init() {
	webhookVerifyCmd.Flags().StringVar(&signature, "signature", "", "hex signature from the SC-Signature header")
	webhookVerifyCmd.MarkFlagRequired("signature")

	WebhookCmd.AddCommand(webhookChallengeCmd)
	WebhookCmd.AddCommand(webhookVerifyCmd)

	root.RootCmd.AddCommand(WebhookCmd)
}
