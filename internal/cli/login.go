package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrGHPrice/raycast-extensions/internal/beeper"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize with the Beeper Desktop API",
	Long: `Authorize this tool against the local Beeper Desktop API.

Opens your browser for the approval prompt and stores the resulting
token. Requires Beeper Desktop to be running with the Desktop API
enabled (Settings -> Developer -> Desktop API).`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Probe the API before starting the browser flow
	probe := beeper.New(cfg.API.BaseURL, "", cfg.API.Timeout())
	if err := probe.EnsureRunning(cmd.Context()); err != nil {
		return err
	}

	if _, err := beeper.Authenticate(cmd.Context(), cfg.API.BaseURL, cfg.API.TokenPath); err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	fmt.Println("Authorized. Token saved to", cfg.API.TokenPath)
	return nil
}
