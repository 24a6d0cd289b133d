package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrGHPrice/raycast-extensions/internal/output"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List connected messaging accounts",
	RunE:  runAccounts,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}

func runAccounts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}

	accounts, err := client.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	if len(accounts) == 0 {
		fmt.Println("No accounts connected.")
		return nil
	}

	return output.Output(outputFmt, accounts)
}
