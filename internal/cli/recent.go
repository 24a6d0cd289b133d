package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrGHPrice/raycast-extensions/internal/output"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently used chats",
	Long:  `List chats recently opened or messaged through this tool, most recent first.`,
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 20, "maximum chats to show")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openCache(cfg)
	if store == nil {
		return fmt.Errorf("failed to open cache at %s", cfg.Cache.Path)
	}
	defer store.Close()

	chats, err := store.RecentChats(ctx, recentLimit)
	if err != nil {
		return fmt.Errorf("failed to read recent chats: %w", err)
	}

	if len(chats) == 0 {
		fmt.Println("No chats used yet. Try 'beeper open <name>' or 'beeper send <name> <message>'.")
		return nil
	}

	return output.Output(outputFmt, chats)
}
