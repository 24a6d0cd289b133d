package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrGHPrice/raycast-extensions/internal/resolver"
)

var openService string

var openCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a chat in Beeper Desktop",
	Long: `Resolve a chat by name and focus it in the Beeper Desktop app.

Examples:
  beeper open mom
  beeper open "family group"
  beeper open john --service telegram`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&openService, "service", "s", "",
		"restrict to one service (whatsapp, telegram, signal, ...)")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}

	store := openCache(cfg)
	if store != nil {
		defer store.Close()
	}

	res := newResolver(client, store, cfg)
	chat, err := res.Resolve(ctx, name, openService)
	if err != nil {
		var noMatch *resolver.NoMatchError
		if errors.As(err, &noMatch) {
			fmt.Println(noMatch.Error())
			return nil
		}
		return err
	}

	if err := client.OpenChat(ctx, chat.ID); err != nil {
		return fmt.Errorf("failed to open chat: %w", err)
	}

	fmt.Printf("Opened %q\n", chat.Title)
	return nil
}
