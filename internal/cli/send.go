package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrGHPrice/raycast-extensions/internal/resolver"
)

var (
	sendService string
	sendYes     bool
)

var sendCmd = &cobra.Command{
	Use:   "send <name> <message>...",
	Short: "Send a message to a chat",
	Long: `Resolve a chat by name and send a text message to it.

When several chats match and none is a clear winner, nothing is sent
and the candidates are listed instead.

Examples:
  beeper send mom "running late, be there in 20"
  beeper send "family group" on my way
  beeper send john hello --service whatsapp`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&sendService, "service", "s", "",
		"restrict to one service (whatsapp, telegram, signal, ...)")
	sendCmd.Flags().BoolVarP(&sendYes, "yes", "y", false,
		"send to the best match even when it is not a clear winner")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]
	text := strings.Join(args[1:], " ")

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
	chat, err := res.Resolve(ctx, name, sendService)
	if err != nil {
		var noMatch *resolver.NoMatchError
		if errors.As(err, &noMatch) {
			if sendYes && len(noMatch.Suggestions) > 0 {
				chat = &noMatch.Suggestions[0].Chat
			} else {
				fmt.Println(noMatch.Error())
				return nil
			}
		} else {
			return err
		}
	}

	if _, err := client.SendMessage(ctx, chat.ID, text); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	if store != nil {
		_ = store.RecordSend(ctx, *chat, text)
	}

	fmt.Printf("Sent to %q\n", chat.Title)
	return nil
}
