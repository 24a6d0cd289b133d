package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrGHPrice/raycast-extensions/internal/output"
	"github.com/MrGHPrice/raycast-extensions/internal/summarize"
)

var (
	summarizeSince string
	summarizeChat  string
	unreadSince    string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize recent messages grouped by chat",
	Long: `Summarize messages from a time window, grouped by chat.

Examples:
  beeper summarize               # last 24 hours
  beeper summarize --since 7d
  beeper summarize --chat mom --since 48h`,
	RunE: runSummarize,
}

var unreadCmd = &cobra.Command{
	Use:   "unread",
	Short: "Summarize unread messages",
	Long: `Summarize unread messages across all chats.

Examples:
  beeper unread
  beeper unread --since 3d`,
	RunE: runUnread,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeSince, "since", "24h",
		"window size, e.g. 24h, 7d")
	summarizeCmd.Flags().StringVar(&summarizeChat, "chat", "",
		"restrict to one chat, resolved by name")
	unreadCmd.Flags().StringVar(&unreadSince, "since", "24h",
		"window size, e.g. 24h, 7d")
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(unreadCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}

	since, err := parseSince(summarizeSince)
	if err != nil {
		return err
	}

	chatID := ""
	if summarizeChat != "" {
		store := openCache(cfg)
		if store != nil {
			defer store.Close()
		}
		chat, err := newResolver(client, store, cfg).Resolve(ctx, summarizeChat, "")
		if err != nil {
			return err
		}
		chatID = chat.ID
	}

	digest, err := summarize.New(client).Window(ctx, since, chatID)
	if err != nil {
		return fmt.Errorf("failed to summarize messages: %w", err)
	}

	if outputFmt == "json" {
		return output.JSON(digest)
	}
	fmt.Println(digest.Format())
	return nil
}

func runUnread(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}

	since, err := parseSince(unreadSince)
	if err != nil {
		return err
	}

	digest, err := summarize.New(client).Unread(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to summarize unread messages: %w", err)
	}

	if outputFmt == "json" {
		return output.JSON(digest)
	}
	fmt.Println(digest.Format())
	return nil
}

// parseSince accepts time.ParseDuration syntax plus a day suffix ("7d").
func parseSince(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil || days <= 0 {
			return time.Time{}, fmt.Errorf("invalid window %q (want e.g. 24h, 7d)", s)
		}
		return time.Now().Add(-time.Duration(days) * 24 * time.Hour), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return time.Time{}, fmt.Errorf("invalid window %q (want e.g. 24h, 7d)", s)
	}
	return time.Now().Add(-d), nil
}
