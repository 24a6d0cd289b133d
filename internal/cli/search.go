package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrGHPrice/raycast-extensions/internal/matcher"
	"github.com/MrGHPrice/raycast-extensions/internal/output"
)

var (
	searchService string
	searchMax     int
)

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search chats by name",
	Long: `Search chats across all connected services and rank them by name
similarity. Typos and partial names are fine.

Examples:
  beeper search mom
  beeper search "john smith"
  beeper search john --service whatsapp`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchService, "service", "s", "",
		"restrict to one service (whatsapp, telegram, signal, ...)")
	searchCmd.Flags().IntVarP(&searchMax, "max", "n", 0,
		"maximum matches to show (default from config)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := strings.Join(args, " ")

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
	results, err := res.Candidates(ctx, query, searchService)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if searchMax > 0 && len(results) > searchMax {
		results = results[:searchMax]
	}

	if len(results) == 0 {
		fmt.Println(matcher.SuggestionMessage(query, nil, searchService))
		return nil
	}

	return output.Output(outputFmt, results)
}
