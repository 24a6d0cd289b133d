package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/MrGHPrice/raycast-extensions/internal/beeper"
	"github.com/MrGHPrice/raycast-extensions/internal/cache"
	"github.com/MrGHPrice/raycast-extensions/internal/matcher"
	"github.com/MrGHPrice/raycast-extensions/internal/service"
	"github.com/MrGHPrice/raycast-extensions/internal/summarize"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []beeper.Chat:
		return chatsTable(w, v)
	case []matcher.MatchResult:
		return matchesTable(w, v)
	case []beeper.Account:
		return accountsTable(w, v)
	case []cache.RecentChat:
		return recentTable(w, v)
	case *summarize.Digest:
		_, err := fmt.Fprintln(w, v.Format())
		return err
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func chatsTable(w io.Writer, chats []beeper.Chat) error {
	if len(chats) == 0 {
		fmt.Fprintln(w, "No chats found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"CHAT", "SERVICE", "UNREAD", "LAST ACTIVITY"})

	for _, c := range chats {
		lastActivity := ""
		if c.LastActivity != nil {
			lastActivity = formatAge(time.Since(*c.LastActivity))
		}
		unread := ""
		if c.UnreadCount > 0 {
			unread = fmt.Sprintf("%d", c.UnreadCount)
		}
		table.Append([]string{
			truncate(c.Title, 32),
			service.Normalize(c.Network),
			unread,
			lastActivity,
		})
	}

	return table.Render()
}

func matchesTable(w io.Writer, matches []matcher.MatchResult) error {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"CHAT", "SERVICE", "SCORE", "MATCH"})

	for _, m := range matches {
		table.Append([]string{
			truncate(m.Chat.Title, 32),
			service.Normalize(m.Chat.Network),
			fmt.Sprintf("%.2f", m.Score),
			string(m.MatchType),
		})
	}

	return table.Render()
}

func accountsTable(w io.Writer, accounts []beeper.Account) error {
	if len(accounts) == 0 {
		fmt.Fprintln(w, "No connected accounts.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"ACCOUNT", "SERVICE", "USER"})

	for _, a := range accounts {
		table.Append([]string{
			a.ID,
			service.Normalize(a.Network),
			a.User,
		})
	}

	return table.Render()
}

func recentTable(w io.Writer, chats []cache.RecentChat) error {
	if len(chats) == 0 {
		fmt.Fprintln(w, "No recent chats yet. Open or message a chat first.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"CHAT", "SERVICE", "USES", "LAST USED"})

	for _, c := range chats {
		table.Append([]string{
			truncate(c.Title, 32),
			c.Service,
			fmt.Sprintf("%d", c.OpenCount),
			formatAge(time.Since(c.LastUsedAt)),
		})
	}

	return table.Render()
}

func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
