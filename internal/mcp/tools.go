package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "search_chats",
		Description: "Search Beeper chats by name and return candidates ranked by similarity. Use this to find a chat before opening it or sending a message.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Free-text chat or contact name to search for",
				},
				"service": map[string]interface{}{
					"type":        "string",
					"description": "Restrict to one messaging service (e.g. whatsapp, telegram, signal)",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of ranked matches to return (default: 5)",
				},
			},
			"required": []string{"name"},
		},
	},
	{
		Name:        "open_chat",
		Description: "Resolve a chat by name and focus it in the Beeper Desktop app. Fails with 'did you mean' suggestions when the name is ambiguous.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Chat or contact name",
				},
				"service": map[string]interface{}{
					"type":        "string",
					"description": "Restrict to one messaging service",
				},
			},
			"required": []string{"name"},
		},
	},
	{
		Name:        "send_message",
		Description: "Resolve a chat by name and send a text message to it. Fails with 'did you mean' suggestions when the name is ambiguous.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Chat or contact name",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Message text to send",
				},
				"service": map[string]interface{}{
					"type":        "string",
					"description": "Restrict to one messaging service",
				},
			},
			"required": []string{"name", "text"},
		},
	},
	{
		Name:        "summarize_messages",
		Description: "Summarize messages in a time window, grouped by chat. Optionally restricted to a single chat resolved by name.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"since_hours": map[string]interface{}{
					"type":        "integer",
					"description": "Window size in hours (default: 24)",
				},
				"chat": map[string]interface{}{
					"type":        "string",
					"description": "Restrict to one chat, resolved by name",
				},
			},
		},
	},
	{
		Name:        "get_unread_summary",
		Description: "Summarize unread messages across all chats for a time window.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"since_hours": map[string]interface{}{
					"type":        "integer",
					"description": "Window size in hours (default: 24)",
				},
			},
		},
	},
	{
		Name:        "list_accounts",
		Description: "List the messaging accounts connected to Beeper Desktop.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
}
