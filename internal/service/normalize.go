package service

import "strings"

// Canonical service tags. Every free-form network identifier reported by
// Beeper Desktop normalizes to exactly one of these.
const (
	WhatsApp       = "whatsapp"
	Telegram       = "telegram"
	Signal         = "signal"
	Instagram      = "instagram"
	Messenger      = "messenger"
	Discord        = "discord"
	Slack          = "slack"
	LinkedIn       = "linkedin"
	Twitter        = "twitter"
	GoogleChat     = "googlechat"
	GoogleMessages = "googlemessages"
	GoogleVoice    = "googlevoice"
	SMS            = "sms"
	IMessage       = "imessage"
	Matrix         = "matrix"
	Unknown        = "unknown"
)

// known maps network identifiers (and common aliases) to canonical tags.
// Keys shorter than 3 characters only match via exact lookup.
var known = map[string]string{
	"whatsapp":        WhatsApp,
	"wa":              WhatsApp,
	"telegram":        Telegram,
	"signal":          Signal,
	"instagram":       Instagram,
	"ig":              Instagram,
	"messenger":       Messenger,
	"facebook":        Messenger,
	"fb":              Messenger,
	"discord":         Discord,
	"slack":           Slack,
	"linkedin":        LinkedIn,
	"twitter":         Twitter,
	"x":               Twitter,
	"googlechat":      GoogleChat,
	"gchat":           GoogleChat,
	"google-chat":     GoogleChat,
	"googlemessages":  GoogleMessages,
	"gmessages":       GoogleMessages,
	"g-messages":      GoogleMessages,
	"google-messages": GoogleMessages,
	"googlevoice":     GoogleVoice,
	"gvoice":          GoogleVoice,
	"g-voice":         GoogleVoice,
	"sms":             SMS,
	"imessage":        IMessage,
	"matrix":          Matrix,
	"beeper":          Matrix,
}

// Normalize maps a free-form network identifier (e.g. "whatsapp_bridge",
// "g-messages", "beeper") to a canonical service tag. Exact lookup first,
// then longest known-key prefix match for keys of length >= 3, else Unknown.
func Normalize(network string) string {
	n := strings.ToLower(strings.TrimSpace(network))
	if n == "" {
		return Unknown
	}
	if tag, ok := known[n]; ok {
		return tag
	}

	best := ""
	for key := range known {
		if len(key) < 3 || len(key) <= len(best) {
			continue
		}
		if strings.HasPrefix(n, key) {
			best = key
		}
	}
	if best != "" {
		return known[best]
	}
	return Unknown
}

// Tags returns the closed set of canonical tags, excluding Unknown.
func Tags() []string {
	return []string{
		WhatsApp, Telegram, Signal, Instagram, Messenger, Discord, Slack,
		LinkedIn, Twitter, GoogleChat, GoogleMessages, GoogleVoice, SMS,
		IMessage, Matrix,
	}
}
