package service

import "testing"

func TestNormalize_ExactLookup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"whatsapp", WhatsApp},
		{"WhatsApp", WhatsApp},
		{"  telegram  ", Telegram},
		{"g-messages", GoogleMessages},
		{"beeper", Matrix},
		{"fb", Messenger},
		{"ig", Instagram},
		{"x", Twitter},
		{"sms", SMS},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_PrefixMatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"whatsapp_bridge", WhatsApp},
		{"telegram_bot", Telegram},
		{"signal-v2", Signal},
		{"discordgo", Discord},
		{"imessage_cloud", IMessage},
		{"googlemessages_rcs", GoogleMessages},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_ShortKeysNeverPrefixMatch(t *testing.T) {
	// "wa" and "x" are exact-only aliases; identifiers merely starting with
	// them must not resolve through the prefix pass.
	for _, in := range []string{"walkie", "xmpp"} {
		if got := Normalize(in); got != Unknown {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, Unknown)
		}
	}
}

func TestNormalize_Unknown(t *testing.T) {
	for _, in := range []string{"", "carrier-pigeon", "irc"} {
		if got := Normalize(in); got != Unknown {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, Unknown)
		}
	}
}

func TestNormalize_LongestPrefixWins(t *testing.T) {
	// "google-messages..." must resolve via the longer "google-messages"
	// key, not stop at a shorter "google"-ish key.
	if got := Normalize("google-messages-bridge"); got != GoogleMessages {
		t.Errorf("Normalize(google-messages-bridge) = %q, want %q", got, GoogleMessages)
	}
}

func TestTags_ClosedSet(t *testing.T) {
	tags := Tags()
	if len(tags) != 15 {
		t.Fatalf("got %d canonical tags, want 15", len(tags))
	}
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag == Unknown {
			t.Errorf("Tags() must not include %q", Unknown)
		}
		if seen[tag] {
			t.Errorf("duplicate tag %q", tag)
		}
		seen[tag] = true
	}
}
