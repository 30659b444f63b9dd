package normalize

import "strings"

// Badge pairs a display label with a tone the templates map to a visual
// style.
type Badge struct {
	Label string
	Tone  string
}

// ToneDefault is the generic tone for labels outside the fixed tables.
const ToneDefault = "default"

var statusTones = map[string]string{
	"active":    "success",
	"archived":  "muted",
	"suspended": "danger",
	"revoked":   "danger",
	"pending":   "warning",
	"owner":     "warning",
	"admin":     "accent",
	"member":    "muted",
	"viewer":    "dim",
}

var directionTones = map[string]string{
	"inbound":  "info",
	"outbound": "success",
	"internal": "muted",
}

var channelTones = map[string]string{
	"email":    "accent",
	"api":      "warning",
	"internal": "muted",
	"webhook":  "info",
}

// StatusBadge classifies a status or role label. The lookup is
// case-insensitive; the label is rendered as given.
func StatusBadge(label string) Badge {
	return classify(label, statusTones, label)
}

// DirectionBadge classifies a message direction, rendering the literal
// "unknown" when the value is missing.
func DirectionBadge(direction string) Badge {
	return classify(direction, directionTones, "unknown")
}

// ChannelBadge classifies a message channel, rendering the literal
// "unknown" when the value is missing.
func ChannelBadge(channel string) Badge {
	return classify(channel, channelTones, "unknown")
}

func classify(label string, tones map[string]string, emptyLabel string) Badge {
	if label == "" {
		return Badge{Label: emptyLabel, Tone: ToneDefault}
	}
	tone := tones[strings.ToLower(label)]
	if tone == "" {
		tone = ToneDefault
	}
	return Badge{Label: label, Tone: tone}
}
