package view

import "github.com/agenticmail/dashboard/internal/normalize"

// MessageRow is one line of the message log.
type MessageRow struct {
	ID        string
	Time      string
	TimeAgo   string
	From      string
	To        string
	Subject   string
	Direction normalize.Badge
	Channel   normalize.Badge
	Status    normalize.Badge
	Raw       normalize.Map
}

// MessagesList shapes the message log response.
func MessagesList(data normalize.Map) []MessageRow {
	items := normalize.MapItems(normalize.FirstList(data, "messages", "items"))
	rows := make([]MessageRow, 0, len(items))
	for _, m := range items {
		subject := normalize.Str(m, "subject")
		if subject == "" {
			subject = "(no subject)"
		}
		ts := normalize.FirstStr(m, "timestamp", "createdAt", "created_at")
		rows = append(rows, MessageRow{
			ID:        normalize.Str(m, "id"),
			Time:      ts,
			TimeAgo:   normalize.TimeAgo(ts),
			From:      normalize.FirstStr(m, "from", "sender"),
			To:        normalize.FirstStr(m, "to", "recipient"),
			Subject:   subject,
			Direction: normalize.DirectionBadge(normalize.Str(m, "direction")),
			Channel:   normalize.ChannelBadge(normalize.Str(m, "channel")),
			Status:    normalize.StatusBadge(normalize.Str(m, "status")),
			Raw:       m,
		})
	}
	return rows
}
