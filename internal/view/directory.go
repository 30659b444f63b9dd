package view

import "github.com/agenticmail/dashboard/internal/normalize"

// UserRow is one line of the team members list.
type UserRow struct {
	ID        string
	Name      string
	Email     string
	Role      normalize.Badge
	LastLogin string
}

// UsersList shapes the team members response.
func UsersList(data normalize.Map) []UserRow {
	items := normalize.MapItems(normalize.List(data, "users"))
	rows := make([]UserRow, 0, len(items))
	for _, u := range items {
		lastLogin := normalize.TimeAgo(normalize.FirstStr(u, "lastLoginAt", "lastLogin"))
		rows = append(rows, UserRow{
			ID:        normalize.Str(u, "id"),
			Name:      normalize.Str(u, "name"),
			Email:     normalize.Str(u, "email"),
			Role:      normalize.StatusBadge(normalize.Str(u, "role")),
			LastLogin: lastLogin,
		})
	}
	return rows
}

// APIKeyRow is one line of the API keys list.
type APIKeyRow struct {
	ID       string
	Name     string
	Prefix   string
	LastUsed string
	Status   normalize.Badge
}

// APIKeysList shapes the API keys response. Revoked keys keep their row
// with a revoked badge.
func APIKeysList(data normalize.Map) []APIKeyRow {
	items := normalize.MapItems(normalize.List(data, "keys"))
	rows := make([]APIKeyRow, 0, len(items))
	for _, k := range items {
		status := "active"
		if normalize.Bool(k, "revoked") {
			status = "revoked"
		}
		rows = append(rows, APIKeyRow{
			ID:       normalize.Str(k, "id"),
			Name:     normalize.Str(k, "name"),
			Prefix:   normalize.Str(k, "keyPrefix"),
			LastUsed: normalize.TimeAgo(normalize.Str(k, "lastUsedAt")),
			Status:   normalize.StatusBadge(status),
		})
	}
	return rows
}

// AuditRow is one line of the audit log.
type AuditRow struct {
	Time     string
	Actor    string
	Action   string
	Resource string
	IP       string
}

// AuditPage is one page of the audit log.
type AuditPage struct {
	Events []AuditRow
	Total  int
	Page   int
}

// AuditList shapes one page of the audit log response.
func AuditList(data normalize.Map, page int) AuditPage {
	items := normalize.MapItems(normalize.List(data, "events"))
	rows := make([]AuditRow, 0, len(items))
	for _, e := range items {
		ip := normalize.Str(e, "ip")
		if ip == "" {
			ip = "-"
		}
		rows = append(rows, AuditRow{
			Time:     normalize.Str(e, "timestamp"),
			Actor:    normalize.Str(e, "actor"),
			Action:   normalize.Str(e, "action"),
			Resource: normalize.Str(e, "resource"),
			IP:       ip,
		})
	}
	return AuditPage{
		Events: rows,
		Total:  normalize.Int(data, "total"),
		Page:   page,
	}
}

// DashboardStats is the stat strip of the overview page.
type DashboardStats struct {
	TotalAgents      int
	ActiveAgents     int
	TotalUsers       int
	TotalAuditEvents int
}

// DashboardView is the overview page model.
type DashboardView struct {
	Stats          DashboardStats
	RecentActivity []AuditRow
}

// Dashboard shapes the overview page from the stats and recent audit
// responses.
func Dashboard(stats, audit normalize.Map) DashboardView {
	return DashboardView{
		Stats: DashboardStats{
			TotalAgents:      normalize.Int(stats, "totalAgents"),
			ActiveAgents:     normalize.Int(stats, "activeAgents"),
			TotalUsers:       normalize.Int(stats, "totalUsers"),
			TotalAuditEvents: normalize.Int(stats, "totalAuditEvents"),
		},
		RecentActivity: AuditList(audit, 0).Events,
	}
}
