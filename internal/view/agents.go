// Package view builds display-ready view models from raw management API
// responses. Builders are pure: no I/O, no template knowledge, and no
// failure mode beyond falling back to documented defaults.
package view

import (
	"fmt"

	"github.com/agenticmail/dashboard/internal/normalize"
)

// AgentRow is one line of the agents list.
type AgentRow struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Status     normalize.Badge
	CanArchive bool
}

// AgentsList shapes the /api/agents response.
func AgentsList(data normalize.Map) []AgentRow {
	items := normalize.MapItems(normalize.List(data, "agents"))
	rows := make([]AgentRow, 0, len(items))
	for _, a := range items {
		resolved := normalize.ResolveAgent(a)
		status := normalize.Str(a, "status")
		rows = append(rows, AgentRow{
			ID:         normalize.Str(a, "id"),
			Name:       resolved.DisplayName,
			Email:      resolved.Email,
			Role:       normalize.Str(a, "role"),
			Status:     normalize.StatusBadge(status),
			CanArchive: status == "active",
		})
	}
	return rows
}

// PersonaView carries the optional personal details of an agent.
type PersonaView struct {
	Gender             string
	DateOfBirth        string
	MaritalStatus      string
	CulturalBackground string
	Language           string
}

// HasDetails reports whether any personal field is set.
func (p PersonaView) HasDetails() bool {
	return p.Gender != "" || p.DateOfBirth != "" || p.MaritalStatus != "" ||
		p.CulturalBackground != "" || p.Language != ""
}

// PermissionView summarizes an agent permission profile.
type PermissionView struct {
	ProfileName        string
	MaxRiskLevel       normalize.Badge
	SandboxEnabled     bool
	RateLimits         string
	BlockedSideEffects []string
}

// ToolSecurityStatus is the per-agent tool security summary, one flag per
// enforcement layer.
type ToolSecurityStatus struct {
	PathSandbox      bool
	SSRF             bool
	CommandSanitizer bool
	CommandMode      string
	Audit            bool
	RateLimit        bool
	CircuitBreaker   bool
	Telemetry        bool
}

// ActivityEvent is one row of the agent events tab.
type ActivityEvent struct {
	Time    string
	Type    normalize.Badge
	Details string
	Raw     normalize.Map
}

// ToolCallRow is one row of the agent tool-calls tab.
type ToolCallRow struct {
	Time     string
	Tool     string
	Duration string
	Status   normalize.Badge
	Raw      normalize.Map
}

// JournalRow is one row of a journal listing.
type JournalRow struct {
	ID          string
	Time        string
	Agent       string
	Tool        string
	Action      string
	Reversible  bool
	Reversed    bool
	Status      normalize.Badge
	CanRollback bool
	Raw         normalize.Map
}

// AgentDetailView is the full agent detail page model.
type AgentDetailView struct {
	ID            string
	Name          string
	Email         string
	AvatarInitial string
	Status        normalize.Badge
	Role          normalize.Badge
	Model         string
	Created       string
	Description   string
	Traits        map[string]string
	Persona       PersonaView
	Permissions   *PermissionView
	ToolSecurity  *ToolSecurityStatus
	Events        []ActivityEvent
	ToolCalls     []ToolCallRow
	Journal       []JournalRow
}

// AgentDetail shapes the agent detail page from the agent record plus the
// per-agent tool security and activity responses. Any of the inputs may be
// nil or error-shaped; the view degrades to defaults.
func AgentDetail(data, toolSec, events, toolCalls, journal normalize.Map) AgentDetailView {
	// The API returns the agent at top level or nested under "agent".
	a := data
	if nested, ok := data["agent"].(normalize.Map); ok {
		a = nested
	}

	resolved := normalize.ResolveAgent(a)
	name := resolved.DisplayName
	if name == "" {
		name = "Unnamed Agent"
	}
	status := normalize.Str(a, "status")
	if status == "" {
		status = "active"
	}
	role := normalize.Str(a, "role")
	if role == "" {
		role = "agent"
	}
	model := resolved.Model
	if model == "" {
		model = "-"
	}

	config := normalize.Child(a, "config")
	persona := normalize.FirstChild(a, "persona")
	if len(persona) == 0 {
		persona = normalize.Child(config, "persona")
	}

	detail := AgentDetailView{
		ID:            normalize.Str(a, "id"),
		Name:          name,
		Email:         resolved.Email,
		AvatarInitial: normalize.AvatarInitial(name),
		Status:        normalize.StatusBadge(status),
		Role:          normalize.StatusBadge(role),
		Model:         model,
		Created:       normalize.Str(a, "created_at"),
		Description:   normalize.Str(a, "description"),
		Traits:        agentTraits(persona, config),
		Persona: PersonaView{
			Gender:             normalize.Str(persona, "gender"),
			DateOfBirth:        normalize.Str(persona, "dateOfBirth"),
			MaritalStatus:      normalize.Str(persona, "maritalStatus"),
			CulturalBackground: normalize.Str(persona, "culturalBackground"),
			Language:           normalize.Str(persona, "language"),
		},
		Permissions:  agentPermissions(a, config),
		ToolSecurity: agentToolSecurity(toolSec),
		Events:       agentEvents(events),
		ToolCalls:    agentToolCalls(toolCalls),
		Journal:      JournalRows(journal),
	}
	return detail
}

func agentTraits(persona, config normalize.Map) map[string]string {
	raw := normalize.Child(persona, "traits")
	if len(raw) == 0 {
		raw = normalize.Child(config, "traits")
	}
	traits := map[string]string{}
	for k := range raw {
		if v := normalize.Str(raw, k); v != "" {
			traits[k] = v
		}
	}
	return traits
}

func agentPermissions(a, config normalize.Map) *PermissionView {
	permissions := normalize.FirstChild(a, "permissions")
	if len(permissions) == 0 {
		permissions = normalize.Child(config, "permissions")
	}
	if len(permissions) == 0 {
		return nil
	}

	profileName := normalize.FirstStr(permissions, "name", "preset")
	if profileName == "" {
		profileName = "Custom"
	}

	maxRisk := normalize.FirstStr(permissions, "maxRiskLevel", "max_risk_level")

	sandbox := normalize.Bool(permissions, "sandboxMode") ||
		normalize.Bool(permissions, "sandbox_mode")

	rl := normalize.FirstChild(permissions, "rateLimits", "rate_limits")
	perMinute := normalize.FirstStr(rl, "toolCallsPerMinute", "calls_per_minute")
	perHour := normalize.FirstStr(rl, "toolCallsPerHour", "calls_per_hour")
	limits := ""
	if perMinute != "" {
		limits = perMinute + "/min"
	}
	if perHour != "" {
		if limits != "" {
			limits += ", "
		}
		limits += perHour + "/hr"
	}
	if limits == "" {
		limits = "None set"
	}

	var blocked []string
	effects := normalize.FirstList(permissions, "blockedSideEffects", "blocked_side_effects")
	for _, effect := range effects {
		blocked = append(blocked, fmt.Sprintf("%v", effect))
	}

	return &PermissionView{
		ProfileName:        profileName,
		MaxRiskLevel:       RiskBadge(maxRisk),
		SandboxEnabled:     sandbox,
		RateLimits:         limits,
		BlockedSideEffects: blocked,
	}
}

// RiskBadge classifies a permission risk level.
func RiskBadge(level string) normalize.Badge {
	switch level {
	case "low":
		return normalize.Badge{Label: level, Tone: "success"}
	case "medium":
		return normalize.Badge{Label: level, Tone: "warning"}
	case "high", "critical":
		return normalize.Badge{Label: level, Tone: "danger"}
	case "":
		return normalize.Badge{Label: "-", Tone: "muted"}
	default:
		return normalize.Badge{Label: level, Tone: "muted"}
	}
}

func agentToolSecurity(data normalize.Map) *ToolSecurityStatus {
	if len(data) == 0 {
		return nil
	}
	// Agent overrides win over the organization defaults.
	security := normalize.Child(normalize.Child(data, "toolSecurity"), "security")
	if len(security) == 0 {
		security = normalize.Child(normalize.Child(data, "orgDefaults"), "security")
	}
	mw := normalize.Child(normalize.Child(data, "toolSecurity"), "middleware")
	if len(mw) == 0 {
		mw = normalize.Child(normalize.Child(data, "orgDefaults"), "middleware")
	}

	sanitizer := normalize.Child(security, "commandSanitizer")
	mode := normalize.Str(sanitizer, "mode")
	if mode == "" {
		mode = "blocklist"
	}
	return &ToolSecurityStatus{
		PathSandbox:      normalize.Bool(normalize.Child(security, "pathSandbox"), "enabled"),
		SSRF:             normalize.Bool(normalize.Child(security, "ssrf"), "enabled"),
		CommandSanitizer: normalize.Bool(sanitizer, "enabled"),
		CommandMode:      mode,
		Audit:            normalize.Bool(normalize.Child(mw, "audit"), "enabled"),
		RateLimit:        normalize.Bool(normalize.Child(mw, "rateLimit"), "enabled"),
		CircuitBreaker:   normalize.Bool(normalize.Child(mw, "circuitBreaker"), "enabled"),
		Telemetry:        normalize.Bool(normalize.Child(mw, "telemetry"), "enabled"),
	}
}

func agentEvents(data normalize.Map) []ActivityEvent {
	items := normalize.MapItems(normalize.FirstList(data, "events", "items"))
	rows := make([]ActivityEvent, 0, len(items))
	for _, e := range items {
		rows = append(rows, ActivityEvent{
			Time:    normalize.FirstStr(e, "timestamp", "createdAt", "created_at"),
			Type:    normalize.StatusBadge(normalize.FirstStr(e, "type", "eventType")),
			Details: normalize.FirstStr(e, "description", "message", "details"),
			Raw:     e,
		})
	}
	return rows
}

func agentToolCalls(data normalize.Map) []ToolCallRow {
	items := normalize.MapItems(normalize.FirstList(data, "toolCalls", "tool_calls", "items"))
	rows := make([]ToolCallRow, 0, len(items))
	for _, tc := range items {
		duration := normalize.FirstStr(tc, "duration", "durationMs")
		if duration != "" {
			duration += "ms"
		} else {
			duration = "-"
		}
		status := normalize.FirstStr(tc, "status", "result")
		if status == "" {
			status = "unknown"
		}
		rows = append(rows, ToolCallRow{
			Time:     normalize.FirstStr(tc, "timestamp", "createdAt", "created_at"),
			Tool:     normalize.FirstStr(tc, "tool", "toolName", "tool_name"),
			Duration: duration,
			Status:   normalize.StatusBadge(status),
			Raw:      tc,
		})
	}
	return rows
}

// JournalRows shapes a journal listing. The same shape backs the journal
// page and the agent detail journal tab.
func JournalRows(data normalize.Map) []JournalRow {
	items := normalize.MapItems(normalize.FirstList(data, "entries", "journal", "items"))
	rows := make([]JournalRow, 0, len(items))
	for _, j := range items {
		status := normalize.Str(j, "status")
		if status == "" {
			status = "completed"
		}
		reversible := normalize.Bool(j, "reversible")
		reversed := normalize.Bool(j, "reversed")
		rows = append(rows, JournalRow{
			ID:          normalize.Str(j, "id"),
			Time:        normalize.FirstStr(j, "timestamp", "createdAt", "created_at"),
			Agent:       normalize.FirstStr(j, "agent", "agentId", "agent_id"),
			Tool:        normalize.FirstStr(j, "tool", "toolName", "tool_name"),
			Action:      normalize.FirstStr(j, "action", "actionType", "action_type"),
			Reversible:  reversible,
			Reversed:    reversed,
			Status:      normalize.StatusBadge(status),
			CanRollback: reversible && !reversed,
			Raw:         j,
		})
	}
	return rows
}
