package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agenticmail/dashboard/internal/normalize"
)

func TestAgentsList(t *testing.T) {
	data := normalize.Map{
		"agents": []any{
			normalize.Map{
				"id":     "a1",
				"name":   "Support Bot",
				"email":  "support@acme.test",
				"role":   "agent",
				"status": "active",
			},
			normalize.Map{
				"id":     "a2",
				"name":   "Old Bot",
				"status": "archived",
			},
			"not a map",
		},
	}

	rows := AgentsList(data)
	require.Len(t, rows, 2)

	require.Equal(t, "a1", rows[0].ID)
	require.Equal(t, "Support Bot", rows[0].Name)
	require.Equal(t, "success", rows[0].Status.Tone)
	require.True(t, rows[0].CanArchive)

	require.Equal(t, "muted", rows[1].Status.Tone)
	require.False(t, rows[1].CanArchive)
}

func TestAgentsListErrorShaped(t *testing.T) {
	rows := AgentsList(normalize.Map{"error": "connection refused"})
	require.Empty(t, rows)
}

func TestAgentDetailDefaults(t *testing.T) {
	detail := AgentDetail(normalize.Map{}, nil, nil, nil, nil)

	require.Equal(t, "Unnamed Agent", detail.Name)
	require.Equal(t, "U", detail.AvatarInitial)
	require.Equal(t, "active", detail.Status.Label)
	require.Equal(t, "agent", detail.Role.Label)
	require.Equal(t, "-", detail.Model)
	require.Nil(t, detail.Permissions)
	require.Nil(t, detail.ToolSecurity)
	require.Empty(t, detail.Events)
	require.Empty(t, detail.ToolCalls)
	require.Empty(t, detail.Journal)
}

func TestAgentDetailNestedAgent(t *testing.T) {
	data := normalize.Map{
		"agent": normalize.Map{
			"id": "a1",
			"config": normalize.Map{
				"identity": normalize.Map{"name": "Billing", "email": "billing@acme.test"},
				"model":    "gpt-4o",
			},
		},
	}

	detail := AgentDetail(data, nil, nil, nil, nil)
	require.Equal(t, "a1", detail.ID)
	require.Equal(t, "Billing", detail.Name)
	require.Equal(t, "billing@acme.test", detail.Email)
	require.Equal(t, "B", detail.AvatarInitial)
	require.Equal(t, "gpt-4o", detail.Model)
}

func TestAgentDetailPermissions(t *testing.T) {
	data := normalize.Map{
		"permissions": normalize.Map{
			"preset":       "restricted",
			"maxRiskLevel": "high",
			"sandboxMode":  true,
			"rateLimits": normalize.Map{
				"toolCallsPerMinute": 10,
				"toolCallsPerHour":   200,
			},
			"blockedSideEffects": []any{"email_send", "file_write"},
		},
	}

	detail := AgentDetail(data, nil, nil, nil, nil)
	require.NotNil(t, detail.Permissions)
	require.Equal(t, "restricted", detail.Permissions.ProfileName)
	require.Equal(t, "danger", detail.Permissions.MaxRiskLevel.Tone)
	require.True(t, detail.Permissions.SandboxEnabled)
	require.Equal(t, "10/min, 200/hr", detail.Permissions.RateLimits)
	require.Equal(t, []string{"email_send", "file_write"}, detail.Permissions.BlockedSideEffects)
}

func TestAgentDetailPermissionsCustomProfile(t *testing.T) {
	data := normalize.Map{"permissions": normalize.Map{"sandbox_mode": true}}

	detail := AgentDetail(data, nil, nil, nil, nil)
	require.NotNil(t, detail.Permissions)
	require.Equal(t, "Custom", detail.Permissions.ProfileName)
	require.True(t, detail.Permissions.SandboxEnabled)
	require.Equal(t, "None set", detail.Permissions.RateLimits)
}

func TestAgentToolSecurityOverridesWin(t *testing.T) {
	toolSec := normalize.Map{
		"toolSecurity": normalize.Map{
			"security": normalize.Map{
				"pathSandbox":      normalize.Map{"enabled": true},
				"commandSanitizer": normalize.Map{"enabled": true, "mode": "allowlist"},
			},
		},
		"orgDefaults": normalize.Map{
			"security": normalize.Map{
				"pathSandbox": normalize.Map{"enabled": false},
			},
			"middleware": normalize.Map{
				"audit": normalize.Map{"enabled": true},
			},
		},
	}

	detail := AgentDetail(normalize.Map{}, toolSec, nil, nil, nil)
	require.NotNil(t, detail.ToolSecurity)
	require.True(t, detail.ToolSecurity.PathSandbox)
	require.Equal(t, "allowlist", detail.ToolSecurity.CommandMode)
	require.True(t, detail.ToolSecurity.Audit)
}

func TestAgentEventsFieldFallbacks(t *testing.T) {
	events := normalize.Map{
		"items": []any{
			normalize.Map{
				"created_at": "2025-06-01T10:00:00Z",
				"eventType":  "email_received",
				"message":    "Inbound email",
			},
		},
	}

	detail := AgentDetail(normalize.Map{}, nil, events, nil, nil)
	require.Len(t, detail.Events, 1)
	require.Equal(t, "2025-06-01T10:00:00Z", detail.Events[0].Time)
	require.Equal(t, "email_received", detail.Events[0].Type.Label)
	require.Equal(t, "Inbound email", detail.Events[0].Details)
}

func TestAgentToolCalls(t *testing.T) {
	toolCalls := normalize.Map{
		"tool_calls": []any{
			normalize.Map{"tool_name": "web_search", "durationMs": 412, "result": "ok"},
			normalize.Map{"tool": "send_email"},
		},
	}

	detail := AgentDetail(normalize.Map{}, nil, nil, toolCalls, nil)
	require.Len(t, detail.ToolCalls, 2)
	require.Equal(t, "web_search", detail.ToolCalls[0].Tool)
	require.Equal(t, "412ms", detail.ToolCalls[0].Duration)
	require.Equal(t, "ok", detail.ToolCalls[0].Status.Label)
	require.Equal(t, "-", detail.ToolCalls[1].Duration)
	require.Equal(t, "unknown", detail.ToolCalls[1].Status.Label)
}

func TestJournalRowsRollbackEligibility(t *testing.T) {
	data := normalize.Map{
		"entries": []any{
			normalize.Map{"id": "j1", "reversible": true, "reversed": false},
			normalize.Map{"id": "j2", "reversible": true, "reversed": true},
			normalize.Map{"id": "j3", "reversible": false},
		},
	}

	rows := JournalRows(data)
	require.Len(t, rows, 3)
	require.True(t, rows[0].CanRollback)
	require.False(t, rows[1].CanRollback)
	require.False(t, rows[2].CanRollback)
	require.Equal(t, "completed", rows[0].Status.Label)
}

func TestRiskBadge(t *testing.T) {
	require.Equal(t, "success", RiskBadge("low").Tone)
	require.Equal(t, "warning", RiskBadge("medium").Tone)
	require.Equal(t, "danger", RiskBadge("high").Tone)
	require.Equal(t, "danger", RiskBadge("critical").Tone)
	require.Equal(t, "-", RiskBadge("").Label)
	require.Equal(t, "muted", RiskBadge("weird").Tone)
}
