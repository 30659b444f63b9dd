package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/agenticmail/dashboard/internal/normalize"
)

func TestSettingsDefaults(t *testing.T) {
	v := Settings(nil, nil, nil, nil, nil)

	require.Equal(t, "#e84393", v.General.PrimaryColor)
	require.Equal(t, "FREE", v.General.Plan.Label)
	require.False(t, v.Retention.Enabled)
	require.Equal(t, 365, v.Retention.RetainDays)
	require.True(t, v.ToolSecurity.PathSandboxEnabled)
	require.Equal(t, "blocklist", v.ToolSecurity.SanitizerMode)
	require.Equal(t, "USD", v.Pricing.Currency)
	require.Empty(t, v.Pricing.Providers)
}

func TestSettingsGeneral(t *testing.T) {
	settings := normalize.Map{
		"name":         "Acme",
		"domain":       "acme.test",
		"subdomain":    "acme",
		"primaryColor": "#123456",
		"plan":         "pro",
	}
	retention := normalize.Map{"enabled": true, "retainDays": float64(90)}

	v := Settings(settings, retention, nil, nil, nil)
	require.Equal(t, "Acme", v.General.Name)
	require.Equal(t, "#123456", v.General.PrimaryColor)
	require.Equal(t, "PRO", v.General.Plan.Label)
	require.True(t, v.Retention.Enabled)
	require.Equal(t, 90, v.Retention.RetainDays)
}

func TestToolSecuritySettingsJoinsLists(t *testing.T) {
	data := normalize.Map{
		"toolSecurityConfig": normalize.Map{
			"security": normalize.Map{
				"pathSandbox": normalize.Map{
					"enabled":     true,
					"allowedDirs": []any{"/srv/data", "/tmp"},
				},
				"ssrf": normalize.Map{
					"enabled":      false,
					"blockedCidrs": []any{"10.0.0.0/8"},
				},
				"commandSanitizer": normalize.Map{
					"enabled": true,
					"mode":    "allowlist",
				},
			},
		},
	}

	form := ToolSecuritySettings(data)
	require.True(t, form.PathSandboxEnabled)
	require.Equal(t, "/srv/data, /tmp", form.PathSandboxAllowedDirs)
	require.False(t, form.SSRFEnabled)
	require.Equal(t, "10.0.0.0/8", form.SSRFBlockedCIDRs)
	require.Equal(t, "allowlist", form.SanitizerMode)

	// The middleware section fell back wholesale to the defaults.
	require.True(t, form.AuditEnabled)
	require.True(t, form.RateLimitEnabled)
	require.True(t, form.BreakerEnabled)
	require.True(t, form.TelemetryEnabled)
}

func TestFirewallSettingsDefaults(t *testing.T) {
	form := FirewallSettings(normalize.Map{"error": "timeout"})

	want := FirewallForm{
		IPMode:              "allowlist",
		IPBypassPaths:       "/health, /ready",
		EgressMode:          "blocklist",
		NoProxy:             "localhost, 127.0.0.1",
		RateLimitEnabled:    true,
		RequestsPerMinute:   120,
		RateLimitSkipPaths:  "/health, /ready",
		HSTS:                true,
		HSTSMaxAge:          31536000,
		XFrameOptions:       "DENY",
		XContentTypeOptions: true,
		ReferrerPolicy:      "strict-origin-when-cross-origin",
		PermissionsPolicy:   "camera=(), microphone=(), geolocation()",
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("firewall defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestFirewallSettingsPortLists(t *testing.T) {
	data := normalize.Map{
		"firewallConfig": normalize.Map{
			"egress": normalize.Map{
				"enabled":      true,
				"mode":         "allowlist",
				"allowedPorts": []any{float64(443), float64(8443)},
				"blockedPorts": []any{float64(25)},
			},
		},
	}

	form := FirewallSettings(data)
	require.True(t, form.EgressEnabled)
	require.Equal(t, "allowlist", form.EgressMode)
	require.Equal(t, "443, 8443", form.EgressAllowedPorts)
	require.Equal(t, "25", form.EgressBlockedPorts)
}

func TestPricingGroupsByProviderFirstSeen(t *testing.T) {
	data := normalize.Map{
		"modelPricingConfig": normalize.Map{
			"currency": "EUR",
			"models": []any{
				normalize.Map{"provider": "anthropic", "modelId": "claude-sonnet-4"},
				normalize.Map{"provider": "openai", "modelId": "gpt-4o", "inputCostPerMillion": 2.5},
				normalize.Map{"provider": "anthropic", "modelId": "claude-haiku-3", "contextWindow": float64(200000)},
				normalize.Map{"modelId": "mystery"},
			},
		},
	}

	v := Pricing(data)
	require.Equal(t, "EUR", v.Currency)
	require.Len(t, v.Providers, 3)
	require.Equal(t, "anthropic", v.Providers[0].Provider)
	require.Equal(t, "Anthropic", v.Providers[0].Label)
	require.Len(t, v.Providers[0].Models, 2)
	require.Equal(t, "openai", v.Providers[1].Provider)
	require.Equal(t, "$2.50", v.Providers[1].Models[0].InputCost)
	require.Equal(t, "unknown", v.Providers[2].Provider)
	require.Equal(t, "Unknown", v.Providers[2].Label)
	require.Equal(t, 200000, v.Providers[0].Models[1].ContextWindow)
	require.Equal(t, "-", v.Providers[0].Models[0].InputCost)
}

func TestProviderLabel(t *testing.T) {
	require.Equal(t, "OpenAI", ProviderLabel("openai"))
	require.Equal(t, "OpenAI", ProviderLabel("OpenAI"))
	require.Equal(t, "Unknown", ProviderLabel(""))
	require.Equal(t, "fireworks", ProviderLabel("fireworks"))
}
