package normalize

import (
	"net/url"
	"strconv"
)

// DefaultFirewall returns the fully-populated network & firewall shape.
// Each top-level section is a complete default that replaces an absent or
// null section wholesale.
func DefaultFirewall() Map {
	return Map{
		"ipAccess": Map{
			"enabled":     false,
			"mode":        "allowlist",
			"allowlist":   []any{},
			"blocklist":   []any{},
			"bypassPaths": []any{"/health", "/ready"},
		},
		"egress": Map{
			"enabled":      false,
			"mode":         "blocklist",
			"allowedHosts": []any{},
			"blockedHosts": []any{},
			"allowedPorts": []any{},
			"blockedPorts": []any{},
		},
		"proxy": Map{
			"httpProxy":  "",
			"httpsProxy": "",
			"noProxy":    []any{"localhost", "127.0.0.1"},
		},
		"trustedProxies": Map{
			"enabled": false,
			"ips":     []any{},
		},
		"network": Map{
			"corsOrigins": []any{},
			"rateLimit": Map{
				"enabled":           true,
				"requestsPerMinute": 120,
				"skipPaths":         []any{"/health", "/ready"},
			},
			"httpsEnforcement": Map{
				"enabled":      false,
				"excludePaths": []any{},
			},
			"securityHeaders": Map{
				"hsts":                true,
				"hstsMaxAge":          31536000,
				"xFrameOptions":       "DENY",
				"xContentTypeOptions": true,
				"referrerPolicy":      "strict-origin-when-cross-origin",
				"permissionsPolicy":   "camera=(), microphone=(), geolocation()",
			},
		},
	}
}

// MergeFirewall overlays a possibly-partial API response onto the firewall
// defaults at section granularity. A firewallConfig wrapper key is
// unwrapped when present.
func MergeFirewall(raw Map) Map {
	cfg := unwrap(raw, "firewallConfig")
	return mergeSections(cfg, DefaultFirewall(),
		"ipAccess", "egress", "proxy", "trustedProxies", "network")
}

// FirewallFromForm rebuilds the firewall shape from the settings form
// fields. List fields go through the comma-list rules; port lists drop
// unparseable pieces; numeric fields fall back to their defaults when the
// input is blank or unparseable.
func FirewallFromForm(form url.Values) Map {
	ipMode := form.Get("fw_ip_mode")
	if ipMode == "" {
		ipMode = "allowlist"
	}
	egressMode := form.Get("fw_egress_mode")
	if egressMode == "" {
		egressMode = "blocklist"
	}
	xFrameOptions := form.Get("fw_sh_xFrameOptions")
	if xFrameOptions == "" {
		xFrameOptions = "DENY"
	}
	referrerPolicy := form.Get("fw_sh_referrerPolicy")
	if referrerPolicy == "" {
		referrerPolicy = "strict-origin-when-cross-origin"
	}

	return Map{
		"ipAccess": Map{
			"enabled":     formChecked(form, "fw_ip_enabled"),
			"mode":        ipMode,
			"allowlist":   SplitList(form.Get("fw_ip_allowlist")),
			"blocklist":   SplitList(form.Get("fw_ip_blocklist")),
			"bypassPaths": SplitList(form.Get("fw_ip_bypassPaths")),
		},
		"egress": Map{
			"enabled":      formChecked(form, "fw_egress_enabled"),
			"mode":         egressMode,
			"allowedHosts": SplitList(form.Get("fw_egress_allowedHosts")),
			"blockedHosts": SplitList(form.Get("fw_egress_blockedHosts")),
			"allowedPorts": SplitPortList(form.Get("fw_egress_allowedPorts")),
			"blockedPorts": SplitPortList(form.Get("fw_egress_blockedPorts")),
		},
		"proxy": Map{
			"httpProxy":  form.Get("fw_proxy_http"),
			"httpsProxy": form.Get("fw_proxy_https"),
			"noProxy":    SplitList(form.Get("fw_proxy_noProxy")),
		},
		"trustedProxies": Map{
			"enabled": formChecked(form, "fw_tp_enabled"),
			"ips":     SplitList(form.Get("fw_tp_ips")),
		},
		"network": Map{
			"corsOrigins": SplitList(form.Get("fw_net_corsOrigins")),
			"rateLimit": Map{
				"enabled":           formChecked(form, "fw_net_rl_enabled"),
				"requestsPerMinute": formInt(form, "fw_net_rl_rpm", 120),
				"skipPaths":         SplitList(form.Get("fw_net_rl_skipPaths")),
			},
			"httpsEnforcement": Map{
				"enabled":      formChecked(form, "fw_net_https_enabled"),
				"excludePaths": SplitList(form.Get("fw_net_https_excludePaths")),
			},
			"securityHeaders": Map{
				"hsts":                formChecked(form, "fw_sh_hsts"),
				"hstsMaxAge":          formInt(form, "fw_sh_hstsMaxAge", 31536000),
				"xFrameOptions":       xFrameOptions,
				"xContentTypeOptions": formChecked(form, "fw_sh_xContentTypeOptions"),
				"referrerPolicy":      referrerPolicy,
				"permissionsPolicy":   form.Get("fw_sh_permissionsPolicy"),
			},
		},
	}
}

func formInt(form url.Values, key string, fallback int) int {
	n, err := strconv.Atoi(form.Get(key))
	if err != nil {
		return fallback
	}
	return n
}
