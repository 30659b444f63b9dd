package normalize

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMergeFirewallEmptySourceYieldsDefaults(t *testing.T) {
	merged := MergeFirewall(Map{})
	if diff := cmp.Diff(DefaultFirewall(), merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFirewallSectionGranularity(t *testing.T) {
	egress := Map{"enabled": true, "mode": "allowlist"}
	merged := MergeFirewall(Map{
		"firewallConfig": Map{"egress": egress},
	})

	if diff := cmp.Diff(egress, merged["egress"]); diff != "" {
		t.Fatalf("egress mismatch (-want +got):\n%s", diff)
	}
	defaults := DefaultFirewall()
	for _, section := range []string{"ipAccess", "proxy", "trustedProxies", "network"} {
		if diff := cmp.Diff(defaults[section], merged[section]); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", section, diff)
		}
	}
}

func TestDefaultFirewallShape(t *testing.T) {
	defaults := DefaultFirewall()

	ipAccess := Child(defaults, "ipAccess")
	require.False(t, Bool(ipAccess, "enabled"))
	require.Equal(t, "allowlist", ipAccess["mode"])
	require.Equal(t, []any{"/health", "/ready"}, ipAccess["bypassPaths"])

	network := Child(defaults, "network")
	rl := Child(network, "rateLimit")
	require.True(t, Bool(rl, "enabled"))
	require.Equal(t, 120, rl["requestsPerMinute"])

	sh := Child(network, "securityHeaders")
	require.Equal(t, 31536000, sh["hstsMaxAge"])
	require.Equal(t, "DENY", sh["xFrameOptions"])
	require.Equal(t, "strict-origin-when-cross-origin", sh["referrerPolicy"])
	require.Equal(t, "camera=(), microphone=(), geolocation()", sh["permissionsPolicy"])
}

func TestFirewallFromForm(t *testing.T) {
	form := url.Values{
		"fw_ip_enabled":          {"1"},
		"fw_ip_allowlist":        {"192.168.1.0/24, 10.0.0.1"},
		"fw_egress_allowedPorts": {"443, 80"},
		"fw_egress_blockedPorts": {"25, x, 445"},
		"fw_proxy_http":          {"http://proxy:8080"},
		"fw_net_rl_rpm":          {"240"},
		"fw_sh_hstsMaxAge":       {"not-a-number"},
		"fw_sh_hsts":             {"1"},
	}
	got := FirewallFromForm(form)

	ipAccess := Child(got, "ipAccess")
	require.True(t, Bool(ipAccess, "enabled"))
	require.Equal(t, "allowlist", ipAccess["mode"])
	require.Equal(t, []string{"192.168.1.0/24", "10.0.0.1"}, ipAccess["allowlist"])

	egress := Child(got, "egress")
	require.Equal(t, "blocklist", egress["mode"])
	require.Equal(t, []int{443, 80}, egress["allowedPorts"])
	require.Equal(t, []int{25, 445}, egress["blockedPorts"])

	require.Equal(t, "http://proxy:8080", Child(got, "proxy")["httpProxy"])

	network := Child(got, "network")
	require.Equal(t, 240, Child(network, "rateLimit")["requestsPerMinute"])

	sh := Child(network, "securityHeaders")
	require.True(t, Bool(sh, "hsts"))
	// Unparseable numeric input falls back to the default.
	require.Equal(t, 31536000, sh["hstsMaxAge"])
	require.Equal(t, "DENY", sh["xFrameOptions"])
}
