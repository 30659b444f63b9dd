package normalize

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMergeToolSecurityEmptySourceYieldsDefaults(t *testing.T) {
	for _, raw := range []Map{nil, {}, {"error": "upstream down"}} {
		merged := MergeToolSecurity(raw)
		if diff := cmp.Diff(DefaultToolSecurity(), merged); diff != "" {
			t.Fatalf("merge mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestMergeToolSecuritySectionTakenWholesale(t *testing.T) {
	security := Map{
		"pathSandbox": Map{"enabled": false, "allowedDirs": []any{"/tmp"}},
	}
	merged := MergeToolSecurity(Map{"security": security})

	// Present section is used as-is, without field-level backfill.
	if diff := cmp.Diff(security, merged["security"]); diff != "" {
		t.Fatalf("security section mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultToolSecurity()["middleware"], merged["middleware"]); diff != "" {
		t.Fatalf("middleware section mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeToolSecurityUnwrapsEnvelope(t *testing.T) {
	mw := Map{"audit": Map{"enabled": false}}
	merged := MergeToolSecurity(Map{
		"toolSecurityConfig": Map{"middleware": mw},
	})
	if diff := cmp.Diff(mw, merged["middleware"]); diff != "" {
		t.Fatalf("middleware mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeToolSecurityNullSectionUsesDefault(t *testing.T) {
	merged := MergeToolSecurity(Map{"security": nil, "middleware": Map{}})
	if diff := cmp.Diff(DefaultToolSecurity()["security"], merged["security"]); diff != "" {
		t.Fatalf("security mismatch (-want +got):\n%s", diff)
	}
	// An explicitly-present empty section is respected, not defaulted.
	require.Equal(t, Map{}, merged["middleware"])
}

func TestToolSecurityFromForm(t *testing.T) {
	form := url.Values{
		"ps_enabled":         {"1"},
		"ps_allowedDirs":     {"/tmp, /var/data"},
		"ps_blockedPatterns": {""},
		"ssrf_allowedHosts":  {"api.example.com"},
		"cs_enabled":         {"1"},
		"cs_allowedCommands": {"ls, cat , grep"},
		"audit_redactKeys":   {"password,token"},
		"rl_enabled":         {"1"},
	}
	got := ToolSecurityFromForm(form)

	security := Child(got, "security")
	ps := Child(security, "pathSandbox")
	require.True(t, Bool(ps, "enabled"))
	require.Equal(t, []string{"/tmp", "/var/data"}, ps["allowedDirs"])
	require.Equal(t, []string{}, ps["blockedPatterns"])

	ssrf := Child(security, "ssrf")
	require.False(t, Bool(ssrf, "enabled"))
	require.Equal(t, []string{"api.example.com"}, ssrf["allowedHosts"])

	cs := Child(security, "commandSanitizer")
	require.Equal(t, "blocklist", cs["mode"])
	require.Equal(t, []string{"ls", "cat", "grep"}, cs["allowedCommands"])

	mw := Child(got, "middleware")
	require.Equal(t, []string{"password", "token"}, Child(mw, "audit")["redactKeys"])
	require.True(t, Bool(Child(mw, "rateLimit"), "enabled"))
	require.False(t, Bool(Child(mw, "circuitBreaker"), "enabled"))
	require.Equal(t, Map{}, Child(mw, "rateLimit")["overrides"])
}
