package normalize

import "net/url"

// DefaultToolSecurity returns the fully-populated tool security shape used
// whenever the remote API has no stored config for a section.
func DefaultToolSecurity() Map {
	return Map{
		"security": Map{
			"pathSandbox": Map{
				"enabled":         true,
				"allowedDirs":     []any{},
				"blockedPatterns": []any{},
			},
			"ssrf": Map{
				"enabled":      true,
				"allowedHosts": []any{},
				"blockedCidrs": []any{},
			},
			"commandSanitizer": Map{
				"enabled":         true,
				"mode":            "blocklist",
				"allowedCommands": []any{},
				"blockedPatterns": []any{},
			},
		},
		"middleware": Map{
			"audit": Map{
				"enabled":    true,
				"redactKeys": []any{},
			},
			"rateLimit": Map{
				"enabled":   true,
				"overrides": Map{},
			},
			"circuitBreaker": Map{"enabled": true},
			"telemetry":      Map{"enabled": true},
		},
	}
}

// MergeToolSecurity overlays a possibly-partial API response onto the
// defaults. The merge is section-level: a section present in the source is
// taken wholesale, an absent or null section is replaced by its default.
// A toolSecurityConfig wrapper key is unwrapped when present.
func MergeToolSecurity(raw Map) Map {
	cfg := unwrap(raw, "toolSecurityConfig")
	return mergeSections(cfg, DefaultToolSecurity(), "security", "middleware")
}

// ToolSecurityFromForm rebuilds the tool security shape from the settings
// form fields, applying the comma-list parsing rules.
func ToolSecurityFromForm(form url.Values) Map {
	mode := form.Get("cs_mode")
	if mode == "" {
		mode = "blocklist"
	}
	return Map{
		"security": Map{
			"pathSandbox": Map{
				"enabled":         formChecked(form, "ps_enabled"),
				"allowedDirs":     SplitList(form.Get("ps_allowedDirs")),
				"blockedPatterns": SplitList(form.Get("ps_blockedPatterns")),
			},
			"ssrf": Map{
				"enabled":      formChecked(form, "ssrf_enabled"),
				"allowedHosts": SplitList(form.Get("ssrf_allowedHosts")),
				"blockedCidrs": SplitList(form.Get("ssrf_blockedCidrs")),
			},
			"commandSanitizer": Map{
				"enabled":         formChecked(form, "cs_enabled"),
				"mode":            mode,
				"allowedCommands": SplitList(form.Get("cs_allowedCommands")),
				"blockedPatterns": SplitList(form.Get("cs_blockedPatterns")),
			},
		},
		"middleware": Map{
			"audit": Map{
				"enabled":    formChecked(form, "audit_enabled"),
				"redactKeys": SplitList(form.Get("audit_redactKeys")),
			},
			"rateLimit": Map{
				"enabled":   formChecked(form, "rl_enabled"),
				"overrides": Map{},
			},
			"circuitBreaker": Map{"enabled": formChecked(form, "cb_enabled")},
			"telemetry":      Map{"enabled": formChecked(form, "tel_enabled")},
		},
	}
}

func unwrap(raw Map, wrapper string) Map {
	if raw == nil {
		return Map{}
	}
	if inner, ok := raw[wrapper].(Map); ok {
		return inner
	}
	return raw
}

func mergeSections(source, defaults Map, sections ...string) Map {
	merged := Map{}
	for _, section := range sections {
		if v, ok := source[section]; ok && v != nil {
			merged[section] = v
			continue
		}
		merged[section] = defaults[section]
	}
	return merged
}

// Checkboxes arrive as presence markers, not values.
func formChecked(form url.Values, key string) bool {
	_, ok := form[key]
	return ok
}
