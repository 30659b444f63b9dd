package view

import (
	"fmt"
	"strings"

	"github.com/agenticmail/dashboard/internal/normalize"
)

// GeneralSettings is the organization block of the settings page.
type GeneralSettings struct {
	Name         string
	Domain       string
	Subdomain    string
	PrimaryColor string
	Plan         normalize.Badge
}

// RetentionSettings is the data retention block.
type RetentionSettings struct {
	Enabled    bool
	RetainDays int
}

// SettingsView is the full settings page model.
type SettingsView struct {
	General      GeneralSettings
	Retention    RetentionSettings
	ToolSecurity ToolSecurityForm
	Firewall     FirewallForm
	Pricing      PricingView
}

// Settings shapes the settings page from its four API responses.
func Settings(settings, retention, toolSec, firewall, pricing normalize.Map) SettingsView {
	primaryColor := normalize.Str(settings, "primaryColor")
	if primaryColor == "" {
		primaryColor = "#e84393"
	}
	plan := normalize.Str(settings, "plan")
	if plan == "" {
		plan = "free"
	}
	retainDays := normalize.Int(retention, "retainDays")
	if retainDays == 0 {
		retainDays = 365
	}

	return SettingsView{
		General: GeneralSettings{
			Name:         normalize.Str(settings, "name"),
			Domain:       normalize.Str(settings, "domain"),
			Subdomain:    normalize.Str(settings, "subdomain"),
			PrimaryColor: primaryColor,
			Plan:         normalize.StatusBadge(strings.ToUpper(plan)),
		},
		Retention: RetentionSettings{
			Enabled:    normalize.Bool(retention, "enabled"),
			RetainDays: retainDays,
		},
		ToolSecurity: ToolSecuritySettings(toolSec),
		Firewall:     FirewallSettings(firewall),
		Pricing:      Pricing(pricing),
	}
}

// ToolSecurityForm is the tool security settings block, flattened into the
// values the form controls display.
type ToolSecurityForm struct {
	PathSandboxEnabled         bool
	PathSandboxAllowedDirs     string
	PathSandboxBlockedPatterns string

	SSRFEnabled      bool
	SSRFAllowedHosts string
	SSRFBlockedCIDRs string

	SanitizerEnabled         bool
	SanitizerMode            string
	SanitizerAllowedCommands string
	SanitizerBlockedPatterns string

	AuditEnabled     bool
	AuditRedactKeys  string
	RateLimitEnabled bool
	BreakerEnabled   bool
	TelemetryEnabled bool
}

// ToolSecuritySettings shapes the organization tool security response into
// form values. Missing or malformed input renders the defaults.
func ToolSecuritySettings(data normalize.Map) ToolSecurityForm {
	merged := normalize.MergeToolSecurity(data)
	security := normalize.Child(merged, "security")
	mw := normalize.Child(merged, "middleware")

	ps := normalize.Child(security, "pathSandbox")
	ssrf := normalize.Child(security, "ssrf")
	cs := normalize.Child(security, "commandSanitizer")
	audit := normalize.Child(mw, "audit")

	return ToolSecurityForm{
		PathSandboxEnabled:         normalize.Bool(ps, "enabled"),
		PathSandboxAllowedDirs:     normalize.JoinList(ps, "allowedDirs"),
		PathSandboxBlockedPatterns: normalize.JoinList(ps, "blockedPatterns"),

		SSRFEnabled:      normalize.Bool(ssrf, "enabled"),
		SSRFAllowedHosts: normalize.JoinList(ssrf, "allowedHosts"),
		SSRFBlockedCIDRs: normalize.JoinList(ssrf, "blockedCidrs"),

		SanitizerEnabled:         normalize.Bool(cs, "enabled"),
		SanitizerMode:            normalize.Str(cs, "mode"),
		SanitizerAllowedCommands: normalize.JoinList(cs, "allowedCommands"),
		SanitizerBlockedPatterns: normalize.JoinList(cs, "blockedPatterns"),

		AuditEnabled:     normalize.Bool(audit, "enabled"),
		AuditRedactKeys:  normalize.JoinList(audit, "redactKeys"),
		RateLimitEnabled: normalize.Bool(normalize.Child(mw, "rateLimit"), "enabled"),
		BreakerEnabled:   normalize.Bool(normalize.Child(mw, "circuitBreaker"), "enabled"),
		TelemetryEnabled: normalize.Bool(normalize.Child(mw, "telemetry"), "enabled"),
	}
}

// FirewallForm is the network & firewall settings block, flattened into
// form values.
type FirewallForm struct {
	IPAccessEnabled bool
	IPMode          string
	IPAllowlist     string
	IPBlocklist     string
	IPBypassPaths   string

	EgressEnabled      bool
	EgressMode         string
	EgressAllowedHosts string
	EgressBlockedHosts string
	EgressAllowedPorts string
	EgressBlockedPorts string

	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string

	TrustedProxiesEnabled bool
	TrustedProxyIPs       string

	CORSOrigins          string
	RateLimitEnabled     bool
	RequestsPerMinute    int
	RateLimitSkipPaths   string
	HTTPSEnforced        bool
	HTTPSExcludePaths    string
	HSTS                 bool
	HSTSMaxAge           int
	XFrameOptions        string
	XContentTypeOptions  bool
	ReferrerPolicy       string
	PermissionsPolicy    string
}

// FirewallSettings shapes the firewall response into form values.
func FirewallSettings(data normalize.Map) FirewallForm {
	merged := normalize.MergeFirewall(data)
	ipAccess := normalize.Child(merged, "ipAccess")
	egress := normalize.Child(merged, "egress")
	proxy := normalize.Child(merged, "proxy")
	trusted := normalize.Child(merged, "trustedProxies")
	network := normalize.Child(merged, "network")
	rateLimit := normalize.Child(network, "rateLimit")
	enforce := normalize.Child(network, "httpsEnforcement")
	headers := normalize.Child(network, "securityHeaders")

	return FirewallForm{
		IPAccessEnabled: normalize.Bool(ipAccess, "enabled"),
		IPMode:          normalize.Str(ipAccess, "mode"),
		IPAllowlist:     normalize.JoinList(ipAccess, "allowlist"),
		IPBlocklist:     normalize.JoinList(ipAccess, "blocklist"),
		IPBypassPaths:   normalize.JoinList(ipAccess, "bypassPaths"),

		EgressEnabled:      normalize.Bool(egress, "enabled"),
		EgressMode:         normalize.Str(egress, "mode"),
		EgressAllowedHosts: normalize.JoinList(egress, "allowedHosts"),
		EgressBlockedHosts: normalize.JoinList(egress, "blockedHosts"),
		EgressAllowedPorts: normalize.JoinList(egress, "allowedPorts"),
		EgressBlockedPorts: normalize.JoinList(egress, "blockedPorts"),

		HTTPProxy:  normalize.Str(proxy, "httpProxy"),
		HTTPSProxy: normalize.Str(proxy, "httpsProxy"),
		NoProxy:    normalize.JoinList(proxy, "noProxy"),

		TrustedProxiesEnabled: normalize.Bool(trusted, "enabled"),
		TrustedProxyIPs:       normalize.JoinList(trusted, "ips"),

		CORSOrigins:         normalize.JoinList(network, "corsOrigins"),
		RateLimitEnabled:    normalize.Bool(rateLimit, "enabled"),
		RequestsPerMinute:   normalize.Int(rateLimit, "requestsPerMinute"),
		RateLimitSkipPaths:  normalize.JoinList(rateLimit, "skipPaths"),
		HTTPSEnforced:       normalize.Bool(enforce, "enabled"),
		HTTPSExcludePaths:   normalize.JoinList(enforce, "excludePaths"),
		HSTS:                normalize.Bool(headers, "hsts"),
		HSTSMaxAge:          normalize.Int(headers, "hstsMaxAge"),
		XFrameOptions:       normalize.Str(headers, "xFrameOptions"),
		XContentTypeOptions: normalize.Bool(headers, "xContentTypeOptions"),
		ReferrerPolicy:      normalize.Str(headers, "referrerPolicy"),
		PermissionsPolicy:   normalize.Str(headers, "permissionsPolicy"),
	}
}

// ModelPriceRow is one model's pricing line.
type ModelPriceRow struct {
	ModelID       string
	DisplayName   string
	InputCost     string
	OutputCost    string
	ContextWindow int
}

// ProviderPricing groups model prices under one provider.
type ProviderPricing struct {
	Provider string
	Label    string
	Models   []ModelPriceRow
}

// PricingView is the model pricing block.
type PricingView struct {
	Currency  string
	Providers []ProviderPricing
}

var providerLabels = map[string]string{
	"openai":     "OpenAI",
	"anthropic":  "Anthropic",
	"google":     "Google",
	"mistral":    "Mistral",
	"openrouter": "OpenRouter",
	"ollama":     "Ollama",
}

// ProviderLabel returns the display label for a model provider.
func ProviderLabel(provider string) string {
	if label, ok := providerLabels[strings.ToLower(provider)]; ok {
		return label
	}
	if provider == "" || provider == "unknown" {
		return "Unknown"
	}
	return provider
}

// Pricing shapes the model pricing response, grouping models by provider
// in first-seen order.
func Pricing(data normalize.Map) PricingView {
	merged := normalize.MergeModelPricing(data)
	currency := normalize.Str(merged, "currency")

	order := []string{}
	grouped := map[string][]ModelPriceRow{}
	for _, m := range normalize.MapItems(normalize.List(merged, "models")) {
		provider := normalize.Str(m, "provider")
		if provider == "" {
			provider = "unknown"
		}
		if _, seen := grouped[provider]; !seen {
			order = append(order, provider)
		}
		grouped[provider] = append(grouped[provider], ModelPriceRow{
			ModelID:       normalize.Str(m, "modelId"),
			DisplayName:   normalize.Str(m, "displayName"),
			InputCost:     costLabel(m, "inputCostPerMillion"),
			OutputCost:    costLabel(m, "outputCostPerMillion"),
			ContextWindow: normalize.Int(m, "contextWindow"),
		})
	}

	providers := make([]ProviderPricing, 0, len(order))
	for _, p := range order {
		providers = append(providers, ProviderPricing{
			Provider: p,
			Label:    ProviderLabel(p),
			Models:   grouped[p],
		})
	}
	return PricingView{Currency: currency, Providers: providers}
}

func costLabel(m normalize.Map, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return "-"
	}
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("$%.2f", f)
	}
	return fmt.Sprintf("%v", v)
}
