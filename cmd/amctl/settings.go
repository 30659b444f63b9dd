package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/agenticmail/dashboard/internal/view"
)

func newSettingsCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect organization settings",
	}
	cmd.AddCommand(
		newSettingsShowCmd(opts),
		newSettingsToolSecurityCmd(opts),
		newSettingsFirewallCmd(opts),
	)
	return cmd
}

func newSettingsShowCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the full settings page model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			environ, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer environ.Close()

			token, err := environ.token()
			if err != nil {
				return err
			}

			settings := environ.client.Call(ctx, http.MethodGet, "/api/settings", token, nil)
			retention := environ.client.Call(ctx, http.MethodGet, "/api/retention", token, nil)
			toolSec := environ.client.Call(ctx, http.MethodGet, "/api/settings/tool-security", token, nil)
			firewall := environ.client.Call(ctx, http.MethodGet, "/api/settings/firewall", token, nil)
			pricing := environ.client.Call(ctx, http.MethodGet, "/api/settings/model-pricing", token, nil)

			v := view.Settings(settings, retention, toolSec, firewall, pricing)
			if opts.output != outputText {
				return writeStructured(opts.output, v)
			}

			fmt.Printf("%s (%s) plan=%s color=%s\n",
				v.General.Name, v.General.Domain, v.General.Plan.Label, v.General.PrimaryColor)
			fmt.Printf("retention: enabled=%t retainDays=%d\n",
				v.Retention.Enabled, v.Retention.RetainDays)
			fmt.Printf("pricing: currency=%s providers=%d\n",
				v.Pricing.Currency, len(v.Pricing.Providers))
			for _, p := range v.Pricing.Providers {
				fmt.Printf("  %s: %d model(s)\n", p.Label, len(p.Models))
			}
			return nil
		},
	}
}

func newSettingsToolSecurityCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tool-security",
		Short: "Show the merged tool security configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			environ, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer environ.Close()

			token, err := environ.token()
			if err != nil {
				return err
			}

			data := environ.client.Call(ctx, http.MethodGet, "/api/settings/tool-security", token, nil)
			form := view.ToolSecuritySettings(data)
			if opts.output != outputText {
				return writeStructured(opts.output, form)
			}

			fmt.Printf("path sandbox: enabled=%t allowedDirs=[%s] blockedPatterns=[%s]\n",
				form.PathSandboxEnabled, form.PathSandboxAllowedDirs, form.PathSandboxBlockedPatterns)
			fmt.Printf("ssrf guard:   enabled=%t allowedHosts=[%s] blockedCidrs=[%s]\n",
				form.SSRFEnabled, form.SSRFAllowedHosts, form.SSRFBlockedCIDRs)
			fmt.Printf("sanitizer:    enabled=%t mode=%s\n", form.SanitizerEnabled, form.SanitizerMode)
			fmt.Printf("middleware:   audit=%t rateLimit=%t circuitBreaker=%t telemetry=%t\n",
				form.AuditEnabled, form.RateLimitEnabled, form.BreakerEnabled, form.TelemetryEnabled)
			return nil
		},
	}
}

func newSettingsFirewallCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "firewall",
		Short: "Show the merged network & firewall configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			environ, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer environ.Close()

			token, err := environ.token()
			if err != nil {
				return err
			}

			data := environ.client.Call(ctx, http.MethodGet, "/api/settings/firewall", token, nil)
			form := view.FirewallSettings(data)
			if opts.output != outputText {
				return writeStructured(opts.output, form)
			}

			fmt.Printf("ip access: enabled=%t mode=%s allow=[%s] block=[%s]\n",
				form.IPAccessEnabled, form.IPMode, form.IPAllowlist, form.IPBlocklist)
			fmt.Printf("egress:    enabled=%t mode=%s hosts=[%s] ports=[%s]\n",
				form.EgressEnabled, form.EgressMode, form.EgressAllowedHosts, form.EgressAllowedPorts)
			fmt.Printf("proxy:     http=%s https=%s noProxy=[%s]\n",
				form.HTTPProxy, form.HTTPSProxy, form.NoProxy)
			fmt.Printf("network:   rateLimit=%t rpm=%d hsts=%t maxAge=%d xfo=%s\n",
				form.RateLimitEnabled, form.RequestsPerMinute, form.HSTS, form.HSTSMaxAge, form.XFrameOptions)
			return nil
		},
	}
}
