package main

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/agenticmail/dashboard/internal/view"
)

func newAgentsCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Inspect the organization's AI agents",
	}
	cmd.AddCommand(newAgentsListCmd(opts), newAgentsShowCmd(opts))
	return cmd
}

func newAgentsListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List agents",
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

			data := environ.client.Call(ctx, http.MethodGet, "/api/agents", token, nil)
			rows := view.AgentsList(data)
			if opts.output != outputText {
				return writeStructured(opts.output, rows)
			}
			for _, row := range rows {
				fmt.Printf("%-12s %-24s %-32s %-8s %s\n",
					row.ID, row.Name, row.Email, row.Role, row.Status.Label)
			}
			return nil
		},
	}
}

func newAgentsShowCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one agent with activity and tool security",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			id := url.PathEscape(args[0])
			agent := environ.client.Call(ctx, http.MethodGet, "/api/agents/"+id, token, nil)
			toolSec := environ.client.Call(ctx, http.MethodGet, "/engine/agents/"+id+"/tool-security", token, nil)
			events := environ.client.Call(ctx, http.MethodGet, "/activity/events?agentId="+id+"&limit=50", token, nil)
			toolCalls := environ.client.Call(ctx, http.MethodGet, "/activity/tool-calls?agentId="+id+"&limit=50", token, nil)
			journal := environ.client.Call(ctx, http.MethodGet, "/journal?agentId="+id+"&orgId=default&limit=50", token, nil)

			detail := view.AgentDetail(agent, toolSec, events, toolCalls, journal)
			if opts.output != outputText {
				return writeStructured(opts.output, detail)
			}

			fmt.Printf("%s  %s <%s>\n", detail.ID, detail.Name, detail.Email)
			fmt.Printf("status=%s role=%s model=%s\n",
				detail.Status.Label, detail.Role.Label, detail.Model)
			if detail.Permissions != nil {
				fmt.Printf("permissions: %s (max risk %s, limits %s)\n",
					detail.Permissions.ProfileName,
					detail.Permissions.MaxRiskLevel.Label,
					detail.Permissions.RateLimits)
			}
			if detail.ToolSecurity != nil {
				fmt.Printf("tool security: sandbox=%t ssrf=%t sanitizer=%t(%s) audit=%t\n",
					detail.ToolSecurity.PathSandbox,
					detail.ToolSecurity.SSRF,
					detail.ToolSecurity.CommandSanitizer,
					detail.ToolSecurity.CommandMode,
					detail.ToolSecurity.Audit)
			}
			fmt.Printf("events=%d toolCalls=%d journal=%d\n",
				len(detail.Events), len(detail.ToolCalls), len(detail.Journal))
			return nil
		},
	}
}
