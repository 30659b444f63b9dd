package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/agenticmail/dashboard/internal/view"
)

func newMessagesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "messages",
		Short: "List the organization message log",
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

			data := environ.client.Call(ctx, http.MethodGet, "/engine/messages?orgId=default", token, nil)
			rows := view.MessagesList(data)
			if opts.output != outputText {
				return writeStructured(opts.output, rows)
			}
			for _, row := range rows {
				fmt.Printf("%-14s %-10s %-8s %-28s -> %-28s %s\n",
					row.TimeAgo, row.Direction.Label, row.Channel.Label,
					row.From, row.To, row.Subject)
			}
			return nil
		},
	}
}

func newAuditCmd(opts *cliOptions) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List audit log events",
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

			if page < 0 {
				page = 0
			}
			path := fmt.Sprintf("/api/audit?limit=25&offset=%d", page*25)
			data := environ.client.Call(ctx, http.MethodGet, path, token, nil)
			v := view.AuditList(data, page)
			if opts.output != outputText {
				return writeStructured(opts.output, v)
			}
			for _, e := range v.Events {
				fmt.Printf("%-24s %-20s %-24s %-20s %s\n",
					e.Time, e.Actor, e.Action, e.Resource, e.IP)
			}
			fmt.Printf("page %d, %d event(s) total\n", v.Page, v.Total)
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 0, "page number (25 events per page)")
	return cmd
}

func newUsersCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List team members",
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

			data := environ.client.Call(ctx, http.MethodGet, "/api/users", token, nil)
			rows := view.UsersList(data)
			if opts.output != outputText {
				return writeStructured(opts.output, rows)
			}
			for _, row := range rows {
				fmt.Printf("%-24s %-32s %-8s last login %s\n",
					row.Name, row.Email, row.Role.Label, row.LastLogin)
			}
			return nil
		},
	}
}
