package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/agenticmail/dashboard/internal/normalize"
)

func newLoginCmd(opts *cliOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the management API and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			environ, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer environ.Close()

			result := environ.client.Call(ctx, http.MethodPost, "/auth/login", "", normalize.Map{
				"email":    email,
				"password": password,
			})
			token := normalize.Str(result, "token")
			if token == "" {
				msg := normalize.Str(result, "error")
				if msg == "" {
					msg = "login failed"
				}
				return exitWithMessage(1, msg)
			}

			user := normalize.Child(result, "user")
			if err := environ.store.Save(token, user); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", normalize.FirstStr(user, "name", "email"))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(_ *cobra.Command, _ []string) error {
			environ, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer environ.Close()

			if err := environ.store.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(_ *cobra.Command, _ []string) error {
			environ, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer environ.Close()

			current, err := environ.store.Current()
			if err != nil {
				return exitWithMessage(1, "not logged in")
			}
			if opts.output != outputText {
				return writeStructured(opts.output, current.User)
			}
			fmt.Printf("%s <%s> (%s)\n",
				normalize.Str(current.User, "name"),
				normalize.Str(current.User, "email"),
				normalize.Str(current.User, "role"))
			return nil
		},
	}
}
