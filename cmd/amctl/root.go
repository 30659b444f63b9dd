package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/agenticmail/dashboard/internal/apiclient"
	"github.com/agenticmail/dashboard/internal/config"
	"github.com/agenticmail/dashboard/internal/session"
)

type cliOptions struct {
	configPath string
	baseURL    string
	output     string
	verbose    bool
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := cliOptions{
		output: outputText,
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "amctl",
		Short:         "CLI client for the AgenticMail management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := validateOutput(opts.output); err != nil {
				return err
			}
			if opts.verbose {
				logger, err := zap.NewProduction()
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				opts.logger = logger
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (YAML)")
	root.PersistentFlags().StringVar(&opts.baseURL, "api", "", "management API base URL (overrides config)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", opts.output, "output format: text, json, or yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log request failures")

	root.AddCommand(
		newLoginCmd(&opts),
		newLogoutCmd(&opts),
		newWhoamiCmd(&opts),
		newAgentsCmd(&opts),
		newSettingsCmd(&opts),
		newMessagesCmd(&opts),
		newAuditCmd(&opts),
		newUsersCmd(&opts),
	)
	return root
}

// cmdContext returns the command context wired to SIGINT/SIGTERM.
func cmdContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
}

type env struct {
	cfg    config.Config
	store  *session.Store
	client *apiclient.Client
}

// openEnv loads config and the session store and builds the API client.
// Callers must Close the returned env.
func openEnv(opts *cliOptions) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.baseURL != "" {
		cfg.API.BaseURL = opts.baseURL
	}

	store, err := session.Open(cfg.Session.Path)
	if err != nil {
		return nil, err
	}

	client := apiclient.New(cfg.API.BaseURL,
		apiclient.WithTimeout(cfg.API.Timeout()),
		apiclient.WithLogger(opts.logger))

	return &env{cfg: cfg, store: store, client: client}, nil
}

func (e *env) Close() {
	_ = e.store.Close()
}

// token returns the stored bearer token, or an exit error telling the user
// to log in.
func (e *env) token() (string, error) {
	current, err := e.store.Current()
	if errors.Is(err, session.ErrNotLoggedIn) {
		return "", exitWithMessage(1, "not logged in, run `amctl login` first")
	}
	if err != nil {
		return "", err
	}
	return current.Token, nil
}
