package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"aniresfr/internal/app"
)

// errAttemptFailed marks a failure already shown to the user.
var errAttemptFailed = errors.New("attempt failed")

var (
	cfg    app.Config
	appCtx *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, errAttemptFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// run executes one command line and releases the wiring afterwards, whether
// or not the command failed.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	appCtx = nil
	root := newRootCmd(stdout, stderr)
	root.SetIn(stdin)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if appCtx != nil {
		if cerr := appCtx.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	loaded, loadErr := app.LoadConfig()
	cfg = loaded

	root := &cobra.Command{
		Use:           "aniresfr",
		Short:         "Sign in or register an organisation with the aniresfr service",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			w, err := app.NewWire(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "auth service base URL")
	f.StringVar(&cfg.AppURL, "app-url", cfg.AppURL, "application root opened after success")
	f.StringVar(&cfg.Home, "home", cfg.Home, "config dir (default ~/.aniresfr)")
	f.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "where the session token is kept: file or redis")
	f.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "redis URL for the redis session backend")
	f.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout (0 = none)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	f.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")
	f.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this file on exit")

	root.AddCommand(loginCmd(), registerCmd(), logoutCmd(), statusCmd())
	return root
}
