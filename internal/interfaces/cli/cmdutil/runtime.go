// Package cmdutil holds what every portal CLI command shares: the loaded
// configuration, the wired use cases and the file-backed session holder.
package cmdutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"skylink/internal/domain/session"
	"skylink/internal/infrastructure/backend"
	"skylink/internal/infrastructure/config"
	sessionstore "skylink/internal/infrastructure/session"
	httpapi "skylink/internal/interfaces/http"
	apperrors "skylink/internal/shared/errors"
	"skylink/internal/shared/logger"
)

// SessionKey names the CLI entry inside the session file.
const SessionKey = "cli"

// Options are the persistent flags of the root command.
type Options struct {
	Env     string
	Verbose bool
}

// Runtime is built once per command invocation.
type Runtime struct {
	Config   *config.Config
	Log      logger.Interface
	UseCases *httpapi.UseCases
	Holder   *session.Holder
	Store    *sessionstore.FileStore
	Out      io.Writer
	ErrOut   io.Writer
}

// NewRuntime loads configuration and wires the use cases against a file
// session store.
func NewRuntime(cmd *cobra.Command, opts *Options) (*Runtime, error) {
	cfg, err := config.Load(opts.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, opts.Verbose); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if !opts.Verbose {
		logger.SetLevel(slog.LevelWarn)
	}
	log := logger.NewLogger().Named("cli")

	store, err := sessionstore.NewFileStore(cfg.Session.FilePath)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Config: cfg,
		Log:    log,
		Store:  store,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}

	client := backend.NewClient(cfg.Backend.GetBaseURL(), backend.WithTimeout(cfg.Backend.GetTimeout()))
	rt.UseCases = httpapi.NewUseCases(httpapi.UseCaseDeps{
		Client:      client,
		RecentLimit: cfg.Analytics.RecentLimit,
		Logger:      log,
	})
	rt.Holder = session.NewHolder(store, SessionKey, rt.onInvalidate)
	return rt, nil
}

func (rt *Runtime) onInvalidate(_ context.Context, ended session.Session, reason error) {
	rt.Log.Debugw("session invalidated", "email", ended.Email, "reason", reason)
	fmt.Fprintln(rt.ErrOut, apperrors.MsgSessionExpired)
}

// Exec builds a Runtime and runs fn with it. Errors come back in the
// portal's user-facing wording.
func Exec(opts *Options, fn func(ctx context.Context, rt *Runtime, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		rt, err := NewRuntime(cmd, opts)
		if err != nil {
			return err
		}
		if err := fn(cmd.Context(), rt, args); err != nil {
			return UserError(err)
		}
		return nil
	}
}

// UserError keeps portal errors readable and hides internal ones.
func UserError(err error) error {
	if apperrors.GetAppError(err) == nil {
		return err
	}
	return fmt.Errorf("%s", apperrors.UserMessage(err))
}
