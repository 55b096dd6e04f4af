package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/darkslide/internal/host"
)

func newApplyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Write the overlay snippet for the active theme",
		Long: `Read the active theme and its stored brightness and contrast, sample the
theme's background colour and write the overlay snippet once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			st := s.engine.Start()
			s.logger.Info("snippet written", "path", s.vault.SnippetPath())

			preview, err := opts.showPreview(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return printState(cmd.OutOrStdout(), st, opts.jsonOutput, preview)
		},
	}
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-apply the overlay whenever the theme changes",
		Long: `Apply the overlay for the active theme, then watch the vault's appearance
settings and re-apply whenever a different theme becomes active.

On exit the snippet is reset to a no-op unless --keep is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			w, err := host.NewWatcher(s.vault, s.logger)
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st := s.engine.Start()
			s.logger.Info("watching", "vault", s.vault.Root, "theme", st.Theme)

			return watchLoop(ctx, s, w.Notifications(), keep)
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "leave the last overlay in place on exit")
	return cmd
}

// watchLoop handles theme notifications on one goroutine until ctx ends or
// notifications close.
func watchLoop(ctx context.Context, s *session, notifications <-chan struct{}, keep bool) error {
	defer func() {
		if !keep {
			s.engine.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("watch stopped", "reason", ctx.Err())
			return nil
		case _, ok := <-notifications:
			if !ok {
				return nil
			}
			s.engine.HandleThemeChanged()
		}
	}
}
