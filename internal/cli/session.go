package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/darkslide/internal/colour"
	"github.com/jmylchreest/darkslide/internal/engine"
	"github.com/jmylchreest/darkslide/internal/host"
	"github.com/jmylchreest/darkslide/internal/settings"
)

// session is everything a vault-backed command needs.
type session struct {
	logger    hclog.Logger
	vault     *host.Vault
	host      *host.Host
	store     *settings.Store
	persister *settings.Persister
	engine    *engine.Engine
}

// openSession loads the vault's settings and wires the engine to it.
// The caller must close the session to flush pending settings writes.
func openSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	logger := opts.logger(cmd)

	if opts.background != "" {
		if _, ok := colour.ParseColour(opts.background); !ok {
			return nil, fmt.Errorf("invalid --background %q: expected #RGB, #RRGGBB, rgb() or rgba()", opts.background)
		}
	}

	info, err := os.Stat(opts.vault)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault %s is not a directory", opts.vault)
	}

	v := host.NewVault(opts.vault, opts.configDir, logger)
	v.Background = opts.background

	s, err := settings.Load(v.SettingsPath())
	if err != nil {
		if !errors.Is(err, settings.ErrMalformed) {
			return nil, err
		}
		logger.Warn("using defaults for unreadable settings", "error", err)
	}
	logger.Debug("settings loaded", "path", v.SettingsPath())

	h := host.New(v, logger)
	store := settings.NewStore(s)
	persister := settings.NewPersister(v.SettingsPath(), logger)

	return &session{
		logger:    logger,
		vault:     v,
		host:      h,
		store:     store,
		persister: persister,
		engine: engine.New(store, h,
			engine.WithSaver(persister),
			engine.WithLogger(logger)),
	}, nil
}

// close flushes pending writes and reports a snippet write failure.
func (s *session) close() error {
	s.persister.Close()
	if err := s.host.Err(); err != nil {
		return err
	}
	return nil
}
