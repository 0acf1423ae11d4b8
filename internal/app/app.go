package app

import (
	"context"
	"fmt"

	"github.com/dkozyrev/reeler/internal/config"
	"github.com/dkozyrev/reeler/internal/filmorate"
	"github.com/dkozyrev/reeler/internal/prefs"
	"github.com/dkozyrev/reeler/internal/state"
	"github.com/dkozyrev/reeler/internal/syncctl"
	"github.com/dkozyrev/reeler/internal/ui"
)

// Options configure the Reeler application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/reeler/prefs.toml
	BaseURL    string // overrides the configured service address
}

// Run boots the Reeler TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := filmorate.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("init filmorate client: %w", err)
	}

	store := &state.Store{}
	sel := state.NewSelection()
	ctrl := syncctl.New(client, store)

	// Reference data is small and static; fetching it up front lets the
	// film form render genre and MPA pickers immediately. A failure here is
	// not fatal: the service may come up after the UI does.
	_ = ctrl.LoadReference(ctx)

	return ui.Run(ui.Options{
		Context:    ctx,
		Controller: ctrl,
		Store:      store,
		Selection:  sel,
		Config:     cfg,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
}
