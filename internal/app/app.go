package app

import (
	"context"
	"fmt"

	"pixelfront/internal/catalog"
	"pixelfront/internal/config"
	"pixelfront/internal/dummyjson"
	"pixelfront/internal/prefs"
	"pixelfront/internal/ui"
)

// Options configure the pixelfront application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pixelfront/prefs.toml
	BaseURL    string // overrides config base_url when set
	Route      string // initial location query string, e.g. "search=phone&page=2"
}

// Run boots the pixelfront TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	client, err := dummyjson.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	store := &catalog.Store{}

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Config:    &cfg,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		Currency:  userPrefs.Currency,
		PrefsPath: opts.PrefsPath,
		Route:     opts.Route,
	}
	return ui.Run(uiOpts)
}
