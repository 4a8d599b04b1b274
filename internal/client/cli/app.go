// Package cli implements the interactive terminal client: a small REPL
// over the auth, favorites, and catalog services.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/teyvatdex/teyvatdex/internal/client/api"
	"github.com/teyvatdex/teyvatdex/internal/client/cache"
	"github.com/teyvatdex/teyvatdex/internal/client/config"
	"github.com/teyvatdex/teyvatdex/internal/client/services"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config          *config.Config
	authService     services.AuthService
	favoriteService services.FavoriteService
	catalogService  services.CatalogService
	userName        string
	Mode            Mode
	reader          *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := cache.Open(ctx, c.CacheFile)
	if err != nil {
		log.Printf("error initializing session cache: %s", err.Error())
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerURL, c.RequestTimeout)

	as := services.NewAuthService(apiClient, db)
	fs := services.NewFavoriteService(apiClient, db, as)
	cs := services.NewCatalogService(apiClient)

	app := &App{
		config:          c,
		authService:     as,
		favoriteService: fs,
		catalogService:  cs,
		Mode:            ModeOnline,
		reader:          bufio.NewReader(os.Stdin),
	}

	// A cached session survives restarts.
	if session, err := as.Session(ctx); err == nil {
		app.userName = session.Username
	}

	return app, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// StartOnlineStatusWatcher probes the server periodically and flips the
// mode indicator shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
