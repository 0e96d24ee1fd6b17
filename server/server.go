// Package server wires the dashboard backend: an fx-managed HTTP server over
// the immutable feature tables loaded from the snapshot store.
package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mager/libex/config"
	"github.com/mager/libex/dashboard"
	albumsHandler "github.com/mager/libex/handler/albums"
	artistsHandler "github.com/mager/libex/handler/artists"
	"github.com/mager/libex/handler/health"
	"github.com/mager/libex/handler/home"
	"github.com/mager/libex/handler/live"
	"github.com/mager/libex/libex"
	"github.com/mager/libex/logger"
	"github.com/mager/libex/snapshot"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
}

// New assembles the dashboard application.
func New() *fx.App {
	return fx.New(
		fx.Provide(NewHTTPServer,
			config.Options,
			logger.Options,
			snapshot.Options,
			ProvideTables,
		),
		fx.Invoke(func(*http.Server) {}),
	)
}

// ProvideTables loads both feature tables and prepares them for rendering.
// The tables stay immutable for the server's lifetime, so handlers share
// them without locking.
func ProvideTables(log *zap.SugaredLogger, store *snapshot.Store) (*dashboard.Tables, error) {
	var artists []libex.ArtistFeature
	if err := store.Load(snapshot.ArtistFeatures, &artists); err != nil {
		return nil, err
	}

	var albums []libex.AlbumFeature
	if err := store.Load(snapshot.AlbumFeatures, &albums); err != nil {
		return nil, err
	}

	tables := dashboard.Prepare(artists, albums)
	log.Infow("Loaded feature tables",
		"artists", len(tables.Artists),
		"albums", len(tables.Albums),
		"clusters", len(tables.Clusters))

	return tables, nil
}

func NewHTTPServer(
	lc fx.Lifecycle,
	logger *zap.SugaredLogger,
	cfg config.Config,
	tables *dashboard.Tables,
) *http.Server {
	r := mux.NewRouter()

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: r}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Infof("Starting HTTP server at %s", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	// Define handlers
	healthHandler := health.NewHealthHandler(logger, tables)
	r.Handle(healthHandler.Pattern(), healthHandler)

	artistsHandler := artistsHandler.NewGetArtistsHandler(logger, tables)
	r.Handle(artistsHandler.Pattern(), artistsHandler)

	albumsHandler := albumsHandler.NewGetAlbumsHandler(logger, tables)
	r.Handle(albumsHandler.Pattern(), albumsHandler)

	liveHandler := live.NewLiveHandler(logger, tables)
	r.Handle(liveHandler.Pattern(), liveHandler)

	homeHandler := home.NewHomeHandler(logger, tables)
	r.Handle(homeHandler.Pattern(), homeHandler)

	return srv
}
