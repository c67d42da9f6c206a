package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/roadnet/mapgen"
	"github.com/katalvlaran/roadnet/server"
)

func serveCmd(fs *flag.FlagSet) func(context.Context, *env) error {
	addr := fs.String("addr", ":8080", "Listen address.")

	return func(ctx context.Context, e *env) error {
		if err := e.cfg.Validate(); err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		world, err := e.cfg.Terrain.World()
		if err != nil {
			return err
		}
		splat, err := e.cfg.Splat()
		if err != nil {
			return err
		}
		gen, err := mapgen.NewGenerator(world.Ground,
			mapgen.WithPainter(splat),
			mapgen.WithBuildingPlacer(mapgen.NewCatalogPlacer(nil, time.Now().UnixNano())),
			mapgen.WithLogger(e.logger),
		)
		if err != nil {
			return err
		}

		router := mux.NewRouter()
		server.NewHandler(gen, world, e.cfg.Map, e.cfg.Search.Options(), e.logger).RegisterRoutes(router)
		srv := &http.Server{Addr: *addr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

		errc := make(chan error, 1)
		go func() { errc <- srv.ListenAndServe() }()
		e.logger.Info("server listening", "addr", *addr)

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		e.logger.Info("server stopped")
		return nil
	}
}
