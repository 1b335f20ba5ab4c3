package main

import (
	"context"
	"errors"
	"github.com/ATenderholt/rainbow-mailer/internal/settings"
	"github.com/go-chi/chi/v5"
	"net"
	"net/http"
	"time"
)

type App struct {
	cfg    *settings.Config
	server *http.Server
}

func NewApp(cfg *settings.Config, mux *chi.Mux) App {
	return App{
		cfg: cfg,
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (app App) Start() error {
	listener, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		return err
	}

	logger.Infof("Listening for notifications on http://%s/events", listener.Addr())

	go func() {
		err := app.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Server stopped unexpectedly: %v", err)
		}
	}()

	return nil
}

func (app App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.server.Shutdown(ctx)
}
