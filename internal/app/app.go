// Package app wires the configuration, the ferry service client, the
// modules and the gateway session together and owns process lifecycle.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/bot"
	"github.com/sown/kmibot/internal/config"
	"github.com/sown/kmibot/internal/ferryapi"
	"github.com/sown/kmibot/internal/middleware"
	"github.com/sown/kmibot/internal/module/ferry"
	"github.com/sown/kmibot/internal/module/licence"
	"github.com/sown/kmibot/internal/module/pub"
	"github.com/sown/kmibot/internal/router"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	bot        *bot.Bot
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"kmibot",
		cfg.Server.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err := app.initBot(); err != nil {
		return nil, fmt.Errorf("init bot: %w", err)
	}

	app.initServer()

	return app, nil
}

func (a *App) initBot() error {
	b, err := bot.New(a.cfg, a.log)
	if err != nil {
		return err
	}

	api := ferryapi.New(a.cfg.Ferry.APIURL, a.cfg.Ferry.APIKey, a.log)
	session := b.Session()

	b.SetModules(
		pub.New(a.cfg, a.log, api, api, session, session, session, session),
		ferry.New(a.cfg, a.log, api, api, api, session, session, session, session, session),
		licence.New(a.cfg, a.log, session, session),
	)

	a.bot = b
	return nil
}

func (a *App) initServer() {
	r := router.InitRouter(
		a.cfg.Server.Mode,
		a.bot,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.bot.Open(ctx); err != nil {
		return fmt.Errorf("open bot: %w", err)
	}
	a.log.LogAttrs(ctx, logger.InfoLevel, "bot connected",
		logger.String("guild", a.cfg.Discord.GuildID),
	)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.bot.Close(); err != nil {
		return fmt.Errorf("close bot: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "gateway session closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
