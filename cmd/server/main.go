package main

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/unicampus/portal/auth"
	"github.com/unicampus/portal/config"
	"github.com/unicampus/portal/database"
	"github.com/unicampus/portal/metrics"
	"github.com/unicampus/portal/notify"
	"github.com/unicampus/portal/routes"
	"github.com/unicampus/portal/session"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.AppEnv)
	defer func() { _ = log.Sync() }()

	st, err := database.OpenStore(cfg)
	if err != nil {
		log.Fatal("open store failed", zap.Error(err))
	}
	log.Info("store ready", zap.String("backend", cfg.StorageBackend))

	kv, err := session.NewFileKV(filepath.Join(cfg.DataDir, "session"))
	if err != nil {
		log.Fatal("open session store failed", zap.Error(err))
	}

	strategy, err := auth.NewStrategy(cfg.AuthMode, st, log)
	if err != nil {
		log.Fatal("auth setup failed", zap.Error(err))
	}
	log.Info("auth ready", zap.String("mode", cfg.AuthMode))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware())

	routes.Register(e, routes.Deps{
		Cfg:      cfg,
		Log:      log,
		Store:    st,
		Sessions: session.NewManager(kv),
		Strategy: strategy,
		Notifier: notify.NewNotifier(st, log),
	})

	addr := ":" + cfg.AppPort
	log.Info("server listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
