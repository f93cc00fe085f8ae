package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"solar-inspector/config"
	"solar-inspector/internal/api/telegram"
	"solar-inspector/internal/api/web"
	"solar-inspector/internal/container"
	"solar-inspector/internal/observability"
	"solar-inspector/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logg.Sync()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Без отчёта и снимков сервис не стартует
	appContainer, err := container.Load(cfg, logg)
	if err != nil {
		logg.Fatal("failed to load detection data", "data_dir", cfg.DataDir, "static_dir", cfg.StaticDir, "error", err)
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		if metrics, err = observability.NewMetrics(); err != nil {
			logg.Fatal("failed to register metrics", "error", err)
		}
		metrics.SetFleet(appContainer.Store.Summary())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, telegram.Deps{
			Catalog:   appContainer.CatalogService,
			Analyzer:  appContainer.AnalysisService,
			Sessions:  appContainer.SessionService,
			Describer: appContainer.Describer,
			Logger:    logg.With("component", "telegram"),
		})
		if err != nil {
			logg.Fatal("failed to create telegram bot", "error", err)
		}
		go func() {
			if err := bot.Run(ctx); err != nil {
				logg.Error("telegram bot stopped", "error", err)
			}
		}()
	} else {
		logg.Info("TELEGRAM_TOKEN not set, telegram bot disabled")
	}

	handler := web.NewHandler(appContainer.CatalogService, appContainer.AnalysisService, metrics)
	router := web.NewRouter(web.RouterConfig{
		Handler:     handler,
		Metrics:     metrics,
		Logger:      logg.With("component", "http"),
		CORSOrigins: cfg.CORSOrigins,
	})

	if err := web.NewServer(cfg.Addr(), router, logg).Run(ctx); err != nil {
		logg.Fatal("server error", "error", err)
	}
	logg.Info("stopped")
}
