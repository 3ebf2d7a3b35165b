package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/stock-alerts-api/internal/application/inventory"
	dominv "github.com/jhoicas/stock-alerts-api/internal/domain/inventory"
	infrapdf "github.com/jhoicas/stock-alerts-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-alerts-api/internal/interfaces/http"
	"github.com/jhoicas/stock-alerts-api/pkg/config"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("thresholds", config.FormatThresholds(cfg.Alerts.Thresholds)).
		Int64("default_threshold", cfg.Alerts.DefaultThreshold).
		Int("window_days", cfg.Alerts.WindowDays).
		Int("workers", cfg.Alerts.Workers).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	levelRepo := postgres.NewInventoryLevelRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)

	alertsUC := inventory.NewLowStockAlertUseCase(
		warehouseRepo, levelRepo, salesRepo, supplierRepo,
		inventory.AlertConfig{
			Thresholds: dominv.ThresholdPolicy{
				ByType:  cfg.Alerts.Thresholds,
				Default: cfg.Alerts.DefaultThreshold,
			},
			WindowDays: cfg.Alerts.WindowDays,
			Workers:    cfg.Alerts.Workers,
			Retry: inventory.RetryConfig{
				MaxTries:        uint(max(cfg.Alerts.RetryMaxTries, 1)),
				InitialInterval: cfg.Alerts.RetryInitialInterval,
			},
		},
		log.Component("low_stock_alerts"),
	)

	// PDF: reporte imprimible de las mismas alertas
	reportUC := inventory.NewLowStockReportUseCase(alertsUC, infrapdf.NewMarotoAlertReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Alerts.RequestTimeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Stock Alerts API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: las rutas de alertas no verifican el tenant")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Alerts:         alertsUC,
		Report:         reportUC,
		DB:             pool,
		JWTSecret:      cfg.JWT.Secret,
		RequestTimeout: cfg.Alerts.RequestTimeout,
		Log:            log.Component("alerts_handler"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
