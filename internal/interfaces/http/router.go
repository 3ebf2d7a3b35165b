package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Pinger verifica la conexión con la base de datos (pgxpool.Pool lo implementa).
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Alerts         LowStockAlerter
	Report         LowStockReporter
	DB             Pinger
	JWTSecret      string
	RequestTimeout time.Duration
	Log            zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.DB))

	alertHandler := NewAlertHandler(deps.Alerts, deps.Report, deps.RequestTimeout, deps.Log)

	// Sin JWT_SECRET las rutas quedan públicas (el gateway autentica).
	var guards []fiber.Handler
	if deps.JWTSecret != "" {
		guards = append(guards, AuthMiddleware(deps.JWTSecret), RequireCompanyAccess("companyId"))
	}

	companies := app.Group("/companies")
	companies.Get("/:companyId/alerts/low-stock", append(guards, alertHandler.GetLowStockAlerts)...)
	companies.Get("/:companyId/alerts/low-stock/pdf", append(guards, alertHandler.DownloadLowStockReport)...)

	// Debe registrarse al final: solo atiende lo que ninguna ruta anterior resolvió.
	app.Use(notFoundHandler)
}

func healthHandler(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return c.JSON(fiber.Map{"status": "ok"})
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "database": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok", "database": "up"})
	}
}
