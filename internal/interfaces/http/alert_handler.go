package http

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
)

// LowStockAlerter calcula las alertas de stock bajo de una empresa.
type LowStockAlerter interface {
	ComputeLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error)
}

// LowStockReporter genera el PDF de alertas de stock bajo.
type LowStockReporter interface {
	DownloadLowStockReport(ctx context.Context, companyID string) ([]byte, string, error)
}

// AlertHandler maneja las peticiones HTTP de alertas de inventario.
type AlertHandler struct {
	alerts   LowStockAlerter
	report   LowStockReporter
	validate *validator.Validate
	timeout  time.Duration
	log      zerolog.Logger
}

// NewAlertHandler construye el handler. timeout <= 0 deja la petición sin límite propio.
func NewAlertHandler(alerts LowStockAlerter, report LowStockReporter, timeout time.Duration, log zerolog.Logger) *AlertHandler {
	return &AlertHandler{
		alerts:   alerts,
		report:   report,
		validate: newValidator(),
		timeout:  timeout,
		log:      log,
	}
}

// GetLowStockAlerts godoc
// @Summary      Alertas de stock bajo por empresa
// @Description  Productos con stock bajo el umbral y ventas recientes, en todas las bodegas de la empresa
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa (UUID)"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStockAlerts(c *fiber.Ctx) error {
	companyID, ok, err := h.companyParam(c)
	if !ok {
		return err
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	out, err := h.alerts.ComputeLowStockAlerts(ctx, companyID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// DownloadLowStockReport godoc
// @Summary      Reporte PDF de alertas de stock bajo
// @Tags         alerts
// @Produce      application/pdf
// @Param        companyId  path  string  true  "ID de la empresa (UUID)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /companies/{companyId}/alerts/low-stock/pdf [get]
func (h *AlertHandler) DownloadLowStockReport(c *fiber.Ctx) error {
	companyID, ok, err := h.companyParam(c)
	if !ok {
		return err
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	pdfBytes, filename, err := h.report.DownloadLowStockReport(ctx, companyID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// companyParam parsea y valida el companyId. Con ok=false la respuesta 400 ya fue escrita.
func (h *AlertHandler) companyParam(c *fiber.Ctx) (string, bool, error) {
	var in dto.LowStockAlertsRequest
	if err := c.ParamsParser(&in); err != nil {
		return "", false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de ruta inválidos"})
	}
	// Los UUID son insensibles a mayúsculas; el tag uuid solo acepta hex en minúscula.
	in.CompanyID = strings.ToLower(in.CompanyID)
	if err := h.validate.Struct(in); err != nil {
		return "", false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos inválidos",
			Details: fieldErrors(err),
		})
	}
	return in.CompanyID, true, nil
}

func (h *AlertHandler) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}
