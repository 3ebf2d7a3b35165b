package http

import (
	"context"
	"errors"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

// writeError traduce errores de dominio a HTTP. El texto interno solo va al log.
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	status, body := errorResponse(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("path", c.Path()).
			Str("code", body.Code).
			Msg("error atendiendo la petición")
	}
	return c.Status(status).JSON(body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"}
	case errors.Is(err, domain.ErrDependencyFailure):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "DEPENDENCY_FAILURE", Message: "no se pudieron consultar los datos de inventario, intente más tarde"}
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, dto.ErrorResponse{Code: "TIMEOUT", Message: "la consulta excedió el tiempo máximo"}
	case errors.Is(err, context.Canceled):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "CANCELLED", Message: "la petición fue cancelada"}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
}

// ErrorHandler reemplaza el handler por defecto de Fiber (texto plano con el mensaje
// crudo). Los *fiber.Error conservan su status; el resto pasa por writeError.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return writeError(c, log, err)
		}
		body := dto.ErrorResponse{Code: httpErrorCode(fe.Code), Message: fe.Message}
		if fe.Code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error atendiendo la petición")
			body.Message = "error interno"
		}
		return c.Status(fe.Code).JSON(body)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestTimeout:
		return "TIMEOUT"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	return "HTTP_ERROR"
}

// emptyCompanyAlertsPath rutas de alertas con el segmento companyId vacío
// (/companies//alerts/low-stock), que no coinciden con :companyId.
var emptyCompanyAlertsPath = regexp.MustCompile(`^/companies/*/alerts/low-stock(/pdf)?/?$`)

// notFoundHandler último handler de la cadena: responde JSON a las rutas sin match.
func notFoundHandler(c *fiber.Ctx) error {
	if emptyCompanyAlertsPath.MatchString(c.Path()) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos inválidos",
			Details: []dto.FieldError{{Field: "companyId", Message: "campo requerido"}},
		})
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
}
