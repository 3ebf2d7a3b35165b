package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
)

// AlertReportGenerator genera la representación imprimible (PDF) de las alertas de una empresa.
type AlertReportGenerator interface {
	GenerateLowStockReport(
		ctx context.Context,
		companyID string,
		generatedAt time.Time,
		alerts []dto.LowStockAlertDTO,
	) ([]byte, error)
}
