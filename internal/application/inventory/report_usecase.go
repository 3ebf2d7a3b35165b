package inventory

import (
	"context"
	"fmt"
)

// LowStockReportUseCase genera el reporte PDF con las mismas alertas del endpoint JSON.
type LowStockReportUseCase struct {
	alerts    *LowStockAlertUseCase
	generator AlertReportGenerator
}

// NewLowStockReportUseCase construye el caso de uso del reporte.
func NewLowStockReportUseCase(alerts *LowStockAlertUseCase, generator AlertReportGenerator) *LowStockReportUseCase {
	return &LowStockReportUseCase{alerts: alerts, generator: generator}
}

// DownloadLowStockReport calcula las alertas y las renderiza.
// Propaga los mismos errores que ComputeLowStockAlerts.
func (uc *LowStockReportUseCase) DownloadLowStockReport(ctx context.Context, companyID string) (pdfBytes []byte, filename string, err error) {
	res, err := uc.alerts.ComputeLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateLowStockReport(ctx, companyID, uc.alerts.Now(), res.Alerts)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de stock bajo: %w", err)
	}
	return pdfBytes, fmt.Sprintf("low-stock-%s.pdf", companyID), nil
}
