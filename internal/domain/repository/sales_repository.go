package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary agrega las ventas de un producto en una bodega dentro de una ventana.
// Count cuenta registros de venta; TotalSold suma quantity_sold (cero si no hay ventas).
type SalesSummary struct {
	Count     int
	TotalSold decimal.Decimal
}

// SalesRepository consultas de solo lectura sobre el historial de ventas.
type SalesRepository interface {
	// SalesActivity resume las ventas con sold_at en [since, until].
	// Los registros con fecha futura respecto a until no cuentan.
	SalesActivity(ctx context.Context, productID, warehouseID string, since, until time.Time) (SalesSummary, error)
}
