package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consultas de solo lectura sobre sales_records.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de ventas.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// SalesActivity cuenta y suma las ventas del par con sold_at en [since, until].
// COALESCE devuelve cero si no hay ventas en el período.
func (r *SalesRepo) SalesActivity(
	ctx context.Context,
	productID, warehouseID string,
	since, until time.Time,
) (repository.SalesSummary, error) {
	const query = `
	SELECT
	    COUNT(*)                                  AS sales_count,
	    COALESCE(SUM(sr.quantity_sold), 0)::NUMERIC AS total_sold
	FROM sales_records sr
	WHERE sr.product_id   = $1
	  AND sr.warehouse_id = $2
	  AND sr.sold_at     >= $3
	  AND sr.sold_at     <= $4`

	var out repository.SalesSummary
	if err := r.q.QueryRow(ctx, query, productID, warehouseID, since, until).Scan(&out.Count, &out.TotalSold); err != nil {
		return repository.SalesSummary{}, fmt.Errorf("sales.SalesActivity: %w", err)
	}
	return out, nil
}
