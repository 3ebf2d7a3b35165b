package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryLevelRepository = (*InventoryLevelRepo)(nil)

// InventoryLevelRepo implementación de InventoryLevelRepository sobre PostgreSQL.
type InventoryLevelRepo struct {
	q Querier
}

// NewInventoryLevelRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryLevelRepository(q Querier) *InventoryLevelRepo {
	return &InventoryLevelRepo{q: q}
}

// ListWithProduct devuelve el stock de la bodega unido con los metadatos del producto.
func (r *InventoryLevelRepo) ListWithProduct(ctx context.Context, warehouseID string) ([]repository.InventoryItem, error) {
	const query = `
		SELECT s.product_id, s.warehouse_id, s.quantity, s.updated_at,
		       p.company_id, p.name, p.sku, p.product_type
		FROM stock s
		JOIN products p ON p.id = s.product_id
		WHERE s.warehouse_id = $1
		ORDER BY s.product_id ASC`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by warehouse: %w", err)
	}
	defer rows.Close()

	var list []repository.InventoryItem
	for rows.Next() {
		var it repository.InventoryItem
		if err := rows.Scan(
			&it.Level.ProductID, &it.Level.WarehouseID, &it.Level.Quantity, &it.Level.UpdatedAt,
			&it.Product.CompanyID, &it.Product.Name, &it.Product.SKU, &it.Product.ProductType,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		it.Product.ID = it.Level.ProductID
		list = append(list, it)
	}
	return list, rows.Err()
}
