package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// InventoryItem es una fila de stock de una bodega unida con los metadatos del producto.
type InventoryItem struct {
	Level   entity.InventoryLevel
	Product entity.Product
}

// InventoryLevelRepository define el puerto para consultar stock por bodega (DIP).
type InventoryLevelRepository interface {
	// ListWithProduct devuelve todo el stock de la bodega junto con su producto.
	ListWithProduct(ctx context.Context, warehouseID string) ([]InventoryItem, error)
}
