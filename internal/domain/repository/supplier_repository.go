package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// SupplierRepository define el puerto de lectura de proveedores por producto.
type SupplierRepository interface {
	// ListByProduct devuelve los proveedores del producto; puede ser vacío.
	ListByProduct(ctx context.Context, productID string) ([]*entity.Supplier, error)
}
