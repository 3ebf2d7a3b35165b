package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de lectura de bodegas (DIP).
type WarehouseRepository interface {
	// ListByCompany devuelve las bodegas de la empresa en orden estable (created_at, id).
	// Devuelve domain.ErrNotFound si la empresa no existe; una empresa sin bodegas
	// devuelve una lista vacía y nil.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Warehouse, error)
}
