package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de lectura de bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// ListByCompany lista las bodegas de la empresa en orden (created_at, id).
// El LEFT JOIN desde companies distingue "empresa sin bodegas" (una fila con
// columnas de bodega nulas) de "empresa inexistente" (cero filas).
func (r *WarehouseRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Warehouse, error) {
	// companies.id es UUID: un id mal formado haría fallar el cast en PostgreSQL.
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, domain.ErrInvalidInput
	}
	const query = `
		SELECT c.id, w.id, w.name, w.created_at
		FROM companies c
		LEFT JOIN warehouses w ON w.company_id = c.id
		WHERE c.id = $1
		ORDER BY w.created_at ASC, w.id ASC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	found := false
	list := make([]*entity.Warehouse, 0)
	for rows.Next() {
		var (
			cID       string
			wID, name *string
			createdAt *time.Time
		)
		if err := rows.Scan(&cID, &wID, &name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		found = true
		if wID == nil {
			continue
		}
		w := &entity.Warehouse{ID: *wID, CompanyID: cID}
		if name != nil {
			w.Name = *name
		}
		if createdAt != nil {
			w.CreatedAt = *createdAt
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return list, nil
}
