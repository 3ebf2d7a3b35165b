package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// store repositorio en memoria que implementa los cuatro puertos de lectura.
// failures permite inyectar errores por clave: cada llamada consume uno.
type store struct {
	mu         sync.Mutex
	companies  map[string]bool
	warehouses map[string][]*entity.Warehouse
	inventory  map[string][]repository.InventoryItem
	sales      []saleRow
	suppliers  map[string][]*entity.Supplier
	failures   map[string]int
	calls      map[string]int
}

// saleRow fila de sales_records tal como la ve el repositorio.
type saleRow struct {
	ProductID    string
	WarehouseID  string
	QuantitySold decimal.Decimal
	SoldAt       time.Time
}

func newStore() *store {
	return &store{
		companies:  map[string]bool{},
		warehouses: map[string][]*entity.Warehouse{},
		inventory:  map[string][]repository.InventoryItem{},
		suppliers:  map[string][]*entity.Supplier{},
		failures:   map[string]int{},
		calls:      map[string]int{},
	}
}

func (s *store) addCompany(id string) { s.companies[id] = true }

func (s *store) addWarehouse(companyID, id, name string) {
	s.companies[companyID] = true
	s.warehouses[companyID] = append(s.warehouses[companyID], &entity.Warehouse{ID: id, CompanyID: companyID, Name: name})
}

func (s *store) addStock(warehouseID string, p entity.Product, qty int64) {
	s.inventory[warehouseID] = append(s.inventory[warehouseID], repository.InventoryItem{
		Level:   entity.InventoryLevel{ProductID: p.ID, WarehouseID: warehouseID, Quantity: qty},
		Product: p,
	})
}

func (s *store) addSale(productID, warehouseID string, qty int64, at time.Time) {
	s.sales = append(s.sales, saleRow{
		ProductID: productID, WarehouseID: warehouseID, QuantitySold: decimal.NewFromInt(qty), SoldAt: at,
	})
}

func (s *store) failNext(key string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[key] = n
}

func (s *store) callCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[key]
}

var errTransient = errTransientType{}

type errTransientType struct{}

func (errTransientType) Error() string { return "conexión reiniciada" }

func (s *store) hit(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[key]++
	if s.failures[key] > 0 {
		s.failures[key]--
		return errTransient
	}
	return nil
}

func (s *store) ListByCompany(ctx context.Context, companyID string) ([]*entity.Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.hit("warehouses"); err != nil {
		return nil, err
	}
	if !s.companies[companyID] {
		return nil, domain.ErrNotFound
	}
	return s.warehouses[companyID], nil
}

func (s *store) ListWithProduct(ctx context.Context, warehouseID string) ([]repository.InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.hit("inventory:" + warehouseID); err != nil {
		return nil, err
	}
	return s.inventory[warehouseID], nil
}

func (s *store) SalesActivity(ctx context.Context, productID, warehouseID string, since, until time.Time) (repository.SalesSummary, error) {
	if err := ctx.Err(); err != nil {
		return repository.SalesSummary{}, err
	}
	if err := s.hit("sales:" + productID); err != nil {
		return repository.SalesSummary{}, err
	}
	out := repository.SalesSummary{TotalSold: decimal.Zero}
	for _, r := range s.sales {
		if r.ProductID != productID || r.WarehouseID != warehouseID {
			continue
		}
		if r.SoldAt.Before(since) || r.SoldAt.After(until) {
			continue
		}
		out.Count++
		out.TotalSold = out.TotalSold.Add(r.QuantitySold)
	}
	return out, nil
}

func (s *store) ListByProduct(ctx context.Context, productID string) ([]*entity.Supplier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.hit("suppliers:" + productID); err != nil {
		return nil, err
	}
	return s.suppliers[productID], nil
}
