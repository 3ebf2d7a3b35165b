package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	dominv "github.com/jhoicas/stock-alerts-api/internal/domain/inventory"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// AlertConfig parámetros de la agregación de alertas (vienen de pkg/config).
type AlertConfig struct {
	Thresholds dominv.ThresholdPolicy
	WindowDays int
	Workers    int
	Retry      RetryConfig
}

// LowStockAlertUseCase calcula las alertas de stock bajo de todas las bodegas de una empresa.
// No guarda estado entre llamadas; cada invocación es independiente.
type LowStockAlertUseCase struct {
	warehouseRepo repository.WarehouseRepository
	levelRepo     repository.InventoryLevelRepository
	salesRepo     repository.SalesRepository
	supplierRepo  repository.SupplierRepository
	cfg           AlertConfig
	log           zerolog.Logger
	now           func() time.Time
}

// NewLowStockAlertUseCase construye el caso de uso de alertas.
func NewLowStockAlertUseCase(
	warehouseRepo repository.WarehouseRepository,
	levelRepo repository.InventoryLevelRepository,
	salesRepo repository.SalesRepository,
	supplierRepo repository.SupplierRepository,
	cfg AlertConfig,
	log zerolog.Logger,
) *LowStockAlertUseCase {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = dominv.DefaultWindowDays
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Thresholds.ByType == nil {
		cfg.Thresholds = dominv.DefaultThresholdPolicy()
	}
	return &LowStockAlertUseCase{
		warehouseRepo: warehouseRepo,
		levelRepo:     levelRepo,
		salesRepo:     salesRepo,
		supplierRepo:  supplierRepo,
		cfg:           cfg,
		log:           log,
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj usado como fin de la ventana de ventas.
func (uc *LowStockAlertUseCase) WithClock(now func() time.Time) *LowStockAlertUseCase {
	uc.now = now
	return uc
}

// Now devuelve la hora de evaluación según el reloj configurado.
func (uc *LowStockAlertUseCase) Now() time.Time {
	return uc.now()
}

// candidate par (producto, bodega) que ya pasó el filtro de stock.
type candidate struct {
	warehouseOrder int
	warehouse      *entity.Warehouse
	item           repository.InventoryItem
	threshold      int64
}

type orderedAlert struct {
	warehouseOrder int
	alert          dto.LowStockAlertDTO
}

// ComputeLowStockAlerts devuelve las alertas de la empresa ordenadas por bodega
// (en el orden en que se resolvieron) y luego por product_id ascendente.
//
// Retorna:
//   - domain.ErrInvalidInput      si companyID está vacío o el repositorio lo rechaza.
//   - domain.ErrNotFound          si la empresa no existe.
//   - domain.ErrDependencyFailure si no se pudieron listar bodegas o inventario.
//   - el error del contexto si la petición se cancela; nunca resultados parciales.
func (uc *LowStockAlertUseCase) ComputeLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, domain.ErrInvalidInput
	}

	// 1. Bodegas de la empresa (fallo aquí es fatal para toda la petición)
	warehouses, err := retryRead(ctx, uc.cfg.Retry, func() ([]*entity.Warehouse, error) {
		return uc.warehouseRepo.ListByCompany(ctx, companyID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, domain.ErrInvalidInput
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: listar bodegas: %v", domain.ErrDependencyFailure, err)
	}
	if len(warehouses) == 0 {
		return &dto.LowStockAlertsResponse{Alerts: []dto.LowStockAlertDTO{}, TotalAlerts: 0}, nil
	}

	// 2. Inventario + producto por bodega, en paralelo
	inventories, err := uc.loadInventories(ctx, warehouses)
	if err != nil {
		return nil, err
	}

	// 3. Filtro de stock (sin I/O)
	var candidates []candidate
	for i, wh := range warehouses {
		for _, item := range inventories[i] {
			threshold := uc.cfg.Thresholds.For(item.Product.ProductType)
			if !dominv.IsLowStock(item.Level.Quantity, threshold) {
				continue
			}
			candidates = append(candidates, candidate{
				warehouseOrder: i,
				warehouse:      wh,
				item:           item,
				threshold:      threshold,
			})
		}
	}

	// 4. Recencia, días hasta quiebre y proveedor por par, en paralelo.
	// Cada goroutine escribe solo su posición.
	now := uc.now()
	since := now.AddDate(0, 0, -uc.cfg.WindowDays)
	results := make([]*dto.LowStockAlertDTO, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.Workers)
	for i, c := range candidates {
		g.Go(func() error {
			alert, err := uc.evaluate(gctx, c, since, now)
			if err != nil {
				return err
			}
			results[i] = alert
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 5. Orden determinista
	ordered := make([]orderedAlert, 0, len(results))
	for i, a := range results {
		if a != nil {
			ordered = append(ordered, orderedAlert{warehouseOrder: candidates[i].warehouseOrder, alert: *a})
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.warehouseOrder != b.warehouseOrder {
			return a.warehouseOrder < b.warehouseOrder
		}
		return a.alert.ProductID < b.alert.ProductID
	})

	alerts := make([]dto.LowStockAlertDTO, 0, len(ordered))
	for _, o := range ordered {
		alerts = append(alerts, o.alert)
	}
	return &dto.LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

func (uc *LowStockAlertUseCase) loadInventories(ctx context.Context, warehouses []*entity.Warehouse) ([][]repository.InventoryItem, error) {
	inventories := make([][]repository.InventoryItem, len(warehouses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.Workers)
	for i, wh := range warehouses {
		g.Go(func() error {
			items, err := retryRead(gctx, uc.cfg.Retry, func() ([]repository.InventoryItem, error) {
				return uc.levelRepo.ListWithProduct(gctx, wh.ID)
			})
			if err != nil {
				return fmt.Errorf("listar inventario de bodega %s: %w", wh.ID, err)
			}
			inventories[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDependencyFailure, err)
	}
	return inventories, nil
}

// evaluate aplica el filtro de recencia y arma la alerta. Devuelve (nil, nil) si el par
// no alerta. Solo devuelve error cuando el contexto se cancela.
func (uc *LowStockAlertUseCase) evaluate(ctx context.Context, c candidate, since, now time.Time) (*dto.LowStockAlertDTO, error) {
	product := c.item.Product
	level := c.item.Level

	sales, err := retryRead(ctx, uc.cfg.Retry, func() (repository.SalesSummary, error) {
		return uc.salesRepo.SalesActivity(ctx, product.ID, c.warehouse.ID, since, now)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// Sin historial se trata como "sin actividad reciente": no alerta.
		uc.log.Warn().Err(err).
			Str("product_id", product.ID).
			Str("warehouse_id", c.warehouse.ID).
			Msg("historial de ventas no disponible, se omite el par")
		return nil, nil
	}
	if sales.Count == 0 {
		return nil, nil
	}

	alert := &dto.LowStockAlertDTO{
		ProductID:         product.ID,
		ProductName:       product.Name,
		SKU:               product.SKU,
		WarehouseID:       c.warehouse.ID,
		WarehouseName:     c.warehouse.Name,
		CurrentStock:      level.Quantity,
		Threshold:         c.threshold,
		DaysUntilStockout: dominv.DaysUntilStockout(level.Quantity, sales.TotalSold, uc.cfg.WindowDays),
	}

	suppliers, err := retryRead(ctx, uc.cfg.Retry, func() ([]*entity.Supplier, error) {
		return uc.supplierRepo.ListByProduct(ctx, product.ID)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		uc.log.Warn().Err(err).
			Str("product_id", product.ID).
			Msg("proveedores no disponibles, alerta sin proveedor")
		return alert, nil
	}
	if s := dominv.PickSupplier(suppliers); s != nil {
		alert.Supplier = &dto.SupplierDTO{
			ID:           s.ID,
			Name:         s.Name,
			ContactEmail: s.ContactEmail,
		}
	}
	return alert, nil
}
