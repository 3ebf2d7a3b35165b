package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// DefaultWindowDays ventana de actividad de ventas para el filtro de recencia y el promedio diario.
const DefaultWindowDays = 30

// ThresholdPolicy tabla product_type → umbral de stock bajo.
// Es configuración: se carga desde el entorno, no se deriva de datos.
type ThresholdPolicy struct {
	ByType  map[string]int64
	Default int64 // umbral para tipos no listados
}

// DefaultThresholdPolicy política por defecto: simple → 20, bundle → 10, desconocido → 20.
func DefaultThresholdPolicy() ThresholdPolicy {
	return ThresholdPolicy{
		ByType: map[string]int64{
			entity.ProductTypeSimple: 20,
			entity.ProductTypeBundle: 10,
		},
		Default: 20,
	}
}

// For devuelve el umbral aplicable al tipo de producto.
func (p ThresholdPolicy) For(productType string) int64 {
	if t, ok := p.ByType[productType]; ok {
		return t
	}
	return p.Default
}

// IsLowStock es estricto: cantidad igual al umbral no dispara alerta.
func IsLowStock(quantity, threshold int64) bool {
	return quantity < threshold
}

// DaysUntilStockout estima los días de inventario restantes al ritmo promedio de venta.
// promedio = totalSold / windowDays; días = floor(quantity / promedio), mínimo 0.
// Devuelve nil si el promedio es cero (indeterminado).
func DaysUntilStockout(quantity int64, totalSold decimal.Decimal, windowDays int) *int64 {
	if windowDays <= 0 || totalSold.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	// quantity / (totalSold / window) == quantity * window / totalSold, sin pérdida intermedia.
	days := decimal.NewFromInt(quantity).
		Mul(decimal.NewFromInt(int64(windowDays))).
		Div(totalSold).
		Floor().
		IntPart()
	if days < 0 {
		days = 0
	}
	return &days
}

// PickSupplier elige un único proveedor de forma determinista:
// el marcado como principal y, a igualdad, el de menor ID. nil si no hay proveedores.
func PickSupplier(suppliers []*entity.Supplier) *entity.Supplier {
	candidates := make([]*entity.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if s != nil {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.IsPrimary != b.IsPrimary {
			return a.IsPrimary
		}
		return a.ID < b.ID
	})
	return candidates[0]
}
