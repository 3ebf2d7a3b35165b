package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/inventory"
)

func TestThresholdPolicy_PorTipo(t *testing.T) {
	p := inventory.DefaultThresholdPolicy()

	assert.Equal(t, int64(20), p.For(entity.ProductTypeSimple))
	assert.Equal(t, int64(10), p.For(entity.ProductTypeBundle))
	assert.Equal(t, int64(20), p.For("kit-raro"), "tipo desconocido usa el umbral por defecto")
}

func TestThresholdPolicy_Sobrescrita(t *testing.T) {
	p := inventory.ThresholdPolicy{ByType: map[string]int64{"simple": 5}, Default: 1}

	assert.Equal(t, int64(5), p.For("simple"))
	assert.Equal(t, int64(1), p.For("bundle"))
}

func TestIsLowStock_FronteraEstricta(t *testing.T) {
	assert.False(t, inventory.IsLowStock(20, 20), "igual al umbral no alerta")
	assert.True(t, inventory.IsLowStock(19, 20))
	assert.True(t, inventory.IsLowStock(0, 20))
	assert.False(t, inventory.IsLowStock(21, 20))
}

func TestDaysUntilStockout(t *testing.T) {
	cases := []struct {
		name     string
		quantity int64
		total    decimal.Decimal
		want     *int64
	}{
		{"promedio fraccional", 5, decimal.NewFromInt(10), ptr(15)},
		{"sin ventas es indeterminado", 5, decimal.Zero, nil},
		{"stock cero", 0, decimal.NewFromInt(30), ptr(0)},
		{"floor", 10, decimal.NewFromInt(7), ptr(42)},
		{"ventas fraccionales", 3, decimal.RequireFromString("4.5"), ptr(20)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.DaysUntilStockout(tc.quantity, tc.total, inventory.DefaultWindowDays)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

func TestDaysUntilStockout_VentanaInvalida(t *testing.T) {
	assert.Nil(t, inventory.DaysUntilStockout(5, decimal.NewFromInt(10), 0))
}

func TestPickSupplier(t *testing.T) {
	t.Run("sin proveedores", func(t *testing.T) {
		assert.Nil(t, inventory.PickSupplier(nil))
		assert.Nil(t, inventory.PickSupplier([]*entity.Supplier{nil}))
	})

	t.Run("menor id", func(t *testing.T) {
		got := inventory.PickSupplier([]*entity.Supplier{{ID: "c"}, {ID: "a"}, {ID: "b"}})
		require.NotNil(t, got)
		assert.Equal(t, "a", got.ID)
	})

	t.Run("principal gana al menor id", func(t *testing.T) {
		got := inventory.PickSupplier([]*entity.Supplier{{ID: "a"}, {ID: "z", IsPrimary: true}})
		require.NotNil(t, got)
		assert.Equal(t, "z", got.ID)
	})

	t.Run("no depende del orden de entrada", func(t *testing.T) {
		in1 := []*entity.Supplier{{ID: "b"}, {ID: "a"}}
		in2 := []*entity.Supplier{{ID: "a"}, {ID: "b"}}
		assert.Equal(t, inventory.PickSupplier(in1).ID, inventory.PickSupplier(in2).ID)
	})
}

func ptr(v int64) *int64 { return &v }
