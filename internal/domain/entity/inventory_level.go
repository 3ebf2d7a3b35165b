package entity

import "time"

// InventoryLevel es el stock actual de un producto en una bodega.
// El par (ProductID, WarehouseID) es único.
type InventoryLevel struct {
	ProductID   string
	WarehouseID string
	Quantity    int64 // nunca negativo
	UpdatedAt   time.Time
}
