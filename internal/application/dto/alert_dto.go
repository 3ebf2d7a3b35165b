package dto

// LowStockAlertsRequest parámetros de ruta de GET /companies/{companyId}/alerts/low-stock.
type LowStockAlertsRequest struct {
	CompanyID string `params:"companyId" validate:"required,uuid"`
}

// SupplierDTO proveedor adjunto a una alerta.
type SupplierDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO alerta de stock bajo para un par (producto, bodega).
// DaysUntilStockout y Supplier se serializan como null, nunca se omiten.
type LowStockAlertDTO struct {
	ProductID         string       `json:"product_id"`
	ProductName       string       `json:"product_name"`
	SKU               string       `json:"sku"`
	WarehouseID       string       `json:"warehouse_id"`
	WarehouseName     string       `json:"warehouse_name"`
	CurrentStock      int64        `json:"current_stock"`
	Threshold         int64        `json:"threshold"`
	DaysUntilStockout *int64       `json:"days_until_stockout"`
	Supplier          *SupplierDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta del endpoint de alertas.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
