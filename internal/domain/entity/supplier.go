package entity

// Supplier es un proveedor asociado a uno o varios productos (relación N:M).
// IsPrimary viene de la tabla de relación product_suppliers, no del proveedor.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	IsPrimary    bool
}
