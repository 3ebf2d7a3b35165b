package entity

// Tipos de producto conocidos por la política de umbrales.
const (
	ProductTypeSimple = "simple"
	ProductTypeBundle = "bundle"
)

// Product representa un producto o SKU del catálogo de una empresa.
// ProductType es categórico y decide qué umbral de stock bajo aplica.
type Product struct {
	ID          string
	CompanyID   string
	Name        string
	SKU         string // único por empresa
	ProductType string
}
