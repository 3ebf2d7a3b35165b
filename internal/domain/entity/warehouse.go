package entity

import "time"

// Warehouse representa una bodega de una empresa. Pertenece a exactamente una empresa.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}
