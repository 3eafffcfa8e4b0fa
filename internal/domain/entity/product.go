package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario del supermercado.
// El SKU es la clave de búsqueda externa (escaneo en caja); única por catálogo.
type Product struct {
	ID        string
	SKU       string
	Name      string
	Category  string
	Stock     int // nunca negativo
	Price     decimal.Decimal
	Supplier  string
	DateAdded time.Time
	UpdatedAt time.Time
}

// LowStock indica si el producto debe aparecer en las alertas de inventario bajo.
func (p *Product) LowStock(threshold int) bool {
	return p.Stock < threshold
}
