package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto desde el formulario de inventario.
type CreateProductRequest struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Supplier string          `json:"supplier"`
}

// UpdateProductRequest edición parcial; los campos nil no se tocan.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Stock    *int             `json:"stock"`
	Price    *decimal.Decimal `json:"price"`
	Supplier *string          `json:"supplier"`
}

// ProductResponse representación de un producto hacia la consola.
type ProductResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	Supplier  string          `json:"supplier"`
	DateAdded string          `json:"date_added"` // YYYY-MM-DD
}

// ProductListResponse listado completo del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
