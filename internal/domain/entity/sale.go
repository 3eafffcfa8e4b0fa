package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta o factura ya finalizada (snapshot del producto
// al momento de cobrar; cambios posteriores de precio no la afectan).
type SaleItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal precio unitario por cantidad.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CashSale venta al contado finalizada en caja. Sin IVA desglosado: en el
// punto de venta al contado se cobra el total directo.
type CashSale struct {
	ID    string
	Date  time.Time
	Items []SaleItem
	Total decimal.Decimal
}

// Bill factura de venta finalizada desde la pantalla de facturación,
// con desglose de subtotal, IVA y total.
type Bill struct {
	ID         string
	ClientName string
	Date       time.Time
	Items      []SaleItem
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
}
