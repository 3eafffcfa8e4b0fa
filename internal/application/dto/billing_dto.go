package dto

import (
	"github.com/shopspring/decimal"
)

// SaleItemRequest línea enviada al finalizar una venta o factura.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SubmitSaleRequest venta al contado: líneas más el total calculado en caja.
// El servidor recalcula y rechaza si el total no coincide con las líneas.
type SubmitSaleRequest struct {
	Items []SaleItemRequest `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// SaleItemResponse línea de un comprobante emitido.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ReceiptResponse comprobante de venta al contado.
type ReceiptResponse struct {
	ID    string             `json:"id"`
	Date  string             `json:"date"` // RFC 3339
	Items []SaleItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// SubmitBillRequest factura de venta: cliente, líneas y desglose de totales.
type SubmitBillRequest struct {
	ClientName string            `json:"client_name"`
	Items      []SaleItemRequest `json:"items"`
	Subtotal   decimal.Decimal   `json:"subtotal"`
	Tax        decimal.Decimal   `json:"tax"`
	Total      decimal.Decimal   `json:"total"`
}

// BillConfirmationResponse confirmación de la factura emitida.
type BillConfirmationResponse struct {
	ID         string          `json:"id"`
	ClientName string          `json:"client_name"`
	Date       string          `json:"date"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
}
