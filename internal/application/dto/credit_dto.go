package dto

import (
	"github.com/shopspring/decimal"
)

// InvoiceResponse factura de crédito (solo lectura en este alcance).
type InvoiceResponse struct {
	ID         string          `json:"id"`
	ClientName string          `json:"client_name"`
	IssueDate  string          `json:"issue_date"` // YYYY-MM-DD
	DueDate    string          `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"` // Pendiente | Cancelada | Vencida
}

// InvoiceListResponse listado de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Total int               `json:"total"`
}

// CreatePaymentRequest registro de un abono desde el formulario de pagos.
type CreatePaymentRequest struct {
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"payment_method"` // Efectivo | Tarjeta | Transferencia
}

// PaymentResponse abono registrado.
type PaymentResponse struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	Date      string          `json:"date"` // YYYY-MM-DD
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"payment_method"`
}

// PaymentListResponse listado de abonos recientes.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Total int               `json:"total"`
}

// CreateCreditNoteRequest alta de nota de crédito desde el modal.
type CreateCreditNoteRequest struct {
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
}

// CreditNoteResponse nota de crédito emitida.
type CreditNoteResponse struct {
	ID         string          `json:"id"`
	InvoiceID  string          `json:"invoice_id"`
	ClientName string          `json:"client_name"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
}

// CreditNoteListResponse listado de notas de crédito.
type CreditNoteListResponse struct {
	Items []CreditNoteResponse `json:"items"`
	Total int                  `json:"total"`
}
