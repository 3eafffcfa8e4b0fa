package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod método de pago aceptado en caja y en abonos a factura.
type PaymentMethod string

const (
	PaymentMethodEfectivo      PaymentMethod = "Efectivo"
	PaymentMethodTarjeta       PaymentMethod = "Tarjeta"
	PaymentMethodTransferencia PaymentMethod = "Transferencia"
)

// Valid reporta si el método pertenece a la enumeración.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodEfectivo, PaymentMethodTarjeta, PaymentMethodTransferencia:
		return true
	}
	return false
}

// Payment abono registrado contra una factura. Se agrega a la lista en
// memoria; la conciliación de saldos contra la factura queda fuera de alcance.
type Payment struct {
	ID        string
	InvoiceID string
	Date      time.Time
	Amount    decimal.Decimal
	Method    PaymentMethod
}
