package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditNote nota de crédito que reduce el monto efectivo adeudado de una
// factura. El ID lo asigna el servidor (UUID); el esquema "NC-00N" basado en
// la longitud de la lista del sistema anterior no es estable ante borrados
// y no se replica.
type CreditNote struct {
	ID         string
	InvoiceID  string
	ClientName string
	Date       time.Time
	Amount     decimal.Decimal
	Reason     string
}
