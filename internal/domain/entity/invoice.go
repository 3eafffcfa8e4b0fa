package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de una factura de crédito. Enumeración cerrada:
// el selector por string libre del sistema anterior se reemplaza por un
// tipo con constantes para que los valores inválidos se detecten al validar.
type InvoiceStatus string

const (
	InvoiceStatusPendiente InvoiceStatus = "Pendiente"
	InvoiceStatusCancelada InvoiceStatus = "Cancelada"
	InvoiceStatusVencida   InvoiceStatus = "Vencida"
)

// Valid reporta si el estado pertenece a la enumeración.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPendiente, InvoiceStatusCancelada, InvoiceStatusVencida:
		return true
	}
	return false
}

// Invoice factura emitida a crédito. En este alcance es de solo lectura:
// el estado gobierna la presentación y las acciones disponibles (Ver/Pagar).
type Invoice struct {
	ID         string
	ClientName string
	IssueDate  time.Time
	DueDate    time.Time
	Amount     decimal.Decimal
	Status     InvoiceStatus
}
