package repository

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// InvoiceRepository puerto de lectura de facturas de crédito.
// En este alcance las facturas no se crean ni mutan desde la consola.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
}

// PaymentRepository puerto de abonos a factura.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	List(ctx context.Context) ([]*entity.Payment, error)
}

// CreditNoteRepository puerto de notas de crédito.
type CreditNoteRepository interface {
	Create(ctx context.Context, note *entity.CreditNote) error
	List(ctx context.Context) ([]*entity.CreditNote, error)
}
