package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// InvoiceRepository facturas de crédito en memoria (solo lectura tras el seed).
type InvoiceRepository struct {
	latencySimulator
	mu       sync.RWMutex
	invoices []*entity.Invoice
}

// NewInvoiceRepository construye el repositorio.
func NewInvoiceRepository(latency time.Duration) *InvoiceRepository {
	return &InvoiceRepository{latencySimulator: latencySimulator{latency: latency}}
}

// GetByID devuelve (nil, nil) si la factura no existe.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.invoices {
		if inv.ID == id {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve las facturas en orden de emisión.
func (r *InvoiceRepository) List(ctx context.Context) ([]*entity.Invoice, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

// PaymentRepository abonos en memoria; los nuevos se agregan al final.
type PaymentRepository struct {
	latencySimulator
	mu       sync.RWMutex
	payments []*entity.Payment
}

// NewPaymentRepository construye el repositorio.
func NewPaymentRepository(latency time.Duration) *PaymentRepository {
	return &PaymentRepository{latencySimulator: latencySimulator{latency: latency}}
}

// Create agrega el abono a la lista.
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *payment
	r.payments = append(r.payments, &cp)
	return nil
}

// List devuelve los abonos en orden de registro.
func (r *PaymentRepository) List(ctx context.Context) ([]*entity.Payment, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// CreditNoteRepository notas de crédito en memoria; las nuevas van al frente,
// igual que en la pantalla de notas (lo más reciente primero).
type CreditNoteRepository struct {
	latencySimulator
	mu    sync.RWMutex
	notes []*entity.CreditNote
}

// NewCreditNoteRepository construye el repositorio.
func NewCreditNoteRepository(latency time.Duration) *CreditNoteRepository {
	return &CreditNoteRepository{latencySimulator: latencySimulator{latency: latency}}
}

// Create antepone la nota a la lista.
func (r *CreditNoteRepository) Create(ctx context.Context, note *entity.CreditNote) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *note
	r.notes = append([]*entity.CreditNote{&cp}, r.notes...)
	return nil
}

// List devuelve las notas, la más reciente primero.
func (r *CreditNoteRepository) List(ctx context.Context) ([]*entity.CreditNote, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.CreditNote, 0, len(r.notes))
	for _, n := range r.notes {
		cp := *n
		out = append(out, &cp)
	}
	return out, nil
}
