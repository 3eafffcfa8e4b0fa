package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// CreditUseCase agrupa la gestión de créditos: facturas (lectura),
// abonos y notas de crédito.
type CreditUseCase struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	noteRepo    repository.CreditNoteRepository
}

// NewCreditUseCase construye el caso de uso.
func NewCreditUseCase(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	noteRepo repository.CreditNoteRepository,
) *CreditUseCase {
	return &CreditUseCase{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo, noteRepo: noteRepo}
}

// ListInvoices devuelve las facturas de crédito.
func (uc *CreditUseCase) ListInvoices(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{Items: items, Total: len(items)}, nil
}

// RegisterPayment registra un abono contra una factura existente.
// No concilia el saldo de la factura: solo agrega el abono a la lista.
func (uc *CreditUseCase) RegisterPayment(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.InvoiceID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	method := entity.PaymentMethod(in.Method)
	if !method.Valid() {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(ctx, in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	payment := &entity.Payment{
		ID:        uuid.New().String(),
		InvoiceID: invoice.ID,
		Date:      time.Now(),
		Amount:    in.Amount,
		Method:    method,
	}
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// ListPayments devuelve los abonos registrados.
func (uc *CreditUseCase) ListPayments(ctx context.Context) (*dto.PaymentListResponse, error) {
	list, err := uc.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{Items: items, Total: len(items)}, nil
}

// CreateNote emite una nota de crédito contra una factura existente.
// El ID lo asigna el servidor (UUID) y el nombre del cliente se toma de la
// factura asociada, no del formulario.
func (uc *CreditUseCase) CreateNote(ctx context.Context, in dto.CreateCreditNoteRequest) (*dto.CreditNoteResponse, error) {
	if in.InvoiceID == "" || in.Reason == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(ctx, in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	note := &entity.CreditNote{
		ID:         uuid.New().String(),
		InvoiceID:  invoice.ID,
		ClientName: invoice.ClientName,
		Date:       time.Now(),
		Amount:     in.Amount,
		Reason:     in.Reason,
	}
	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return toCreditNoteResponse(note), nil
}

// ListNotes devuelve las notas de crédito, la más reciente primero.
func (uc *CreditUseCase) ListNotes(ctx context.Context) (*dto.CreditNoteListResponse, error) {
	list, err := uc.noteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CreditNoteResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toCreditNoteResponse(n))
	}
	return &dto.CreditNoteListResponse{Items: items, Total: len(items)}, nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:         inv.ID,
		ClientName: inv.ClientName,
		IssueDate:  inv.IssueDate.Format("2006-01-02"),
		DueDate:    inv.DueDate.Format("2006-01-02"),
		Amount:     inv.Amount,
		Status:     string(inv.Status),
	}
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Date:      p.Date.Format("2006-01-02"),
		Amount:    p.Amount,
		Method:    string(p.Method),
	}
}

func toCreditNoteResponse(n *entity.CreditNote) *dto.CreditNoteResponse {
	return &dto.CreditNoteResponse{
		ID:         n.ID,
		InvoiceID:  n.InvoiceID,
		ClientName: n.ClientName,
		Date:       n.Date.Format("2006-01-02"),
		Amount:     n.Amount,
		Reason:     n.Reason,
	}
}
