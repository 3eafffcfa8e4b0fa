package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/memory"
)

func nuevoCreditoUC() *CreditUseCase {
	products := memory.NewProductRepository(0)
	invoices := memory.NewInvoiceRepository(0)
	payments := memory.NewPaymentRepository(0)
	notes := memory.NewCreditNoteRepository(0)
	memory.SeedAll(products, invoices, payments, notes)
	return NewCreditUseCase(invoices, payments, notes)
}

func TestListInvoicesDevuelveLasSembradas(t *testing.T) {
	uc := nuevoCreditoUC()

	out, err := uc.ListInvoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, out.Total)
	assert.Equal(t, "FAC-001", out.Items[0].ID)
}

func TestRegisterPayment(t *testing.T) {
	uc := nuevoCreditoUC()
	ctx := context.Background()

	out, err := uc.RegisterPayment(ctx, dto.CreatePaymentRequest{
		InvoiceID: "FAC-001",
		Amount:    decimal.RequireFromString("100.00"),
		Method:    "Efectivo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "el ID del abono lo asigna el servidor")
	assert.Equal(t, "FAC-001", out.InvoiceID)

	list, err := uc.ListPayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total, "2 sembrados + 1 nuevo")
}

func TestRegisterPaymentValidaciones(t *testing.T) {
	uc := nuevoCreditoUC()
	ctx := context.Background()

	_, err := uc.RegisterPayment(ctx, dto.CreatePaymentRequest{
		InvoiceID: "FAC-999",
		Amount:    decimal.RequireFromString("10.00"),
		Method:    "Efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)

	_, err = uc.RegisterPayment(ctx, dto.CreatePaymentRequest{
		InvoiceID: "FAC-001",
		Amount:    decimal.Zero,
		Method:    "Efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el monto debe ser positivo")

	_, err = uc.RegisterPayment(ctx, dto.CreatePaymentRequest{
		InvoiceID: "FAC-001",
		Amount:    decimal.RequireFromString("10.00"),
		Method:    "Cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el método de pago es un enum cerrado")
}

func TestCreateNoteTomaElClienteDeLaFactura(t *testing.T) {
	uc := nuevoCreditoUC()
	ctx := context.Background()

	out, err := uc.CreateNote(ctx, dto.CreateCreditNoteRequest{
		InvoiceID: "FAC-002",
		Amount:    decimal.RequireFromString("25.00"),
		Reason:    "Devolución de mercancía",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "el ID de la nota lo asigna el servidor")
	assert.NotEqual(t, "NC-003", out.ID, "el ID no sigue el consecutivo del listado")
	assert.NotEmpty(t, out.ClientName, "el cliente viene de la factura, no del formulario")

	list, err := uc.ListNotes(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, out.ID, list.Items[0].ID, "la nota más reciente va primero")
}

func TestCreateNoteValidaciones(t *testing.T) {
	uc := nuevoCreditoUC()
	ctx := context.Background()

	_, err := uc.CreateNote(ctx, dto.CreateCreditNoteRequest{
		InvoiceID: "FAC-999",
		Amount:    decimal.RequireFromString("25.00"),
		Reason:    "Devolución",
	})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)

	_, err = uc.CreateNote(ctx, dto.CreateCreditNoteRequest{
		InvoiceID: "FAC-001",
		Amount:    decimal.RequireFromString("25.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el motivo es obligatorio")
}
