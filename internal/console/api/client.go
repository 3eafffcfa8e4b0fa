// Package api define el cliente tipado que consume la consola. La interfaz
// permite inyectar fakes en las pruebas de las pantallas.
package api

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
)

// Client capacidades de acceso al backend que necesita la consola. Toda
// llamada lleva latencia y puede fallar.
type Client interface {
	FetchProducts(ctx context.Context) (*dto.ProductListResponse, error)
	// FetchProductBySKU devuelve (nil, nil) si el SKU no existe.
	FetchProductBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error)
	CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error

	FetchInvoices(ctx context.Context) (*dto.InvoiceListResponse, error)
	FetchPayments(ctx context.Context) (*dto.PaymentListResponse, error)
	CreatePayment(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	FetchCreditNotes(ctx context.Context) (*dto.CreditNoteListResponse, error)
	CreateCreditNote(ctx context.Context, in dto.CreateCreditNoteRequest) (*dto.CreditNoteResponse, error)

	SubmitSale(ctx context.Context, in dto.SubmitSaleRequest) (*dto.ReceiptResponse, error)
	SubmitBill(ctx context.Context, in dto.SubmitBillRequest) (*dto.BillConfirmationResponse, error)

	FetchDashboard(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}
