package billing

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

func nuevoCheckout(t *testing.T) (*CheckoutUseCase, *memory.SaleRepository) {
	t.Helper()
	products := memory.NewProductRepository(0)
	memory.SeedAll(products, memory.NewInvoiceRepository(0), memory.NewPaymentRepository(0), memory.NewCreditNoteRepository(0))
	sales := memory.NewSaleRepository(0)
	bills := memory.NewBillRepository(0)
	return NewCheckoutUseCase(products, sales, bills, decimal.RequireFromString("0.16")), sales
}

func TestSubmitSaleGuardaElComprobante(t *testing.T) {
	uc, sales := nuevoCheckout(t)
	ctx := context.Background()

	// 2 × Leche (1.20) = 2.40, sin IVA en el contado.
	out, err := uc.SubmitSale(ctx, dto.SubmitSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "1", Quantity: 2}},
		Total: decimal.RequireFromString("2.40"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Leche Entera 1L", out.Items[0].ProductName, "la línea lleva el snapshot del catálogo")
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.RequireFromString("2.40")))

	guardada, err := sales.GetByID(ctx, out.ID)
	require.NoError(t, err)
	require.NotNil(t, guardada, "la venta queda almacenada")
}

func TestSubmitSaleRechazaTotalQueNoCoincide(t *testing.T) {
	uc, _ := nuevoCheckout(t)

	_, err := uc.SubmitSale(context.Background(), dto.SubmitSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "1", Quantity: 2}},
		Total: decimal.RequireFromString("99.99"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el servidor recalcula y no confía en el total del cliente")
}

func TestSubmitSaleCarritoVacioYProductoInexistente(t *testing.T) {
	uc, _ := nuevoCheckout(t)
	ctx := context.Background()

	_, err := uc.SubmitSale(ctx, dto.SubmitSaleRequest{Total: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = uc.SubmitSale(ctx, dto.SubmitSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "no-existe", Quantity: 1}},
		Total: decimal.RequireFromString("1.00"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Contains(t, err.Error(), `"no-existe"`, "el error identifica la línea problemática")
}

func TestSubmitBillCalculaElDesglose(t *testing.T) {
	uc, _ := nuevoCheckout(t)

	// 2 × Leche (1.20): subtotal 2.40, IVA 0.384, total 2.784 exactos.
	out, err := uc.SubmitBill(context.Background(), dto.SubmitBillRequest{
		ClientName: "María García",
		Items:      []dto.SaleItemRequest{{ProductID: "1", Quantity: 2}},
		Subtotal:   decimal.RequireFromString("2.40"),
		Tax:        decimal.RequireFromString("0.384"),
		Total:      decimal.RequireFromString("2.784"),
	})
	require.NoError(t, err)
	assert.True(t, out.Subtotal.Equal(decimal.RequireFromString("2.40")))
	assert.True(t, out.Tax.Equal(decimal.RequireFromString("0.384")), "IVA exacto, sin redondeo intermedio")
	assert.True(t, out.Total.Equal(decimal.RequireFromString("2.784")))
}

func TestSubmitBillExigeCliente(t *testing.T) {
	uc, _ := nuevoCheckout(t)

	_, err := uc.SubmitBill(context.Background(), dto.SubmitBillRequest{
		Items: []dto.SaleItemRequest{{ProductID: "1", Quantity: 1}},
		Total: decimal.RequireFromString("1.392"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
