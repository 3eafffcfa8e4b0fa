package billing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/console/api"
)

// fakeClient implementa solo los métodos que la sesión usa; el resto del
// contrato queda en la interfaz embebida (nil) y haría panic si se tocara.
type fakeClient struct {
	api.Client

	bySKU    map[string]*dto.ProductResponse
	entro    chan struct{} // si no es nil, avisa que la búsqueda arrancó
	bloqueo  chan struct{} // si no es nil, FetchProductBySKU espera aquí
	lastSale *dto.SubmitSaleRequest
	lastBill *dto.SubmitBillRequest
}

func (f *fakeClient) FetchProductBySKU(_ context.Context, sku string) (*dto.ProductResponse, error) {
	if f.entro != nil {
		f.entro <- struct{}{}
	}
	if f.bloqueo != nil {
		<-f.bloqueo
	}
	return f.bySKU[sku], nil
}

func (f *fakeClient) SubmitSale(_ context.Context, in dto.SubmitSaleRequest) (*dto.ReceiptResponse, error) {
	f.lastSale = &in
	return &dto.ReceiptResponse{ID: "venta-1", Total: in.Total}, nil
}

func (f *fakeClient) SubmitBill(_ context.Context, in dto.SubmitBillRequest) (*dto.BillConfirmationResponse, error) {
	f.lastBill = &in
	return &dto.BillConfirmationResponse{ID: "factura-1", Total: in.Total}, nil
}

func productoLeche() *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:    "1",
		SKU:   "LE-001",
		Name:  "Leche Entera 1L",
		Price: decimal.RequireFromString("1.20"),
	}
}

func TestAddBySKUAgregaAlCarrito(t *testing.T) {
	client := &fakeClient{bySKU: map[string]*dto.ProductResponse{"LE-001": productoLeche()}}
	s := NewSession(client, decimal.RequireFromString("0.16"))

	p, err := s.AddBySKU(context.Background(), "LE-001")
	require.NoError(t, err)
	assert.Equal(t, "Leche Entera 1L", p.Name)
	require.Equal(t, 1, s.Cart().Len())

	// Un segundo escaneo del mismo SKU incrementa la línea existente.
	_, err = s.AddBySKU(context.Background(), "LE-001")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Cart().Len(), "mismo producto no duplica la línea")
	assert.Equal(t, 2, s.Cart().Items()[0].Quantity)
}

func TestAddBySKUNoEncontrado(t *testing.T) {
	client := &fakeClient{bySKU: map[string]*dto.ProductResponse{}}
	s := NewSession(client, decimal.RequireFromString("0.16"))

	_, err := s.AddBySKU(context.Background(), "zz-999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"zz-999"`, "el error cita el SKU tal como se tecleó")
	assert.Equal(t, 0, s.Cart().Len(), "el carrito queda intacto")
}

func TestAddBySKUBusquedaEnCurso(t *testing.T) {
	entro := make(chan struct{})
	bloqueo := make(chan struct{})
	client := &fakeClient{
		bySKU:   map[string]*dto.ProductResponse{"LE-001": productoLeche()},
		entro:   entro,
		bloqueo: bloqueo,
	}
	s := NewSession(client, decimal.RequireFromString("0.16"))

	done := make(chan error, 1)
	go func() {
		_, err := s.AddBySKU(context.Background(), "LE-001")
		done <- err
	}()

	// Esperar a que la primera búsqueda tome el turno.
	select {
	case <-entro:
	case <-time.After(time.Second):
		t.Fatal("la primera búsqueda nunca arrancó")
	}

	_, err := s.AddBySKU(context.Background(), "LE-001")
	assert.ErrorIs(t, err, ErrBusquedaEnCurso, "un escaneo con otra búsqueda en vuelo se rechaza")

	close(bloqueo)
	require.NoError(t, <-done)
	assert.Equal(t, 1, s.Cart().Len(), "solo la búsqueda que tomó el turno agregó al carrito")
}

func TestFinalizeSaleEnviaSubtotalYVaciaElCarrito(t *testing.T) {
	client := &fakeClient{bySKU: map[string]*dto.ProductResponse{"LE-001": productoLeche()}}
	s := NewSession(client, decimal.RequireFromString("0.16"))

	_, err := s.AddBySKU(context.Background(), "LE-001")
	require.NoError(t, err)
	_, err = s.AddBySKU(context.Background(), "LE-001")
	require.NoError(t, err)

	receipt, err := s.FinalizeSale(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "venta-1", receipt.ID)

	require.NotNil(t, client.lastSale)
	assert.True(t, client.lastSale.Total.Equal(decimal.RequireFromString("2.40")),
		"la venta al contado envía el subtotal sin IVA, fue %s", client.lastSale.Total)
	assert.Equal(t, 0, s.Cart().Len(), "el carrito se vacía tras finalizar")
}

func TestFinalizeBillEnviaDesglose(t *testing.T) {
	client := &fakeClient{bySKU: map[string]*dto.ProductResponse{"LE-001": productoLeche()}}
	s := NewSession(client, decimal.RequireFromString("0.16"))

	_, err := s.AddBySKU(context.Background(), "LE-001")
	require.NoError(t, err)
	_, err = s.AddBySKU(context.Background(), "LE-001")
	require.NoError(t, err)

	bill, err := s.FinalizeBill(context.Background(), "María García")
	require.NoError(t, err)
	assert.Equal(t, "factura-1", bill.ID)

	require.NotNil(t, client.lastBill)
	assert.Equal(t, "María García", client.lastBill.ClientName)
	assert.True(t, client.lastBill.Subtotal.Equal(decimal.RequireFromString("2.40")))
	assert.True(t, client.lastBill.Tax.Equal(decimal.RequireFromString("0.384")))
	assert.True(t, client.lastBill.Total.Equal(decimal.RequireFromString("2.784")))
	assert.Equal(t, 0, s.Cart().Len())
}
