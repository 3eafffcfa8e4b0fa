// Package billing mantiene la sesión de caja de la consola: el carrito en
// curso y el escaneo de productos por SKU contra el backend.
package billing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/console/api"
	"github.com/jhoicas/supermercado-api/internal/domain/cart"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// ErrBusquedaEnCurso se devuelve cuando se escanea un SKU mientras otra
// búsqueda sigue en vuelo. El REPL la ignora sin tocar el carrito.
var ErrBusquedaEnCurso = errors.New("hay una búsqueda de SKU en curso")

// Session sesión de caja: un carrito y el cliente del backend. Una búsqueda
// de SKU a la vez; los escaneos que lleguen mientras tanto se rechazan.
type Session struct {
	client api.Client
	cart   *cart.Cart

	mu       sync.Mutex
	buscando bool
}

// NewSession construye la sesión con la tasa de IVA del carrito.
func NewSession(client api.Client, taxRate decimal.Decimal) *Session {
	return &Session{client: client, cart: cart.New(taxRate)}
}

// Cart expone el carrito de la sesión.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// AddBySKU busca el SKU en el backend y agrega una unidad al carrito.
//
// Si ya hay una búsqueda en vuelo devuelve ErrBusquedaEnCurso. Si el SKU no
// existe devuelve un error que cita el SKU tal como se tecleó y deja el
// carrito intacto.
func (s *Session) AddBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	s.mu.Lock()
	if s.buscando {
		s.mu.Unlock()
		return nil, ErrBusquedaEnCurso
	}
	s.buscando = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.buscando = false
		s.mu.Unlock()
	}()

	found, err := s.client.FetchProductBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("producto con SKU %q no encontrado", sku)
	}

	product := entity.Product{
		ID:       found.ID,
		SKU:      found.SKU,
		Name:     found.Name,
		Category: found.Category,
		Stock:    found.Stock,
		Price:    found.Price,
		Supplier: found.Supplier,
	}
	s.cart.AddOrIncrement(product)
	return &product, nil
}

// FinalizeSale envía la venta al contado (sin IVA) y vacía el carrito si el
// servidor la acepta.
func (s *Session) FinalizeSale(ctx context.Context) (*dto.ReceiptResponse, error) {
	totals := s.cart.Totals()
	receipt, err := s.client.SubmitSale(ctx, dto.SubmitSaleRequest{
		Items: s.lineRequests(),
		Total: totals.Subtotal,
	})
	if err != nil {
		return nil, err
	}
	s.cart.Clear()
	return receipt, nil
}

// FinalizeBill emite la factura de venta con desglose de IVA y vacía el
// carrito si el servidor la acepta.
func (s *Session) FinalizeBill(ctx context.Context, clientName string) (*dto.BillConfirmationResponse, error) {
	totals := s.cart.Totals()
	bill, err := s.client.SubmitBill(ctx, dto.SubmitBillRequest{
		ClientName: clientName,
		Items:      s.lineRequests(),
		Subtotal:   totals.Subtotal,
		Tax:        totals.Tax,
		Total:      totals.Total,
	})
	if err != nil {
		return nil, err
	}
	s.cart.Clear()
	return bill, nil
}

func (s *Session) lineRequests() []dto.SaleItemRequest {
	items := s.cart.Items()
	out := make([]dto.SaleItemRequest, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SaleItemRequest{ProductID: it.Product.ID, Quantity: it.Quantity})
	}
	return out
}
