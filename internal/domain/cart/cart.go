// Package cart implementa el motor de carrito/facturación del punto de venta.
//
// Invariantes:
//   - nunca existe una línea con cantidad <= 0
//   - a lo sumo una línea por producto (id); el orden de inserción se conserva
//   - los totales se derivan en cada lectura, sin caché ni redondeo intermedio
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// LineItem línea del carrito: snapshot del producto más la cantidad pedida.
type LineItem struct {
	Product  entity.Product
	Quantity int
}

// Subtotal precio por cantidad de la línea.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Totals desglose monetario del carrito. Los montos son exactos; el redondeo
// a 2 decimales se aplica solo al presentar (StringFixed), nunca aquí, para
// no acumular error entre sumas repetidas.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Cart colección ordenada de líneas con la tasa de IVA a aplicar.
// No es segura para uso concurrente; cada sesión de caja posee la suya.
type Cart struct {
	items   []LineItem
	taxRate decimal.Decimal
}

// New crea un carrito vacío con la tasa de impuesto indicada (ej. 0.16).
func New(taxRate decimal.Decimal) *Cart {
	return &Cart{taxRate: taxRate}
}

// AddOrIncrement agrega el producto con cantidad 1, o incrementa en 1 la
// línea existente. Las líneas nuevas van al final; las existentes conservan
// su posición.
func (c *Cart) AddOrIncrement(p entity.Product) {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{Product: p, Quantity: 1})
}

// SetQuantity fija la cantidad de la línea del producto. Cantidad <= 0
// elimina la línea. Si el producto no está en el carrito no hace nada
// (mismo comportamiento que el control de cantidad de la pantalla de caja).
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove elimina la línea del producto. Idempotente: si no existe, no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear vacía el carrito (cancelar o finalizar la venta).
func (c *Cart) Clear() {
	c.items = nil
}

// Items devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len cantidad de líneas del carrito.
func (c *Cart) Len() int { return len(c.items) }

// Totals recalcula subtotal, IVA y total desde el estado actual:
//
//	subtotal = Σ precio × cantidad
//	tax      = subtotal × taxRate
//	total    = subtotal + tax
func (c *Cart) Totals() Totals {
	subtotal := decimal.Zero
	for _, li := range c.items {
		subtotal = subtotal.Add(li.Subtotal())
	}
	tax := subtotal.Mul(c.taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
