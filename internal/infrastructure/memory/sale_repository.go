package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// SaleRepository ventas al contado en memoria.
type SaleRepository struct {
	latencySimulator
	mu    sync.RWMutex
	sales []*entity.CashSale
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository(latency time.Duration) *SaleRepository {
	return &SaleRepository{latencySimulator: latencySimulator{latency: latency}}
}

// Create agrega la venta finalizada.
func (r *SaleRepository) Create(ctx context.Context, sale *entity.CashSale) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *sale
	cp.Items = append([]entity.SaleItem(nil), sale.Items...)
	r.sales = append(r.sales, &cp)
	return nil
}

// GetByID devuelve (nil, nil) si la venta no existe.
func (r *SaleRepository) GetByID(ctx context.Context, id string) (*entity.CashSale, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sales {
		if s.ID == id {
			cp := *s
			cp.Items = append([]entity.SaleItem(nil), s.Items...)
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve las ventas en orden de emisión.
func (r *SaleRepository) List(ctx context.Context) ([]*entity.CashSale, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.CashSale, 0, len(r.sales))
	for _, s := range r.sales {
		cp := *s
		cp.Items = append([]entity.SaleItem(nil), s.Items...)
		out = append(out, &cp)
	}
	return out, nil
}

// BillRepository facturas de venta en memoria.
type BillRepository struct {
	latencySimulator
	mu    sync.RWMutex
	bills []*entity.Bill
}

// NewBillRepository construye el repositorio.
func NewBillRepository(latency time.Duration) *BillRepository {
	return &BillRepository{latencySimulator: latencySimulator{latency: latency}}
}

// Create agrega la factura emitida.
func (r *BillRepository) Create(ctx context.Context, bill *entity.Bill) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *bill
	cp.Items = append([]entity.SaleItem(nil), bill.Items...)
	r.bills = append(r.bills, &cp)
	return nil
}

// List devuelve las facturas en orden de emisión.
func (r *BillRepository) List(ctx context.Context) ([]*entity.Bill, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Bill, 0, len(r.bills))
	for _, b := range r.bills {
		cp := *b
		cp.Items = append([]entity.SaleItem(nil), b.Items...)
		out = append(out, &cp)
	}
	return out, nil
}
