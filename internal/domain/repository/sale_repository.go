package repository

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// SaleRepository puerto de ventas al contado finalizadas en caja.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.CashSale) error
	GetByID(ctx context.Context, id string) (*entity.CashSale, error)
	List(ctx context.Context) ([]*entity.CashSale, error)
}

// BillRepository puerto de facturas de venta emitidas desde facturación.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	List(ctx context.Context) ([]*entity.Bill, error)
}
