// Package billing contiene los casos de uso de cobro: venta al contado,
// emisión de factura de venta y comprobante PDF.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/metrics"
)

// CheckoutUseCase finaliza ventas al contado y facturas de venta.
//
// El servidor no confía en los montos del cliente: recalcula subtotal, IVA y
// total desde el catálogo y rechaza la operación si el total enviado difiere.
type CheckoutUseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	billRepo    repository.BillRepository
	taxRate     decimal.Decimal
}

// NewCheckoutUseCase construye el caso de uso con la tasa de IVA configurada.
func NewCheckoutUseCase(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	billRepo repository.BillRepository,
	taxRate decimal.Decimal,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		billRepo:    billRepo,
		taxRate:     taxRate,
	}
}

// resolveItems valida las líneas contra el catálogo y devuelve el snapshot
// de venta más el subtotal exacto.
func (uc *CheckoutUseCase) resolveItems(ctx context.Context, in []dto.SaleItemRequest) ([]entity.SaleItem, decimal.Decimal, error) {
	if len(in) == 0 {
		return nil, decimal.Zero, domain.ErrEmptyCart
	}
	items := make([]entity.SaleItem, 0, len(in))
	subtotal := decimal.Zero
	for _, line := range in {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product == nil {
			return nil, decimal.Zero, fmt.Errorf("producto %q: %w", line.ProductID, domain.ErrProductNotFound)
		}
		item := entity.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.Subtotal())
	}
	return items, subtotal, nil
}

// SubmitSale finaliza una venta al contado y devuelve el comprobante.
func (uc *CheckoutUseCase) SubmitSale(ctx context.Context, in dto.SubmitSaleRequest) (*dto.ReceiptResponse, error) {
	items, total, err := uc.resolveItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	if !in.Total.Equal(total) {
		return nil, fmt.Errorf("total enviado %s difiere del calculado %s: %w",
			in.Total, total, domain.ErrInvalidInput)
	}

	sale := &entity.CashSale{
		ID:    uuid.New().String(),
		Date:  time.Now(),
		Items: items,
		Total: total,
	}
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	log.Info().
		Str("sale_id", sale.ID).
		Int("lines", len(sale.Items)).
		Str("total", sale.Total.StringFixed(2)).
		Msg("venta al contado finalizada")
	metrics.SalesFinalized.Inc()

	return toReceiptResponse(sale), nil
}

// SubmitBill emite una factura de venta con desglose de subtotal, IVA y total.
func (uc *CheckoutUseCase) SubmitBill(ctx context.Context, in dto.SubmitBillRequest) (*dto.BillConfirmationResponse, error) {
	if in.ClientName == "" {
		return nil, domain.ErrInvalidInput
	}
	items, subtotal, err := uc.resolveItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	tax := subtotal.Mul(uc.taxRate)
	total := subtotal.Add(tax)
	if !in.Total.Equal(total) {
		return nil, fmt.Errorf("total enviado %s difiere del calculado %s: %w",
			in.Total, total, domain.ErrInvalidInput)
	}

	bill := &entity.Bill{
		ID:         uuid.New().String(),
		ClientName: in.ClientName,
		Date:       time.Now(),
		Items:      items,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      total,
	}
	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	log.Info().
		Str("bill_id", bill.ID).
		Str("client", bill.ClientName).
		Int("lines", len(bill.Items)).
		Str("subtotal", bill.Subtotal.StringFixed(2)).
		Str("tax", bill.Tax.StringFixed(2)).
		Str("total", bill.Total.StringFixed(2)).
		Msg("factura de venta emitida")
	metrics.BillsIssued.Inc()

	return &dto.BillConfirmationResponse{
		ID:         bill.ID,
		ClientName: bill.ClientName,
		Date:       bill.Date.Format(time.RFC3339),
		Subtotal:   bill.Subtotal,
		Tax:        bill.Tax,
		Total:      bill.Total,
	}, nil
}

func toReceiptResponse(sale *entity.CashSale) *dto.ReceiptResponse {
	resp := &dto.ReceiptResponse{
		ID:    sale.ID,
		Date:  sale.Date.Format(time.RFC3339),
		Total: sale.Total,
		Items: make([]dto.SaleItemResponse, 0, len(sale.Items)),
	}
	for _, it := range sale.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return resp
}
