// Package analytics construye el resumen del Dashboard a partir de los
// repositorios de inventario, créditos y ventas.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

const (
	lowStockThreshold = 10 // umbral de alerta de inventario bajo
	weeklyDays        = 7  // días del widget de ventas de la semana
)

// DashboardUseCase genera los KPIs y widgets de la pantalla principal.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
	saleRepo    repository.SaleRepository
	billRepo    repository.BillRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	saleRepo repository.SaleRepository,
	billRepo repository.BillRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
		saleRepo:    saleRepo,
		billRepo:    billRepo,
	}
}

// GetSummary arma el DashboardSummaryDTO.
//
// Cuatro lecturas en paralelo (cada repositorio simula su propia latencia):
//  1. List productos  → agotados + alertas de inventario bajo
//  2. List facturas   → emitidas + monto pendiente/vencido
//  3. List ventas     → ingresos del día, semana y ranking
//  4. List facturas de venta → se suman a los ingresos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type invoicesResult struct {
		list []*entity.Invoice
		err  error
	}
	type salesResult struct {
		list []*entity.CashSale
		err  error
	}
	type billsResult struct {
		list []*entity.Bill
		err  error
	}

	productsCh := make(chan productsResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	salesCh := make(chan salesResult, 1)
	billsCh := make(chan billsResult, 1)

	go func() {
		list, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.invoiceRepo.List(ctx)
		invoicesCh <- invoicesResult{list, err}
	}()
	go func() {
		list, err := uc.saleRepo.List(ctx)
		salesCh <- salesResult{list, err}
	}()
	go func() {
		list, err := uc.billRepo.List(ctx)
		billsCh <- billsResult{list, err}
	}()

	products := <-productsCh
	invoices := <-invoicesCh
	sales := <-salesCh
	bills := <-billsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", invoices.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if bills.err != nil {
		return nil, fmt.Errorf("dashboard: facturas de venta: %w", bills.err)
	}

	now := time.Now()
	summary := &dto.DashboardSummaryDTO{
		InvoicesIssued: len(invoices.list),
	}

	// ── Inventario: agotados y alertas ────────────────────────────────────────
	for _, p := range products.list {
		if p.Stock == 0 {
			summary.OutOfStock++
		}
		if p.LowStock(lowStockThreshold) {
			summary.LowStock = append(summary.LowStock, dto.LowStockDTO{
				ProductID: p.ID,
				Name:      p.Name,
				SKU:       p.SKU,
				Stock:     p.Stock,
			})
		}
	}
	sort.Slice(summary.LowStock, func(i, j int) bool {
		return summary.LowStock[i].Stock < summary.LowStock[j].Stock
	})

	// ── Créditos: monto pendiente y vencido ───────────────────────────────────
	pending := decimal.Zero
	for _, inv := range invoices.list {
		if inv.Status == entity.InvoiceStatusPendiente || inv.Status == entity.InvoiceStatusVencida {
			pending = pending.Add(inv.Amount)
		}
	}
	summary.PendingAmount = pending

	// ── Ingresos: hoy, semana y ranking de unidades ───────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -(weeklyDays - 1))

	revenueByDay := make(map[string]decimal.Decimal, weeklyDays)
	unitsByProduct := map[string]*dto.TopProductDTO{}
	today := decimal.Zero

	addRevenue := func(date time.Time, amount decimal.Decimal, items []entity.SaleItem) {
		if !date.Before(todayStart) {
			today = today.Add(amount)
		}
		if !date.Before(weekStart) {
			key := date.Format("2006-01-02")
			revenueByDay[key] = revenueByDay[key].Add(amount)
		}
		for _, it := range items {
			top, ok := unitsByProduct[it.ProductID]
			if !ok {
				top = &dto.TopProductDTO{ProductID: it.ProductID, Name: it.ProductName}
				unitsByProduct[it.ProductID] = top
			}
			top.Units += it.Quantity
		}
	}
	for _, s := range sales.list {
		addRevenue(s.Date, s.Total, s.Items)
	}
	for _, b := range bills.list {
		addRevenue(b.Date, b.Total, b.Items)
	}
	summary.TodayRevenue = today

	for i := 0; i < weeklyDays; i++ {
		d := weekStart.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		summary.WeeklySales = append(summary.WeeklySales, dto.DailySalesDTO{
			Day:     key,
			Revenue: revenueByDay[key],
		})
	}

	for _, top := range unitsByProduct {
		summary.TopProducts = append(summary.TopProducts, *top)
	}
	sort.Slice(summary.TopProducts, func(i, j int) bool {
		if summary.TopProducts[i].Units != summary.TopProducts[j].Units {
			return summary.TopProducts[i].Units > summary.TopProducts[j].Units
		}
		return summary.TopProducts[i].Name < summary.TopProducts[j].Name
	})

	return summary, nil
}
