package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/memory"
)

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	products := memory.NewProductRepository(0)
	invoices := memory.NewInvoiceRepository(0)
	sales := memory.NewSaleRepository(0)
	bills := memory.NewBillRepository(0)
	memory.SeedAll(products, invoices, memory.NewPaymentRepository(0), memory.NewCreditNoteRepository(0))

	// Un producto agotado para el KPI de agotados.
	require.NoError(t, products.Create(ctx, &entity.Product{
		ID: "20", SKU: "AG-001", Name: "Aceite Girasol", Stock: 0,
		Price: decimal.RequireFromString("3.10"),
	}))

	// Una venta de hoy y otra de hace diez días (fuera de la semana).
	hoy := time.Now()
	require.NoError(t, sales.Create(ctx, &entity.CashSale{
		ID:   "V-1",
		Date: hoy,
		Items: []entity.SaleItem{
			{ProductID: "1", ProductName: "Leche Entera 1L", Quantity: 3, UnitPrice: decimal.RequireFromString("1.20")},
		},
		Total: decimal.RequireFromString("3.60"),
	}))
	require.NoError(t, sales.Create(ctx, &entity.CashSale{
		ID:   "V-2",
		Date: hoy.AddDate(0, 0, -10),
		Items: []entity.SaleItem{
			{ProductID: "2", ProductName: "Pan de Molde Blanco", Quantity: 1, UnitPrice: decimal.RequireFromString("2.50")},
		},
		Total: decimal.RequireFromString("2.50"),
	}))
	require.NoError(t, bills.Create(ctx, &entity.Bill{
		ID:         "F-1",
		ClientName: "María García",
		Date:       hoy,
		Items: []entity.SaleItem{
			{ProductID: "1", ProductName: "Leche Entera 1L", Quantity: 2, UnitPrice: decimal.RequireFromString("1.20")},
		},
		Total: decimal.RequireFromString("2.784"),
	}))

	uc := NewDashboardUseCase(products, invoices, sales, bills)
	summary, err := uc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 8, summary.InvoicesIssued)
	assert.Equal(t, 1, summary.OutOfStock, "solo el producto con stock 0")

	// Pendientes + vencidas del seed: 150.75+500+75.20+95 + 85.50+250 = 1156.45
	assert.True(t, summary.PendingAmount.Equal(decimal.RequireFromString("1156.45")),
		"monto pendiente fue %s", summary.PendingAmount)

	// Hoy: venta 3.60 + factura 2.784; la venta vieja no cuenta.
	assert.True(t, summary.TodayRevenue.Equal(decimal.RequireFromString("6.384")),
		"ingresos de hoy fueron %s", summary.TodayRevenue)

	require.Len(t, summary.WeeklySales, 7, "siempre siete días, con ceros incluidos")
	ultimo := summary.WeeklySales[6]
	assert.Equal(t, hoy.Format("2006-01-02"), ultimo.Day)
	assert.True(t, ultimo.Revenue.Equal(decimal.RequireFromString("6.384")))

	// Alertas de inventario bajo ordenadas por stock ascendente.
	require.NotEmpty(t, summary.LowStock)
	assert.Equal(t, "AG-001", summary.LowStock[0].SKU)
	for i := 1; i < len(summary.LowStock); i++ {
		assert.LessOrEqual(t, summary.LowStock[i-1].Stock, summary.LowStock[i].Stock)
	}

	// Ranking de unidades: la leche suma 3+2=5 unidades y va primera.
	require.NotEmpty(t, summary.TopProducts)
	assert.Equal(t, "Leche Entera 1L", summary.TopProducts[0].Name)
	assert.Equal(t, 5, summary.TopProducts[0].Units)
}
