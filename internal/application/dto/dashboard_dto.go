package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary:
// KPIs del día más las alertas y rankings que alimentan los widgets.
type DashboardSummaryDTO struct {
	TodayRevenue   decimal.Decimal `json:"today_revenue"`   // ingresos del día (contado + facturas)
	InvoicesIssued int             `json:"invoices_issued"` // facturas emitidas acumuladas
	OutOfStock     int             `json:"out_of_stock"`    // productos con stock 0
	PendingAmount  decimal.Decimal `json:"pending_amount"`  // monto de facturas pendientes/vencidas

	LowStock    []LowStockDTO   `json:"low_stock"`    // alertas de inventario bajo
	WeeklySales []DailySalesDTO `json:"weekly_sales"` // ventas por día, últimos 7 días
	TopProducts []TopProductDTO `json:"top_products"` // unidades vendidas por producto
}

// LowStockDTO producto bajo el umbral de alerta.
type LowStockDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Stock     int    `json:"stock"`
}

// DailySalesDTO ingresos de un día de la semana en curso.
type DailySalesDTO struct {
	Day     string          `json:"day"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
}

// TopProductDTO ranking de unidades vendidas.
type TopProductDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Units     int    `json:"units"`
}
