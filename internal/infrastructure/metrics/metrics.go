// Package metrics expone los contadores de operación del punto de venta y
// el servidor HTTP auxiliar que los publica en /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SalesFinalized ventas al contado finalizadas en caja.
	SalesFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "supermercado_sales_finalized_total",
		Help: "Ventas al contado finalizadas.",
	})

	// BillsIssued facturas de venta emitidas desde facturación.
	BillsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "supermercado_bills_issued_total",
		Help: "Facturas de venta emitidas.",
	})

	// SKULookups búsquedas de SKU en caja, por resultado (found | not_found).
	SKULookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "supermercado_sku_lookups_total",
		Help: "Búsquedas de producto por SKU.",
	}, []string{"result"})
)
