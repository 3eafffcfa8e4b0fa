// Package http registra los handlers de Fiber de la consola administrativa.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/analytics"
	"github.com/jhoicas/supermercado-api/internal/application/billing"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/excel"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	ProductRepo repository.ProductRepository
	CreditUC    *usecase.CreditUseCase
	CheckoutUC  *billing.CheckoutUseCase
	PDFUC       *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	Report      *excel.InventoryReport
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ProductRepo, deps.Report)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	// Rutas literales antes de /:id para que Fiber no las capture como parámetro.
	products.Get("/export", productHandler.Export)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Créditos: facturas, abonos y notas de crédito
	creditHandler := NewCreditHandler(deps.CreditUC)
	api.Get("/invoices", creditHandler.ListInvoices)
	payments := api.Group("/payments")
	payments.Get("/", creditHandler.ListPayments)
	payments.Post("/", creditHandler.RegisterPayment)
	notes := api.Group("/credit-notes")
	notes.Get("/", creditHandler.ListNotes)
	notes.Post("/", creditHandler.CreateNote)

	// Caja: ventas al contado y facturas de venta
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC, deps.PDFUC)
	sales := api.Group("/sales")
	sales.Post("/", checkoutHandler.SubmitSale)
	sales.Get("/:id/receipt", checkoutHandler.Receipt)
	api.Post("/bills", checkoutHandler.SubmitBill)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.Summary)
}
