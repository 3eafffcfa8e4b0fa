package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// SeedAll carga los datos de demostración del supermercado en los
// repositorios. Se ejecuta una vez al arrancar la API, sin pasar por la
// latencia simulada.
func SeedAll(
	products *ProductRepository,
	invoices *InvoiceRepository,
	payments *PaymentRepository,
	notes *CreditNoteRepository,
) {
	seedProducts(products)
	seedInvoices(invoices)
	seedPayments(payments)
	seedCreditNotes(notes)
}

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func seedProducts(r *ProductRepository) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []*entity.Product{
		{ID: "1", SKU: "LE-001", Name: "Leche Entera 1L", Category: "Lácteos", Stock: 150, Price: price("1.20"), Supplier: "Proveedor A", DateAdded: day("2023-10-01")},
		{ID: "2", SKU: "PA-001", Name: "Pan de Molde Blanco", Category: "Panadería", Stock: 80, Price: price("2.50"), Supplier: "Proveedor B", DateAdded: day("2023-10-02")},
		{ID: "3", SKU: "HU-001", Name: "Huevos Docena", Category: "General", Stock: 200, Price: price("3.00"), Supplier: "Proveedor A", DateAdded: day("2023-10-01")},
		{ID: "4", SKU: "FR-001", Name: "Manzanas Kilo", Category: "Frutas y Verduras", Stock: 50, Price: price("1.80"), Supplier: "Proveedor C", DateAdded: day("2023-10-03")},
		{ID: "8", SKU: "BE-001", Name: "Refresco Cola 2L", Category: "Bebidas", Stock: 9, Price: price("2.00"), Supplier: "Proveedor A", DateAdded: day("2023-10-02")},
		{ID: "9", SKU: "LA-002", Name: "Queso Fresco 500g", Category: "Lácteos", Stock: 4, Price: price("4.50"), Supplier: "Proveedor F", DateAdded: day("2023-10-04")},
	}
}

func seedInvoices(r *InvoiceRepository) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = []*entity.Invoice{
		{ID: "FAC-001", ClientName: "Juan Pérez", IssueDate: day("2023-10-01"), DueDate: day("2023-10-31"), Amount: price("150.75"), Status: entity.InvoiceStatusPendiente},
		{ID: "FAC-002", ClientName: "Ana Gómez", IssueDate: day("2023-09-15"), DueDate: day("2023-10-15"), Amount: price("320.00"), Status: entity.InvoiceStatusCancelada},
		{ID: "FAC-003", ClientName: "Carlos Ruiz", IssueDate: day("2023-08-20"), DueDate: day("2023-09-20"), Amount: price("85.50"), Status: entity.InvoiceStatusVencida},
		{ID: "FAC-004", ClientName: "Luisa Fernández", IssueDate: day("2023-10-05"), DueDate: day("2023-11-05"), Amount: price("500.00"), Status: entity.InvoiceStatusPendiente},
		{ID: "FAC-005", ClientName: "Mario Vargas", IssueDate: day("2023-10-02"), DueDate: day("2023-11-02"), Amount: price("75.20"), Status: entity.InvoiceStatusPendiente},
		{ID: "FAC-006", ClientName: "Isabel Allende", IssueDate: day("2023-09-25"), DueDate: day("2023-10-25"), Amount: price("120.00"), Status: entity.InvoiceStatusCancelada},
		{ID: "FAC-007", ClientName: "Jorge Luis Borges", IssueDate: day("2023-08-01"), DueDate: day("2023-09-01"), Amount: price("250.00"), Status: entity.InvoiceStatusVencida},
		{ID: "FAC-008", ClientName: "Gabriel García", IssueDate: day("2023-10-10"), DueDate: day("2023-11-10"), Amount: price("95.00"), Status: entity.InvoiceStatusPendiente},
	}
}

func seedPayments(r *PaymentRepository) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = []*entity.Payment{
		{ID: "P-001", InvoiceID: "FAC-002", Date: day("2023-10-14"), Amount: price("320.00"), Method: entity.PaymentMethodTarjeta},
		{ID: "P-002", InvoiceID: "FAC-001", Date: day("2023-10-15"), Amount: price("50.00"), Method: entity.PaymentMethodEfectivo},
	}
}

func seedCreditNotes(r *CreditNoteRepository) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = []*entity.CreditNote{
		{ID: "NC-001", InvoiceID: "FAC-001", ClientName: "Juan Pérez", Date: day("2023-10-03"), Amount: price("20.00"), Reason: "Producto dañado"},
		{ID: "NC-002", InvoiceID: "FAC-005", ClientName: "Restaurante El Buen Sabor", Date: day("2023-10-01"), Amount: price("50.00"), Reason: "Devolución de mercancía"},
	}
}
