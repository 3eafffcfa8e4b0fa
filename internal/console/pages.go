package console

import "fmt"

// Page identifica una pantalla de la consola. Enum cerrado.
type Page string

const (
	PageDashboard   Page = "dashboard"
	PageInventarios Page = "inventarios"
	PageContado     Page = "contado"
	PageFacturacion Page = "facturacion"
	PageCreditos    Page = "creditos"
)

// ParsePage valida y convierte el nombre de una pantalla.
func ParsePage(s string) (Page, error) {
	switch Page(s) {
	case PageDashboard, PageInventarios, PageContado, PageFacturacion, PageCreditos:
		return Page(s), nil
	}
	return "", fmt.Errorf("pantalla desconocida: %q", s)
}

// CreditTab identifica una pestaña dentro de la pantalla de créditos.
// Enum cerrado.
type CreditTab string

const (
	CreditTabFacturas CreditTab = "facturas"
	CreditTabAbonos   CreditTab = "abonos"
	CreditTabNotas    CreditTab = "notas"
)

// ParseCreditTab valida y convierte el nombre de una pestaña de créditos.
func ParseCreditTab(s string) (CreditTab, error) {
	switch CreditTab(s) {
	case CreditTabFacturas, CreditTabAbonos, CreditTabNotas:
		return CreditTab(s), nil
	}
	return "", fmt.Errorf("pestaña desconocida: %q", s)
}
