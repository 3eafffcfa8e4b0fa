package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabsSelect(t *testing.T) {
	tabs := NewTabs(CreditTabFacturas)
	assert.Equal(t, CreditTabFacturas, tabs.Active(), "arranca en la pestaña inicial")

	assert.True(t, tabs.Select(CreditTabAbonos), "cambiar de pestaña devuelve true")
	assert.Equal(t, CreditTabAbonos, tabs.Active())

	assert.False(t, tabs.Select(CreditTabAbonos), "seleccionar la misma pestaña no cambia nada")
}

func TestTabsSyncExternoManda(t *testing.T) {
	tabs := NewTabs(PageDashboard)
	tabs.Select(PageContado)

	// El valor externo manda: la sincronización pisa la selección interna.
	tabs.Sync(PageCreditos)
	assert.Equal(t, PageCreditos, tabs.Active())
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage("inventarios")
	assert.NoError(t, err)
	assert.Equal(t, PageInventarios, p)

	_, err = ParsePage("perfil")
	assert.Error(t, err, "una pantalla fuera del enum debe rechazarse")
}

func TestParseCreditTab(t *testing.T) {
	tab, err := ParseCreditTab("notas")
	assert.NoError(t, err)
	assert.Equal(t, CreditTabNotas, tab)

	_, err = ParseCreditTab("historial")
	assert.Error(t, err, "una pestaña fuera del enum debe rechazarse")
}
