package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fila struct {
	Nombre string
	Stock  int
}

func columnasDePrueba() []Column[fila] {
	return []Column[fila]{
		{Title: "Producto", Resolve: func(f fila) string { return f.Nombre }},
		{Title: "Stock", Resolve: func(f fila) string {
			if f.Stock == 0 {
				return "Agotado"
			}
			return strings.Repeat("*", f.Stock)
		}},
	}
}

func TestTableRenderFilas(t *testing.T) {
	tbl := NewTable(columnasDePrueba())
	tbl.SetRows([]fila{{"Leche Entera 1L", 3}, {"Pan Integral", 0}})

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "Producto", "la cabecera debe incluir los títulos")
	assert.Contains(t, out, "Leche Entera 1L", "cada fila debe aparecer en la salida")
	assert.Contains(t, out, "Agotado", "la celda debe ser el valor resuelto por la columna")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "cabecera + regla + una línea por fila")
}

func TestTableCellsProyectaColumnas(t *testing.T) {
	tbl := NewTable(columnasDePrueba())
	tbl.SetRows([]fila{{"Huevos", 2}})

	cells := tbl.Cells()
	require.Len(t, cells, 1)
	assert.Equal(t, []string{"Huevos", "**"}, cells[0])
}

func TestTablePrecedenciaDeEstados(t *testing.T) {
	tbl := NewTable(columnasDePrueba())
	tbl.SetRows([]fila{{"Queso", 4}})
	tbl.SetError(errors.New("fallo de red"))
	tbl.SetLoading(true)

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "Cargando", "cargando tiene precedencia sobre error y filas")

	buf.Reset()
	tbl.SetLoading(false)
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "fallo de red", "el error tiene precedencia sobre las filas")

	buf.Reset()
	tbl.SetError(nil)
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "Queso", "sin carga ni error se muestran las filas")
}

func TestTableRowByKey(t *testing.T) {
	tbl := NewTable(columnasDePrueba()).WithRowKey(func(f fila) string { return f.Nombre })
	tbl.SetRows([]fila{{"Huevos", 2}, {"Queso", 4}})

	row, ok := tbl.RowByKey("Queso")
	assert.True(t, ok)
	assert.Equal(t, 4, row.Stock)

	_, ok = tbl.RowByKey("Leche")
	assert.False(t, ok, "una clave inexistente no encuentra fila")
}

func TestTableEstadoVacio(t *testing.T) {
	tbl := NewTable(columnasDePrueba()).WithEmptyMessage("No hay productos en el inventario")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Equal(t, "No hay productos en el inventario\n", buf.String())
}
