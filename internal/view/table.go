// Package view renderiza datos tabulares en la terminal. Es el equivalente
// textual de una tabla de administración: columnas declarativas, estados de
// carga y error, y mensaje configurable cuando no hay filas.
package view

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Column describe una columna: título de cabecera y cómo resolver el valor
// de la celda a partir de la fila.
type Column[T any] struct {
	Title   string
	Resolve func(row T) string
}

// Table renderiza una colección homogénea de filas contra un conjunto fijo
// de columnas. Los estados tienen precedencia: cargando > error > vacío > filas.
type Table[T any] struct {
	columns  []Column[T]
	emptyMsg string
	rowKey   func(row T) string

	loading bool
	err     error
	rows    []T
}

// NewTable construye la tabla con sus columnas.
func NewTable[T any](columns []Column[T]) *Table[T] {
	return &Table[T]{
		columns:  columns,
		emptyMsg: "No hay datos para mostrar",
	}
}

// WithEmptyMessage reemplaza el mensaje del estado vacío.
func (t *Table[T]) WithEmptyMessage(msg string) *Table[T] {
	t.emptyMsg = msg
	return t
}

// WithRowKey fija la clave estable de cada fila, usada por RowByKey.
func (t *Table[T]) WithRowKey(fn func(row T) string) *Table[T] {
	t.rowKey = fn
	return t
}

// RowByKey busca la fila cuya clave coincide. Requiere WithRowKey.
func (t *Table[T]) RowByKey(key string) (T, bool) {
	var zero T
	if t.rowKey == nil {
		return zero, false
	}
	for _, row := range t.rows {
		if t.rowKey(row) == key {
			return row, true
		}
	}
	return zero, false
}

// SetLoading marca o desmarca el estado de carga.
func (t *Table[T]) SetLoading(loading bool) { t.loading = loading }

// SetError fija el error a mostrar (nil lo limpia).
func (t *Table[T]) SetError(err error) { t.err = err }

// SetRows reemplaza las filas.
func (t *Table[T]) SetRows(rows []T) { t.rows = rows }

// Cells devuelve la matriz de celdas resueltas (sin cabecera). No aplica
// la precedencia de estados: es la proyección cruda filas × columnas.
func (t *Table[T]) Cells() [][]string {
	cells := make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		line := make([]string, 0, len(t.columns))
		for _, col := range t.columns {
			line = append(line, col.Resolve(row))
		}
		cells = append(cells, line)
	}
	return cells
}

// Render escribe la tabla en w respetando la precedencia de estados.
func (t *Table[T]) Render(w io.Writer) error {
	switch {
	case t.loading:
		_, err := fmt.Fprintln(w, "Cargando...")
		return err
	case t.err != nil:
		_, err := fmt.Fprintf(w, "Error: %s\n", t.err)
		return err
	case len(t.rows) == 0:
		_, err := fmt.Fprintln(w, t.emptyMsg)
		return err
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Title)
	}
	cells := t.Cells()
	for _, line := range cells {
		for i, cell := range line {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = pad(col.Title, widths[i])
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "  ")); err != nil {
		return err
	}

	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(rule, "  ")); err != nil {
		return err
	}

	for _, line := range cells {
		out := make([]string, len(line))
		for i, cell := range line {
			out[i] = pad(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(out, "  ")); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
