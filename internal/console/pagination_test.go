package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatorBoundsYTotalPages(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(8)

	assert.Equal(t, 2, p.TotalPages(), "8 elementos a 5 por página son 2 páginas")

	start, end := p.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end, "la primera página corta [0, 5)")

	assert.True(t, p.Next())
	start, end = p.Bounds()
	assert.Equal(t, 5, start)
	assert.Equal(t, 8, end, "la última página corta [5, 8)")
}

func TestPaginatorNavegacionAcotada(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(8)

	assert.False(t, p.HasPrev(), "en la página 1 no hay anterior")
	assert.False(t, p.Prev(), "Prev en la página 1 no hace nada")
	assert.Equal(t, 1, p.Page())

	assert.True(t, p.Next())
	assert.False(t, p.Next(), "Next en la última página no hace nada")
	assert.Equal(t, 2, p.Page())
}

func TestPaginatorAjusteAlEncogerse(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(11)
	p.Next()
	p.Next()
	assert.Equal(t, 3, p.Page())

	// Al borrar elementos la colección cae a 2 páginas: la actual se ajusta.
	p.SetTotal(7)
	assert.Equal(t, 2, p.Page(), "la página se ajusta al nuevo máximo")

	start, end := p.Bounds()
	assert.Equal(t, 5, start)
	assert.Equal(t, 7, end)
}

func TestPaginatorTotalCero(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(0)

	assert.Equal(t, 0, p.TotalPages())
	assert.Equal(t, 1, p.Page(), "sin elementos se queda en la página 1")

	start, end := p.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.False(t, p.HasNext())
	assert.False(t, p.HasPrev())
}
