package console

// Paginator controla una lista paginada: página 1-indexada, tamaño fijo y
// total de elementos. Los límites de corte son semiabiertos [Start, End).
type Paginator struct {
	page  int
	size  int
	total int
}

// NewPaginator construye el paginador en la página 1.
func NewPaginator(size int) *Paginator {
	if size < 1 {
		size = 1
	}
	return &Paginator{page: 1, size: size}
}

// Page devuelve la página actual (1-indexada).
func (p *Paginator) Page() int { return p.page }

// Size devuelve el tamaño de página.
func (p *Paginator) Size() int { return p.size }

// TotalPages devuelve ceil(total/size). Con total 0 devuelve 0.
func (p *Paginator) TotalPages() int {
	return (p.total + p.size - 1) / p.size
}

// SetTotal fija el total de elementos y ajusta la página actual al nuevo
// máximo cuando la colección se encoge, para no quedar en una página vacía.
func (p *Paginator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	if tp := p.TotalPages(); tp > 0 && p.page > tp {
		p.page = tp
	}
	if p.page < 1 {
		p.page = 1
	}
}

// Bounds devuelve los índices [start, end) de la página actual sobre la
// colección completa.
func (p *Paginator) Bounds() (start, end int) {
	start = (p.page - 1) * p.size
	if start > p.total {
		start = p.total
	}
	end = start + p.size
	if end > p.total {
		end = p.total
	}
	return start, end
}

// HasNext indica si existe una página siguiente.
func (p *Paginator) HasNext() bool { return p.page < p.TotalPages() }

// HasPrev indica si existe una página anterior.
func (p *Paginator) HasPrev() bool { return p.page > 1 }

// Next avanza una página si es posible. Devuelve true si avanzó.
func (p *Paginator) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.page++
	return true
}

// Prev retrocede una página si es posible. Devuelve true si retrocedió.
func (p *Paginator) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.page--
	return true
}
