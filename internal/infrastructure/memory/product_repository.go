package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// ProductRepository repositorio de productos en memoria.
// Las lecturas devuelven copias; los punteros internos no se comparten.
type ProductRepository struct {
	latencySimulator
	mu       sync.RWMutex
	products []*entity.Product
}

// NewProductRepository construye el repositorio con la latencia simulada indicada.
func NewProductRepository(latency time.Duration) *ProductRepository {
	return &ProductRepository{latencySimulator: latencySimulator{latency: latency}}
}

// Create agrega el producto al final del catálogo.
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.products = append(r.products, &cp)
	return nil
}

// GetByID devuelve (nil, nil) si el producto no existe.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetBySKU busca sin distinguir mayúsculas/minúsculas, igual que el lector
// de códigos de la caja. Devuelve (nil, nil) si no hay coincidencia.
func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if strings.EqualFold(p.SKU, sku) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto por ID.
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == product.ID {
			cp := *product
			r.products[i] = &cp
			return nil
		}
	}
	return domain.ErrProductNotFound
}

// Delete elimina el producto por ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

// List devuelve el catálogo completo en orden de inserción.
func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
