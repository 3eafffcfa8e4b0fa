package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

func productoDePrueba(id, sku string) *entity.Product {
	return &entity.Product{
		ID:    id,
		SKU:   sku,
		Name:  "Producto " + id,
		Price: decimal.RequireFromString("1.50"),
		Stock: 10,
	}
}

func TestProductRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(0)

	require.NoError(t, repo.Create(ctx, productoDePrueba("1", "LE-001")))
	require.NoError(t, repo.Create(ctx, productoDePrueba("2", "PA-001")))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "LE-001", got.SKU)

	got.Name = "mutado afuera"
	otra, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Producto 1", otra.Name, "las lecturas devuelven copias")

	got, err = repo.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, got, "no encontrado es (nil, nil)")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID, "el listado conserva el orden de inserción")

	actualizado := productoDePrueba("2", "PA-001")
	actualizado.Stock = 99
	require.NoError(t, repo.Update(ctx, actualizado))
	got, err = repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 99, got.Stock)

	assert.ErrorIs(t, repo.Update(ctx, productoDePrueba("77", "XX-001")), domain.ErrProductNotFound)

	require.NoError(t, repo.Delete(ctx, "1"))
	assert.ErrorIs(t, repo.Delete(ctx, "1"), domain.ErrProductNotFound)
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProductRepositoryGetBySKUSinDistinguirMayusculas(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(0)
	require.NoError(t, repo.Create(ctx, productoDePrueba("1", "LE-001")))

	got, err := repo.GetBySKU(ctx, "le-001")
	require.NoError(t, err)
	require.NotNil(t, got, "el SKU se busca sin distinguir mayúsculas")
	assert.Equal(t, "1", got.ID)

	got, err = repo.GetBySKU(ctx, "ZZ-999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepositoryLatenciaYCancelacion(t *testing.T) {
	repo := NewProductRepository(20 * time.Millisecond)
	require.NoError(t, repo.Create(context.Background(), productoDePrueba("1", "LE-001")))

	inicio := time.Now()
	_, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(inicio), 20*time.Millisecond,
		"cada operación espera la latencia simulada")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled, "la cancelación corta la espera")
}
