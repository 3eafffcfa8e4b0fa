package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/memory"
)

func nuevoProductoUC() *ProductUseCase {
	return NewProductUseCase(memory.NewProductRepository(0))
}

func TestProductCreateAsignaIDYFecha(t *testing.T) {
	uc := nuevoProductoUC()

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:      "LE-001",
		Name:     "Leche Entera 1L",
		Category: "Lácteos",
		Stock:    150,
		Price:    decimal.RequireFromString("1.20"),
		Supplier: "Proveedor A",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "el servidor asigna el ID")
	assert.NotEmpty(t, out.DateAdded)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("1.20")))
}

func TestProductCreateRechazaSKUDuplicado(t *testing.T) {
	uc := nuevoProductoUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "LE-001", Name: "Leche", Price: decimal.RequireFromString("1.20")})
	require.NoError(t, err)

	// El duplicado se detecta sin distinguir mayúsculas, como el escáner.
	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "le-001", Name: "Otra leche", Price: decimal.RequireFromString("1.00")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreateValidaEntrada(t *testing.T) {
	uc := nuevoProductoUC()
	ctx := context.Background()

	casos := []dto.CreateProductRequest{
		{SKU: "", Name: "Sin SKU"},
		{SKU: "XX-001", Name: ""},
		{SKU: "XX-001", Name: "Stock negativo", Stock: -1},
		{SKU: "XX-001", Name: "Precio negativo", Price: decimal.RequireFromString("-1")},
	}
	for _, in := range casos {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada inválida: %+v", in)
	}
}

func TestProductUpdateParcial(t *testing.T) {
	uc := nuevoProductoUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		SKU: "LE-001", Name: "Leche", Category: "Lácteos",
		Stock: 150, Price: decimal.RequireFromString("1.20"),
	})
	require.NoError(t, err)

	nuevoStock := 80
	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Stock: &nuevoStock})
	require.NoError(t, err)
	assert.Equal(t, 80, out.Stock)
	assert.Equal(t, "Leche", out.Name, "los campos nil no se tocan")
	assert.Equal(t, "Lácteos", out.Category)

	out, err = uc.Update(ctx, "no-existe", dto.UpdateProductRequest{Stock: &nuevoStock})
	require.NoError(t, err)
	assert.Nil(t, out, "actualizar un ID inexistente devuelve (nil, nil)")

	negativo := -5
	_, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{Stock: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDeleteYList(t *testing.T) {
	uc := nuevoProductoUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "LE-001", Name: "Leche", Price: decimal.RequireFromString("1.20")})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrProductNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.Empty(t, list.Items)
}
