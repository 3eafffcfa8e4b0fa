package excel

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

func TestGenerateEscribeCabeceraYFilas(t *testing.T) {
	report := NewInventoryReport()

	data, err := report.Generate([]*entity.Product{
		{ID: "1", SKU: "LE-001", Name: "Leche Entera 1L", Category: "Lácteos", Stock: 150, Price: decimal.RequireFromString("1.20"), Supplier: "Proveedor A"},
		{ID: "2", SKU: "PA-001", Name: "Pan de Molde Blanco", Category: "Panadería", Stock: 80, Price: decimal.RequireFromString("2.50"), Supplier: "Proveedor B"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err, "el archivo generado debe ser un .xlsx válido")
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	cab, err := f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "SKU", cab)

	nombre, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Leche Entera 1L", nombre)

	precio, err := f.GetCellValue(sheet, "F3")
	require.NoError(t, err)
	assert.Equal(t, "2.50", precio, "el precio se exporta con dos decimales")
}
