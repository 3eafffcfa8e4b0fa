// Package excel genera el reporte de inventario en formato .xlsx para
// descarga desde la consola administrativa.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// InventoryReport serializa el catálogo completo a un libro de Excel con
// una fila por producto.
type InventoryReport struct{}

// NewInventoryReport construye el generador.
func NewInventoryReport() *InventoryReport {
	return &InventoryReport{}
}

// Generate devuelve los bytes del .xlsx con el inventario.
func (r *InventoryReport) Generate(products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"ID", "SKU", "Producto", "Categoría", "Stock", "Precio", "Proveedor", "Fecha de alta"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: escribir cabecera: %w", err)
	}

	rowIdx := 2
	for _, p := range products {
		excelRow := []interface{}{
			p.ID,
			p.SKU,
			p.Name,
			p.Category,
			p.Stock,
			p.Price.StringFixed(2),
			p.Supplier,
			p.DateAdded.Format("2006-01-02"),
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de la fila %d: %w", rowIdx, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: escribir fila %d: %w", rowIdx, err)
		}
		rowIdx++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
