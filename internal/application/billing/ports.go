package billing

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// ReceiptPDFGenerator puerto para la representación gráfica del comprobante
// de venta. La implementación concreta vive en infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.CashSale) ([]byte, error)
}
