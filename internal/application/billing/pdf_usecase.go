package billing

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica de un comprobante de venta.
type PDFUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(saleRepo repository.SaleRepository, generator ReceiptPDFGenerator) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, generator: generator}
}

// GenerateReceipt devuelve los bytes del PDF del comprobante.
func (uc *PDFUseCase) GenerateReceipt(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceiptPDF(ctx, sale)
}
