package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/billing"
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
)

// CheckoutHandler expone el cierre de caja: ventas al contado, facturas de
// venta y descarga del comprobante en PDF.
type CheckoutHandler struct {
	checkout *billing.CheckoutUseCase
	pdf      *billing.PDFUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(checkout *billing.CheckoutUseCase, pdf *billing.PDFUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, pdf: pdf}
}

// SubmitSale godoc
// @Summary      Finalizar venta al contado
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitSaleRequest  true  "Líneas del carrito y total"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *CheckoutHandler) SubmitSale(c *fiber.Ctx) error {
	var in dto.SubmitSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkout.SubmitSale(c.Context(), in)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SubmitBill godoc
// @Summary      Emitir factura de venta
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitBillRequest  true  "Cliente, líneas y totales"
// @Success      201   {object}  dto.BillConfirmationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bills [post]
func (h *CheckoutHandler) SubmitBill(c *fiber.Ctx) error {
	var in dto.SubmitBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkout.SubmitBill(c.Context(), in)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante de venta en PDF
// @Tags         checkout
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *CheckoutHandler) Receipt(c *fiber.Ctx) error {
	data, err := h.pdf.GenerateReceipt(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="comprobante.pdf"`)
	return c.Send(data)
}

// checkoutError traduce los errores del caso de uso a respuestas HTTP.
func checkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
