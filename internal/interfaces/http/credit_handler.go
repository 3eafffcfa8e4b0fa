package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/domain"
)

// CreditHandler expone la gestión de créditos: facturas, abonos y notas.
type CreditHandler struct {
	uc *usecase.CreditUseCase
}

// NewCreditHandler construye el handler.
func NewCreditHandler(uc *usecase.CreditUseCase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

// ListInvoices godoc
// @Summary      Listar facturas de crédito
// @Tags         credit
// @Produce      json
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *CreditHandler) ListInvoices(c *fiber.Ctx) error {
	out, err := h.uc.ListInvoices(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RegisterPayment godoc
// @Summary      Registrar abono
// @Tags         credit
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Datos del abono"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *CreditHandler) RegisterPayment(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterPayment(c.Context(), in)
	if err != nil {
		return creditError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayments godoc
// @Summary      Listar abonos
// @Tags         credit
// @Produce      json
// @Success      200  {object}  dto.PaymentListResponse
// @Router       /api/payments [get]
func (h *CreditHandler) ListPayments(c *fiber.Ctx) error {
	out, err := h.uc.ListPayments(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateNote godoc
// @Summary      Emitir nota de crédito
// @Tags         credit
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCreditNoteRequest  true  "Datos de la nota"
// @Success      201   {object}  dto.CreditNoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/credit-notes [post]
func (h *CreditHandler) CreateNote(c *fiber.Ctx) error {
	var in dto.CreateCreditNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateNote(c.Context(), in)
	if err != nil {
		return creditError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListNotes godoc
// @Summary      Listar notas de crédito
// @Tags         credit
// @Produce      json
// @Success      200  {object}  dto.CreditNoteListResponse
// @Router       /api/credit-notes [get]
func (h *CreditHandler) ListNotes(c *fiber.Ctx) error {
	out, err := h.uc.ListNotes(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// creditError traduce los errores del caso de uso a respuestas HTTP.
func creditError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
