package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
)

// HTTPClient implementa Client contra el servidor real de cmd/api.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient construye el cliente con la URL base del servidor.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// apiError error devuelto por el servidor, con el código de la respuesta.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api: %s (%s, HTTP %d)", e.Message, e.Code, e.Status)
}

// do ejecuta la petición y decodifica la respuesta en out (si out no es nil).
// Los estados no exitosos se convierten en *apiError con el cuerpo decodificado.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: serializar petición: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: crear petición: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var errBody dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message == "" {
			errBody.Message = resp.Status
		}
		return &apiError{Status: resp.StatusCode, Code: errBody.Code, Message: errBody.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) FetchProducts(ctx context.Context) (*dto.ProductListResponse, error) {
	var out dto.ProductListResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) FetchProductBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	err := c.do(ctx, http.MethodGet, "/api/products/sku/"+sku, nil, &out)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPost, "/api/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPut, "/api/products/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}

func (c *HTTPClient) FetchInvoices(ctx context.Context) (*dto.InvoiceListResponse, error) {
	var out dto.InvoiceListResponse
	if err := c.do(ctx, http.MethodGet, "/api/invoices", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) FetchPayments(ctx context.Context) (*dto.PaymentListResponse, error) {
	var out dto.PaymentListResponse
	if err := c.do(ctx, http.MethodGet, "/api/payments", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreatePayment(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	var out dto.PaymentResponse
	if err := c.do(ctx, http.MethodPost, "/api/payments", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) FetchCreditNotes(ctx context.Context) (*dto.CreditNoteListResponse, error) {
	var out dto.CreditNoteListResponse
	if err := c.do(ctx, http.MethodGet, "/api/credit-notes", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateCreditNote(ctx context.Context, in dto.CreateCreditNoteRequest) (*dto.CreditNoteResponse, error) {
	var out dto.CreditNoteResponse
	if err := c.do(ctx, http.MethodPost, "/api/credit-notes", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SubmitSale(ctx context.Context, in dto.SubmitSaleRequest) (*dto.ReceiptResponse, error) {
	var out dto.ReceiptResponse
	if err := c.do(ctx, http.MethodPost, "/api/sales", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SubmitBill(ctx context.Context, in dto.SubmitBillRequest) (*dto.BillConfirmationResponse, error) {
	var out dto.BillConfirmationResponse
	if err := c.do(ctx, http.MethodPost, "/api/bills", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) FetchDashboard(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var out dto.DashboardSummaryDTO
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
