package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voxbill/internal/domain"
	"voxbill/internal/service"
)

// InvoiceHandler handles invoice generation, save and download endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	renderService  service.RenderService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceSvc service.InvoiceService, renderSvc service.RenderService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceSvc, renderService: renderSvc}
}

// generateTextRequest accepts either field name used by the frontend revisions.
type generateTextRequest struct {
	InvoiceText string `json:"invoiceText"`
	Text        string `json:"text"`
}

// GenerateFromText handles POST /api/v1/generate_invoice_text
// @Summary Generate a structured invoice from free text
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body generateTextRequest true "Transaction description"
// @Success 200 {object} APIResponse{data=service.GenerateOutput} "Extracted invoice"
// @Failure 400 {object} APIResponse "No text provided"
// @Failure 502 {object} APIResponse "Extraction failed"
// @Router /generate_invoice_text [post]
func (h *InvoiceHandler) GenerateFromText(c *gin.Context) {
	text := ""
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req generateTextRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			text = req.InvoiceText
			if text == "" {
				text = req.Text
			}
		}
	} else {
		text = c.PostForm("invoiceText")
		if text == "" {
			text = c.PostForm("text")
		}
	}

	out, err := h.invoiceService.GenerateFromText(c.Request.Context(), text)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}

// Save handles POST /api/v1/save_invoice
// @Summary Render and archive an invoice
// @Description Archives a JSON snapshot and the rendered PDF, returning a download reference
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body domain.InvoiceRecord true "Invoice record (optionally wrapped in {\"invoice\": ...})"
// @Success 200 {object} APIResponse{data=service.RenderResult} "Archived document reference"
// @Failure 400 {object} APIResponse "Malformed payload"
// @Failure 500 {object} APIResponse "PDF generation failed"
// @Router /save_invoice [post]
func (h *InvoiceHandler) Save(c *gin.Context) {
	rec, err := decodeInvoicePayload(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MALFORMED_PAYLOAD", "could not parse invoice payload")
		return
	}

	result, err := h.renderService.SaveInvoice(c.Request.Context(), rec)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Download handles GET /download_pdf/:filename
// @Summary Download an archived PDF
// @Tags invoices
// @Produce application/pdf
// @Param filename path string true "Archived PDF file name"
// @Success 200 {file} binary "PDF document"
// @Failure 404 {object} APIResponse "File not found"
// @Router /download_pdf/{filename} [get]
func (h *InvoiceHandler) Download(c *gin.Context) {
	name := c.Param("filename")
	doc, err := h.renderService.OpenDocument(name)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+dispositionName(name)+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

// dispositionName strips characters that would break out of the quoted
// Content-Disposition filename.
func dispositionName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r < 0x20 {
			return -1
		}
		return r
	}, name)
}

// decodeInvoicePayload reads an InvoiceRecord from a JSON body or, for form
// posts, from an "invoice" field holding JSON. A {"invoice": {...}} wrapper is
// unwrapped either way.
func decodeInvoicePayload(c *gin.Context) (*domain.InvoiceRecord, error) {
	var raw []byte
	if strings.HasPrefix(c.ContentType(), "application/json") {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
		raw = body
	} else {
		raw = []byte(c.PostForm("invoice"))
	}

	var wrapper struct {
		Invoice json.RawMessage `json:"invoice"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Invoice) > 0 {
		raw = wrapper.Invoice
	}

	var rec domain.InvoiceRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
