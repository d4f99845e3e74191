package dto

import "github.com/shopspring/decimal"

// AnalyzeRequest entrada del paso 1: texto libre del usuario.
type AnalyzeRequest struct {
	Prompt string `json:"prompt"`
}

// QuoteItem línea de cotización tal como viaja entre frontend y backend.
// Entre analyze y finalize el cliente puede editar unit_price y quantity;
// line_total se recalcula siempre en el servidor.
type QuoteItem struct {
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	Brand            string          `json:"brand"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	UseCase          string          `json:"use_case"`
	Thumbnail        string          `json:"thumbnail,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	LineTotal        decimal.Decimal `json:"line_total"`
}

// AnalyzeResponse salida del paso 1: borrador editable de la cotización.
type AnalyzeResponse struct {
	Success           bool        `json:"success"`
	SuggestedCustomer string      `json:"suggested_customer"`
	Products          []QuoteItem `json:"products"`
	Warnings          []string    `json:"warnings"`
}

// FinalizeRequest entrada del paso 2: datos editados listos para el PDF.
type FinalizeRequest struct {
	CustomerName string          `json:"customer_name"`
	InvoiceDate  string          `json:"invoice_date"`
	ValidUntil   string          `json:"valid_until"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	Products     []QuoteItem     `json:"products"`
}

// FinalizeResponse salida del paso 2: número asignado y PDF generado.
type FinalizeResponse struct {
	Success    bool            `json:"success"`
	InvoiceNo  string          `json:"invoice_no"`
	Filename   string          `json:"filename"`
	PDFURL     string          `json:"pdf_url"`
	PDFBase64  string          `json:"pdf_base64"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// HistoryEntry vista de solo lectura sobre un PDF persistido.
type HistoryEntry struct {
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"` // fecha de modificación del archivo, "2006-01-02 15:04"
}

// DeleteResponse confirmación de borrado de un PDF del historial.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
