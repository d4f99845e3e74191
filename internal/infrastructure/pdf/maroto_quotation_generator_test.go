package pdf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smag/cotizador-api/internal/domain/entity"
	infrapdf "github.com/smag/cotizador-api/internal/infrastructure/pdf"
)

func sampleQuotation() *entity.Quotation {
	return &entity.Quotation{
		InvoiceNo:    "SQ-20260831-0001",
		CustomerName: "ACME S.A.S.",
		InvoiceDate:  "2026-08-31",
		ValidUntil:   "2026-09-30",
		TaxRate:      decimal.NewFromInt(5),
		DiscountRate: decimal.NewFromInt(10),
		Items: []entity.QuoteLineItem{
			{
				SKU: "UXG-Lite", Name: "UniFi Gateway Lite",
				ShortDescription: "Gateway compacto",
				Quantity:         2,
				UnitPrice:        decimal.RequireFromString("110"),
				LineTotal:        decimal.RequireFromString("220"),
			},
		},
		Subtotal:       decimal.RequireFromString("220"),
		DiscountAmount: decimal.RequireFromString("22"),
		TaxAmount:      decimal.RequireFromString("9.90"),
		GrandTotal:     decimal.RequireFromString("207.90"),
	}
}

func TestGenerateQuotationPDF_ProduceBytesPDF(t *testing.T) {
	g := infrapdf.NewMarotoQuotationGenerator()

	out, err := g.GenerateQuotationPDF(context.Background(), sampleQuotation())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "la salida debe ser un PDF")
}

func TestGenerateQuotationPDF_CotizacionSinItems(t *testing.T) {
	q := sampleQuotation()
	q.Items = nil
	q.Subtotal = decimal.Zero
	q.GrandTotal = decimal.Zero

	g := infrapdf.NewMarotoQuotationGenerator()
	out, err := g.GenerateQuotationPDF(context.Background(), q)
	require.NoError(t, err, "una cotización sin líneas también debe producir PDF")
	assert.NotEmpty(t, out)
}
