package usecase_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smag/cotizador-api/internal/application/dto"
	"github.com/smag/cotizador-api/internal/application/usecase"
	"github.com/smag/cotizador-api/internal/domain/entity"
	"github.com/smag/cotizador-api/internal/domain/repository"
	"github.com/smag/cotizador-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type mockExtractor struct {
	result *dto.ExtractionResult
	err    error
}

func (m *mockExtractor) ExtractQuoteItems(context.Context, string) (*dto.ExtractionResult, error) {
	return m.result, m.err
}

type mockCatalog struct {
	products []entity.Product
}

func (m *mockCatalog) All() []entity.Product { return m.products }

func (m *mockCatalog) Find(query string) []entity.Product {
	query = strings.ToLower(query)
	var out []entity.Product
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.SKU), query) ||
			strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

type mockSequencer struct{ n int }

func (m *mockSequencer) Next() (string, error) {
	m.n++
	return fmt.Sprintf("SQ-20260831-%04d", m.n), nil
}

var fakePDF = []byte("%PDF-1.4 contenido de prueba")

type mockPDFGen struct{}

func (mockPDFGen) GenerateQuotationPDF(context.Context, *entity.Quotation) ([]byte, error) {
	return fakePDF, nil
}

type mockThumbs struct{ err error }

func (m *mockThumbs) FetchPNG(context.Context, string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []byte("png"), nil
}

type mockPDFRepo struct {
	saved map[string][]byte
}

func newMockPDFRepo() *mockPDFRepo { return &mockPDFRepo{saved: map[string][]byte{}} }

func (m *mockPDFRepo) Save(filename string, data []byte) error {
	m.saved[filename] = data
	return nil
}
func (m *mockPDFRepo) List() ([]repository.StoredPDF, error) { return nil, nil }
func (m *mockPDFRepo) Delete(string) error                   { return nil }
func (m *mockPDFRepo) Path(string) (string, error)           { return "", nil }

func buildUseCase(extractor *mockExtractor, cat *mockCatalog, repo *mockPDFRepo, thumbs *mockThumbs) *usecase.QuotationUseCase {
	return usecase.NewQuotationUseCase(
		extractor, cat, usecase.NewPricingCalculator(), &mockSequencer{},
		mockPDFGen{}, thumbs, repo, "http://127.0.0.1:8080", logger.Nop(),
	)
}

func catalogFixture() *mockCatalog {
	return &mockCatalog{products: []entity.Product{
		{SKU: "UXG-Lite", Name: "UniFi Gateway Lite", BasePrice: decimal.NewFromInt(100),
			ShortDescription: "Gateway compacto para oficinas pequeñas"},
		{SKU: "CAM-01", Name: "Cámara bullet exterior",
			ShortDescription: "Cámara 2K de exterior con PoE"}, // sin precio base
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Analyze
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalyze_FalloDeExtraccionDegradaAVacio(t *testing.T) {
	uc := buildUseCase(
		&mockExtractor{err: errors.New("red caída")},
		catalogFixture(), newMockPDFRepo(), &mockThumbs{},
	)

	resp := uc.Analyze(context.Background(), "necesito 3 cámaras")

	assert.True(t, resp.Success, "un fallo de extracción no debe fallar la petición")
	assert.Empty(t, resp.Products)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "No se detectaron productos")
}

func TestAnalyze_EmparejaYValora(t *testing.T) {
	uc := buildUseCase(
		&mockExtractor{result: &dto.ExtractionResult{
			CustomerName: "ACME S.A.S.",
			Items: []dto.ExtractedItem{
				{SKU: "UXG-Lite", Quantity: 2},
				{Name: "cámara"},              // sin SKU: se busca por nombre; sin cantidad: 1
				{Name: "producto inexistente"}, // sin coincidencia: se descarta
			},
		}},
		catalogFixture(), newMockPDFRepo(), &mockThumbs{},
	)

	resp := uc.Analyze(context.Background(), "2 gateways y una cámara para ACME")

	assert.True(t, resp.Success)
	assert.Equal(t, "ACME S.A.S.", resp.SuggestedCustomer)
	require.Len(t, resp.Products, 2, "el ítem sin coincidencia debe descartarse en silencio")

	gateway := resp.Products[0]
	assert.Equal(t, "UXG-Lite", gateway.SKU)
	assert.Equal(t, 2, gateway.Quantity)
	assert.True(t, decimal.RequireFromString("110").Equal(gateway.UnitPrice),
		"precio base 100 con margen 10%% = 110")
	assert.True(t, decimal.RequireFromString("220").Equal(gateway.LineTotal))

	camera := resp.Products[1]
	assert.Equal(t, 1, camera.Quantity, "cantidad por defecto 1")
	assert.True(t, decimal.RequireFromString("55").Equal(camera.UnitPrice),
		"sin precio base debe usarse el respaldo 50 → 55 con margen")
}

func TestAnalyze_CantidadNoPositivaSeNormalizaAUno(t *testing.T) {
	uc := buildUseCase(
		&mockExtractor{result: &dto.ExtractionResult{
			Items: []dto.ExtractedItem{{SKU: "UXG-Lite", Quantity: -4}},
		}},
		catalogFixture(), newMockPDFRepo(), &mockThumbs{},
	)

	resp := uc.Analyze(context.Background(), "gateways")

	require.Len(t, resp.Products, 1)
	assert.Equal(t, 1, resp.Products[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Finalize
// ──────────────────────────────────────────────────────────────────────────────

func finalizeFixture() dto.FinalizeRequest {
	return dto.FinalizeRequest{
		CustomerName: "ACME S.A.S.",
		InvoiceDate:  "2026-08-31",
		ValidUntil:   "2026-09-30",
		TaxRate:      decimal.NewFromInt(5),
		DiscountRate: decimal.NewFromInt(10),
		Products: []dto.QuoteItem{
			{
				SKU: "UXG-Lite", Name: "UniFi Gateway Lite", Quantity: 2,
				UnitPrice: decimal.NewFromInt(100),
				LineTotal: decimal.NewFromInt(999999), // valor del cliente: debe ignorarse
			},
			{
				SKU: "CAM-01", Name: "Cámara", Quantity: 1,
				UnitPrice: decimal.NewFromInt(50),
			},
		},
	}
}

func TestFinalize_RecalculaLineTotalDelServidor(t *testing.T) {
	repo := newMockPDFRepo()
	uc := buildUseCase(&mockExtractor{}, catalogFixture(), repo, &mockThumbs{})

	resp, err := uc.Finalize(context.Background(), finalizeFixture())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	// subtotal 250, descuento 25, IVA 11.25 → total 236.25 (caso a mano del spec de pricing)
	assert.True(t, decimal.RequireFromString("236.25").Equal(resp.GrandTotal),
		"grand_total recalculado en servidor: %s", resp.GrandTotal)
}

func TestFinalize_PersisteYDevuelveElPDF(t *testing.T) {
	repo := newMockPDFRepo()
	uc := buildUseCase(&mockExtractor{}, catalogFixture(), repo, &mockThumbs{})

	resp, err := uc.Finalize(context.Background(), finalizeFixture())
	require.NoError(t, err)

	assert.Equal(t, "SQ-20260831-0001", resp.InvoiceNo)
	assert.Equal(t, "SQ-20260831-0001.pdf", resp.Filename)
	assert.Equal(t, "http://127.0.0.1:8080/pdf/SQ-20260831-0001.pdf", resp.PDFURL)
	assert.Equal(t, base64.StdEncoding.EncodeToString(fakePDF), resp.PDFBase64)

	saved, ok := repo.saved[resp.Filename]
	require.True(t, ok, "el PDF debe persistirse bajo <invoice_no>.pdf")
	assert.Equal(t, fakePDF, saved)
}

func TestFinalize_MiniaturaFallidaNoAbortaElFlujo(t *testing.T) {
	req := finalizeFixture()
	req.Products[0].Thumbnail = "https://cdn.example.com/imagen.jpg"

	uc := buildUseCase(&mockExtractor{}, catalogFixture(), newMockPDFRepo(),
		&mockThumbs{err: errors.New("timeout")})

	resp, err := uc.Finalize(context.Background(), req)
	require.NoError(t, err, "un fallo de miniatura es best-effort, no un error")
	assert.True(t, resp.Success)
}

func TestFinalize_NumerosConsecutivos(t *testing.T) {
	uc := buildUseCase(&mockExtractor{}, catalogFixture(), newMockPDFRepo(), &mockThumbs{})

	first, err := uc.Finalize(context.Background(), finalizeFixture())
	require.NoError(t, err)
	second, err := uc.Finalize(context.Background(), finalizeFixture())
	require.NoError(t, err)

	assert.Equal(t, "SQ-20260831-0001", first.InvoiceNo)
	assert.Equal(t, "SQ-20260831-0002", second.InvoiceNo)
}
