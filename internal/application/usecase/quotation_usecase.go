package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/smag/cotizador-api/internal/application/dto"
	"github.com/smag/cotizador-api/internal/application/ports"
	"github.com/smag/cotizador-api/internal/domain/entity"
	"github.com/smag/cotizador-api/internal/domain/repository"
	"github.com/smag/cotizador-api/pkg/logger"
)

// extractionTimeout acota la llamada al LLM para no bloquear los goroutines
// del servidor; el adaptador HTTP tiene además su propio timeout de red.
const extractionTimeout = 10 * time.Second

// QuotationUseCase orquesta el flujo de tres pasos del cotizador:
// analyze (texto libre → borrador valorado), finalize (borrador editado →
// PDF numerado y persistido) y el acceso al catálogo.
type QuotationUseCase struct {
	extractor ports.ExtractionService
	catalog   repository.CatalogRepository
	pricing   *PricingCalculator
	sequencer ports.InvoiceSequencer
	pdfGen    ports.QuotationPDFGenerator
	thumbs    ports.ThumbnailFetcher
	pdfRepo   repository.PDFRepository
	baseURL   string
	log       *logger.Logger
}

// NewQuotationUseCase construye el caso de uso inyectando los puertos.
func NewQuotationUseCase(
	extractor ports.ExtractionService,
	catalog repository.CatalogRepository,
	pricing *PricingCalculator,
	sequencer ports.InvoiceSequencer,
	pdfGen ports.QuotationPDFGenerator,
	thumbs ports.ThumbnailFetcher,
	pdfRepo repository.PDFRepository,
	baseURL string,
	log *logger.Logger,
) *QuotationUseCase {
	return &QuotationUseCase{
		extractor: extractor,
		catalog:   catalog,
		pricing:   pricing,
		sequencer: sequencer,
		pdfGen:    pdfGen,
		thumbs:    thumbs,
		pdfRepo:   pdfRepo,
		baseURL:   baseURL,
		log:       log,
	}
}

// ListCatalog devuelve el catálogo completo para el buscador del frontend.
func (uc *QuotationUseCase) ListCatalog() []dto.CatalogProductResponse {
	products := uc.catalog.All()
	out := make([]dto.CatalogProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToCatalogProductResponse(p))
	}
	return out
}

// Analyze ejecuta el paso 1: extracción por IA, emparejamiento contra el
// catálogo y valoración inicial. Un fallo de extracción degrada a "nada
// detectado" y la petición sigue siendo exitosa. Los ítems sin coincidencia
// en el catálogo se descartan del borrador.
func (uc *QuotationUseCase) Analyze(ctx context.Context, prompt string) *dto.AnalyzeResponse {
	ctx, cancel := context.WithTimeout(ctx, extractionTimeout)
	defer cancel()

	extraction, err := uc.extractor.ExtractQuoteItems(ctx, prompt)
	if err != nil {
		uc.log.Warn().Err(err).Msg("extracción IA fallida; se continúa con resultado vacío")
		extraction = &dto.ExtractionResult{}
	}

	lines := make([]entity.QuoteLineItem, 0, len(extraction.Items))
	for _, item := range extraction.Items {
		query := item.SKU
		if query == "" {
			query = item.Name
		}
		matches := uc.catalog.Find(query)
		if len(matches) == 0 {
			uc.log.Debug().Str("query", query).Msg("ítem extraído sin coincidencia en catálogo; descartado")
			continue
		}

		product := matches[0]
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		unitPrice := uc.pricing.UnitPrice(product.BasePrice)

		lines = append(lines, entity.QuoteLineItem{
			SKU:              product.SKU,
			Name:             product.Name,
			Brand:            product.Brand,
			Description:      product.Description,
			ShortDescription: product.ShortDescription,
			Thumbnail:        product.Thumbnail,
			Quantity:         quantity,
			UnitPrice:        unitPrice,
			LineTotal:        uc.pricing.LineTotal(unitPrice, quantity),
		})
	}

	warnings := ReviewItems(lines)

	products := make([]dto.QuoteItem, 0, len(lines))
	for _, l := range lines {
		products = append(products, toQuoteItem(l))
	}

	return &dto.AnalyzeResponse{
		Success:           true,
		SuggestedCustomer: extraction.CustomerName,
		Products:          products,
		Warnings:          warnings,
	}
}

// Finalize ejecuta el paso 2: recalcula line_total y la cascada de totales en
// el servidor (el cliente puede editar precio y cantidad, nunca la aritmética),
// resuelve miniaturas, obtiene el consecutivo del día, genera el PDF y lo
// persiste bajo <invoice_no>.pdf.
func (uc *QuotationUseCase) Finalize(ctx context.Context, req dto.FinalizeRequest) (*dto.FinalizeResponse, error) {
	lines := make([]entity.QuoteLineItem, 0, len(req.Products))
	for _, p := range req.Products {
		line := entity.QuoteLineItem{
			SKU:              p.SKU,
			Name:             p.Name,
			Brand:            p.Brand,
			Description:      p.Description,
			ShortDescription: p.ShortDescription,
			UseCase:          p.UseCase,
			Thumbnail:        p.Thumbnail,
			Quantity:         p.Quantity,
			UnitPrice:        p.UnitPrice,
			// line_total del cliente se ignora: siempre unit_price * quantity
			LineTotal: uc.pricing.LineTotal(p.UnitPrice, p.Quantity),
		}

		if line.Thumbnail != "" {
			png, err := uc.thumbs.FetchPNG(ctx, line.Thumbnail)
			if err != nil {
				uc.log.Warn().Err(err).Str("url", line.Thumbnail).Msg("miniatura no disponible; se omite")
			} else {
				line.ThumbnailPNG = png
			}
		}

		lines = append(lines, line)
	}

	totals := uc.pricing.Totals(lines, req.TaxRate, req.DiscountRate)

	invoiceNo, err := uc.sequencer.Next()
	if err != nil {
		return nil, fmt.Errorf("consecutivo de cotización: %w", err)
	}

	quotation := &entity.Quotation{
		InvoiceNo:      invoiceNo,
		CustomerName:   req.CustomerName,
		InvoiceDate:    req.InvoiceDate,
		ValidUntil:     req.ValidUntil,
		TaxRate:        req.TaxRate,
		DiscountRate:   req.DiscountRate,
		Items:          lines,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		TaxAmount:      totals.TaxAmount,
		GrandTotal:     totals.GrandTotal,
	}

	pdfBytes, err := uc.pdfGen.GenerateQuotationPDF(ctx, quotation)
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}

	filename := invoiceNo + ".pdf"
	if err := uc.pdfRepo.Save(filename, pdfBytes); err != nil {
		return nil, fmt.Errorf("persistir PDF: %w", err)
	}

	uc.log.Info().
		Str("invoice_no", invoiceNo).
		Int("items", len(lines)).
		Str("grand_total", totals.GrandTotal.String()).
		Msg("cotización finalizada")

	return &dto.FinalizeResponse{
		Success:    true,
		InvoiceNo:  invoiceNo,
		Filename:   filename,
		PDFURL:     fmt.Sprintf("%s/pdf/%s", uc.baseURL, filename),
		PDFBase64:  base64.StdEncoding.EncodeToString(pdfBytes),
		GrandTotal: totals.GrandTotal,
	}, nil
}

func toQuoteItem(l entity.QuoteLineItem) dto.QuoteItem {
	return dto.QuoteItem{
		SKU:              l.SKU,
		Name:             l.Name,
		Brand:            l.Brand,
		Description:      l.Description,
		ShortDescription: l.ShortDescription,
		UseCase:          l.UseCase,
		Thumbnail:        l.Thumbnail,
		Quantity:         l.Quantity,
		UnitPrice:        l.UnitPrice,
		LineTotal:        l.LineTotal,
	}
}
