package ports

import (
	"context"

	"github.com/smag/cotizador-api/internal/domain/entity"
)

// QuotationPDFGenerator genera el documento PDF de una cotización finalizada.
// Un fallo de maquetación no debe abortar el pipeline: el adaptador sustituye
// el contenido por un documento mínimo de error y solo devuelve error si ni
// siquiera ese documento puede generarse.
type QuotationPDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, q *entity.Quotation) ([]byte, error)
}

// ThumbnailFetcher descarga una miniatura remota y la devuelve normalizada
// como PNG listo para incrustar. Es best-effort: el caller trata cualquier
// error como "sin miniatura".
type ThumbnailFetcher interface {
	FetchPNG(ctx context.Context, url string) ([]byte, error)
}

// InvoiceSequencer emite el siguiente identificador de cotización con formato
// SQ-YYYYMMDD-####, estrictamente creciente dentro del día.
type InvoiceSequencer interface {
	Next() (string, error)
}
