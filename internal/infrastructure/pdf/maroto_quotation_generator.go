// Package pdf implementa la generación del PDF de cotización con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: S-MAG + "COTIZACIÓN"  │  N° SQ-... + Fechas         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Img | Cant | Descripción | P.Unit | Total            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / IVA / TOTAL                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: validez de la oferta + leyenda                      │
//	└─────────────────────────────────────────────────────────────┘
//
// Un fallo de maquetación nunca llega al caller: se sustituye por un documento
// mínimo de error para que el pipeline siempre produzca un PDF.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/smag/cotizador-api/internal/application/ports"
	"github.com/smag/cotizador-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que MarotoQuotationGenerator implementa el puerto.
var _ ports.QuotationPDFGenerator = (*MarotoQuotationGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoQuotationGenerator genera el PDF de cotización usando Maroto v2.
type MarotoQuotationGenerator struct{}

// NewMarotoQuotationGenerator construye el generador.
func NewMarotoQuotationGenerator() *MarotoQuotationGenerator {
	return &MarotoQuotationGenerator{}
}

// GenerateQuotationPDF genera el PDF y devuelve sus bytes. Si el documento
// completo falla, degrada al documento mínimo de error.
func (g *MarotoQuotationGenerator) GenerateQuotationPDF(
	_ context.Context,
	q *entity.Quotation,
) ([]byte, error) {
	doc, err := buildDocument(q).Generate()
	if err != nil {
		// Fallback: un documento mínimo en lugar de abortar el pipeline
		doc, err = buildErrorDocument(q.InvoiceNo).Generate()
		if err != nil {
			return nil, fmt.Errorf("pdf: generar documento de respaldo: %w", err)
		}
	}
	return doc.GetBytes(), nil
}

func newMaroto(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("S-MAG", true).
		Build()
	return maroto.New(cfg)
}

func buildDocument(q *entity.Quotation) core.Maroto {
	m := newMaroto("Cotización " + q.InvoiceNo)

	m.AddRows(headerRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(q.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(q))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(q))

	return m
}

// buildErrorDocument documento mínimo cuando la maquetación completa falla.
func buildErrorDocument(invoiceNo string) core.Maroto {
	m := newMaroto("Cotización " + invoiceNo)
	m.AddRows(row.New(20).Add(col.New(12).Add(
		text.New("Error generando la cotización "+invoiceNo, props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 6,
		}),
		text.New("Contacte al área comercial para reemitir el documento.", props.Text{
			Size: 9, Align: align.Center, Top: 14, Color: colorGray,
		}),
	)))
	return m
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y número + fechas (der).
func headerRow(q *entity.Quotation) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New("S-MAG", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
			text.New("Soluciones de red, seguridad y control de acceso", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(q.InvoiceNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+q.InvoiceDate+"   Válida hasta: "+q.ValidUntil, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(q *entity.Quotation) core.Row {
	name := q.CustomerName
	if name == "" {
		name = "Cliente"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("", 1, align.Center),
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total línea", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea; la miniatura se incrusta si está disponible.
func tableDetailRows(items []entity.QuoteLineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		imgCol := col.New(1)
		if len(it.ThumbnailPNG) > 0 {
			imgCol.Add(image.NewFromBytes(it.ThumbnailPNG, extension.Png, props.Rect{
				Percent: 90,
				Center:  true,
			}))
		}

		desc := it.Name
		if it.ShortDescription != "" {
			desc += " — " + it.ShortDescription
		}

		result = append(result, row.New(12).Add(
			imgCol,
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 4},
			)),
			col.New(5).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Left, Top: 2, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 4, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+it.LineTotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 4, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: cascada de totales alineada a la derecha.
func totalsRow(q *entity.Quotation) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(32).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:", 1),
			label(fmt.Sprintf("Descuento (%s%%):", q.DiscountRate.StringFixed(0)), 8),
			label(fmt.Sprintf("IVA (%s%%):", q.TaxRate.StringFixed(0)), 15),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 23,
			}),
		),
		col.New(4).Add(
			value("$"+q.Subtotal.StringFixed(2), 1),
			value("-$"+q.DiscountAmount.StringFixed(2), 8),
			value("$"+q.TaxAmount.StringFixed(2), 15),
			text.New("$"+q.GrandTotal.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 23,
			}),
		),
	)
}

// footerRow: validez y leyenda comercial.
func footerRow(q *entity.Quotation) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Precios válidos hasta "+q.ValidUntil+". Cotización sujeta a disponibilidad de inventario.",
			props.Text{Size: 7.5, Color: colorGray, Top: 2}),
		text.New("Generada por el cotizador S-MAG.",
			props.Text{Size: 7.5, Color: colorGray, Top: 7}),
	))
}
