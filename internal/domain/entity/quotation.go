package entity

import "github.com/shopspring/decimal"

// QuoteLineItem es una línea de cotización ya emparejada con el catálogo y con precio.
// Entre analyze y finalize el cliente puede editar UnitPrice y Quantity;
// LineTotal se recalcula siempre en el servidor (LineTotal == UnitPrice * Quantity).
type QuoteLineItem struct {
	SKU              string
	Name             string
	Brand            string
	Description      string
	ShortDescription string
	UseCase          string
	Thumbnail        string // URL original de la miniatura
	ThumbnailPNG     []byte // PNG normalizado para incrustar en el PDF; nil = sin imagen
	Quantity         int
	UnitPrice        decimal.Decimal
	LineTotal        decimal.Decimal
}

// Quotation es el agregado finalizado. Se crea una sola vez en finalize y se
// persiste únicamente como su PDF renderizado (no hay registro estructurado aparte).
type Quotation struct {
	InvoiceNo      string // SQ-YYYYMMDD-#### — único, creciente dentro del día
	CustomerName   string
	InvoiceDate    string
	ValidUntil     string
	TaxRate        decimal.Decimal // porcentaje, ej. 19
	DiscountRate   decimal.Decimal // porcentaje, ej. 10
	Items          []QuoteLineItem
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
}
