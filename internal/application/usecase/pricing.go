package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/smag/cotizador-api/internal/domain/entity"
)

// Valores comerciales por defecto: margen fijo del 10% sobre el precio base y
// precio de respaldo cuando un producto del catálogo no trae base_price.
var (
	defaultMargin       = decimal.NewFromFloat(0.10)
	defaultFallbackBase = decimal.NewFromInt(50)

	hundred = decimal.NewFromInt(100)
)

// PricingCalculator aplica el margen comercial y calcula totales.
// El contrato con el frontend: el cliente puede sobreescribir unit_price en
// finalize, pero nunca la aritmética — line_total y la cascada descuento/IVA
// se recalculan siempre aquí.
type PricingCalculator struct {
	margin       decimal.Decimal // fracción, ej. 0.10
	fallbackBase decimal.Decimal
}

// NewPricingCalculator construye el calculador con los valores por defecto.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{
		margin:       defaultMargin,
		fallbackBase: defaultFallbackBase,
	}
}

// UnitPrice devuelve round(base * (1 + margen), 2).
// Un precio base ausente o no positivo usa el precio de respaldo.
func (c *PricingCalculator) UnitPrice(base decimal.Decimal) decimal.Decimal {
	if base.LessThanOrEqual(decimal.Zero) {
		base = c.fallbackBase
	}
	return base.Mul(decimal.NewFromInt(1).Add(c.margin)).Round(2)
}

// LineTotal devuelve round(unitPrice * quantity, 2).
func (c *PricingCalculator) LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// QuoteTotals cascada de totales de una cotización.
type QuoteTotals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
}

// Totals recalcula la cascada completa sobre líneas ya valoradas:
//
//	subtotal = Σ line_total
//	descuento = subtotal * discountRate/100
//	impuesto  = (subtotal - descuento) * taxRate/100
//	total     = subtotal - descuento + impuesto
//
// Cada importe se redondea a 2 decimales.
func (c *PricingCalculator) Totals(items []entity.QuoteLineItem, taxRate, discountRate decimal.Decimal) QuoteTotals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal)
	}
	subtotal = subtotal.Round(2)

	discount := subtotal.Mul(discountRate).Div(hundred).Round(2)
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(taxRate).Div(hundred).Round(2)

	return QuoteTotals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		GrandTotal:     taxable.Add(tax).Round(2),
	}
}
