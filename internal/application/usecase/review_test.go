package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smag/cotizador-api/internal/application/usecase"
	"github.com/smag/cotizador-api/internal/domain/entity"
)

// línea válida que no dispara ninguna advertencia.
func okItem(name string) entity.QuoteLineItem {
	return entity.QuoteLineItem{
		Name:             name,
		ShortDescription: "Descripción suficientemente larga para pasar",
		Quantity:         1,
		UnitPrice:        decimal.NewFromInt(100),
	}
}

func TestReviewItems_ListaVaciaUnaSolaAdvertencia(t *testing.T) {
	notes := usecase.ReviewItems(nil)

	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "No se detectaron productos")
}

// Dos líneas con defectos distintos deben producir dos advertencias
// independientes en la misma llamada (sin cortocircuito).
func TestReviewItems_ChequeosIndependientesPorLinea(t *testing.T) {
	qtyZero := okItem("Gateway")
	qtyZero.Quantity = 0

	priceZero := okItem("Cámara")
	priceZero.UnitPrice = decimal.Zero

	notes := usecase.ReviewItems([]entity.QuoteLineItem{qtyZero, priceZero})

	require.Len(t, notes, 2)
	assert.Contains(t, notes[0], "cantidad de Gateway")
	assert.Contains(t, notes[1], "precio de Cámara")
}

func TestReviewItems_DescripcionCorta(t *testing.T) {
	it := okItem("Switch")
	it.ShortDescription = "muy corta"

	notes := usecase.ReviewItems([]entity.QuoteLineItem{it})

	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "descripción corta de Switch")
}

func TestReviewItems_MasDeCincoItemsSugiereDescuento(t *testing.T) {
	items := make([]entity.QuoteLineItem, 6)
	for i := range items {
		items[i] = okItem("Producto")
	}

	notes := usecase.ReviewItems(items)

	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "descuento")
}

func TestReviewItems_LineasValidasSinAdvertencias(t *testing.T) {
	notes := usecase.ReviewItems([]entity.QuoteLineItem{okItem("A"), okItem("B")})
	assert.Empty(t, notes)
}

// Una misma línea con varios defectos acumula todas sus advertencias.
func TestReviewItems_VariosDefectosEnLaMismaLinea(t *testing.T) {
	bad := entity.QuoteLineItem{Name: "X", Quantity: 0, UnitPrice: decimal.Zero, ShortDescription: ""}

	notes := usecase.ReviewItems([]entity.QuoteLineItem{bad})
	assert.Len(t, notes, 3, "cantidad, precio y descripción deben reportarse por separado")
}
