package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smag/cotizador-api/internal/domain/entity"
)

// ReviewItems inspecciona las líneas ya valoradas y devuelve advertencias
// legibles para el usuario. Son solo informativas: nunca bloquean el flujo y
// la función no falla. Todos los chequeos por línea se evalúan de forma
// independiente (sin cortocircuito).
func ReviewItems(items []entity.QuoteLineItem) []string {
	if len(items) == 0 {
		return []string{"No se detectaron productos en la solicitud."}
	}

	var notes []string
	for _, it := range items {
		if it.Quantity <= 0 {
			notes = append(notes, fmt.Sprintf("La cantidad de %s no parece válida.", it.Name))
		}
		if it.UnitPrice.LessThanOrEqual(decimal.Zero) {
			notes = append(notes, fmt.Sprintf("Falta el precio de %s; se usará el precio de respaldo.", it.Name))
		}
		if len(it.ShortDescription) < 20 {
			notes = append(notes, fmt.Sprintf("La descripción corta de %s podría ser demasiado breve.", it.Name))
		}
	}

	if len(items) > 5 {
		notes = append(notes, "Cotización grande detectada: considera aplicar un descuento.")
	}

	return notes
}
