package ports

import (
	"context"

	"github.com/smag/cotizador-api/internal/application/dto"
)

// ExtractionService define el puerto de salida hacia el modelo de lenguaje que
// convierte texto libre en líneas de cotización candidatas. Cualquier adaptador
// (Gemini, OpenAI, mock) debe implementar esta interfaz; la capa de aplicación
// solo conoce este contrato, no la implementación concreta.
//
// El adaptador se trata como no confiable: el caso de uso degrada cualquier
// error a una extracción vacía en lugar de fallar la petición.
type ExtractionService interface {
	// ExtractQuoteItems analiza el texto del usuario y devuelve los productos
	// detectados más el nombre del cliente si fue mencionado.
	// El contexto debe llevar timeout para evitar bloqueos en la llamada externa.
	ExtractQuoteItems(ctx context.Context, prompt string) (*dto.ExtractionResult, error)
}
