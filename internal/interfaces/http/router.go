package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smag/cotizador-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	QuotationUC *usecase.QuotationUseCase
	HistoryUC   *usecase.HistoryUseCase
}

// Router registra las rutas de la API. Toda la superficie es pública: el
// cotizador no maneja usuarios ni autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	catalogHandler := NewCatalogHandler(deps.QuotationUC)
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	historyHandler := NewHistoryHandler(deps.HistoryUC)

	// Catálogo (buscador del frontend)
	app.Get("/products", catalogHandler.List)

	// Flujo de cotización en dos pasos
	app.Post("/analyze-request", quotationHandler.Analyze)
	app.Post("/finalize-quotation", quotationHandler.Finalize)

	// Historial de PDFs generados
	app.Get("/history", historyHandler.List)
	app.Delete("/history/:filename", historyHandler.Delete)
	app.Get("/pdf/:filename", historyHandler.ServePDF)
}
