package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smag/cotizador-api/internal/application/usecase"
)

// CatalogHandler expone el catálogo de productos para el buscador del frontend.
type CatalogHandler struct {
	uc *usecase.QuotationUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.QuotationUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar el catálogo completo de productos
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.CatalogProductResponse
// @Router       /products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCatalog())
}
