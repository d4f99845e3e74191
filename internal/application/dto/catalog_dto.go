package dto

import (
	"github.com/shopspring/decimal"

	"github.com/smag/cotizador-api/internal/domain/entity"
)

// CatalogProductResponse representación pública de un producto del catálogo.
type CatalogProductResponse struct {
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	Brand            string          `json:"brand"`
	ShortDescription string          `json:"short_description"`
	Description      string          `json:"description"`
	Thumbnail        string          `json:"thumbnail,omitempty"`
	BasePrice        decimal.Decimal `json:"base_price"`
}

// ToCatalogProductResponse convierte la entidad a su representación pública.
func ToCatalogProductResponse(p entity.Product) CatalogProductResponse {
	return CatalogProductResponse{
		SKU:              p.SKU,
		Name:             p.Name,
		Brand:            p.Brand,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Thumbnail:        p.Thumbnail,
		BasePrice:        p.BasePrice,
	}
}
