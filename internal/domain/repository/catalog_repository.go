package repository

import "github.com/smag/cotizador-api/internal/domain/entity"

// CatalogRepository acceso de lectura al catálogo estático de productos.
type CatalogRepository interface {
	// All devuelve el catálogo completo en orden de inserción.
	All() []entity.Product

	// Find busca productos por relevancia en cuatro niveles estrictos:
	// SKU exacto > SKU contiene > nombre contiene > marca/descripción corta contiene.
	// Query vacío devuelve lista vacía.
	Find(query string) []entity.Product
}
