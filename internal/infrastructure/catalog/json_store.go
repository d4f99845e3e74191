// Package catalog implementa el almacén del catálogo de productos sobre un
// archivo JSON estático. El archivo se lee una sola vez al construir el store;
// el catálogo es inmutable durante la vida del proceso y nunca se reescribe.
package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smag/cotizador-api/internal/domain/entity"
	"github.com/smag/cotizador-api/internal/domain/repository"
	"github.com/smag/cotizador-api/pkg/logger"
)

// Verificar en tiempo de compilación que JSONStore implementa CatalogRepository.
var _ repository.CatalogRepository = (*JSONStore)(nil)

// JSONStore catálogo en memoria cargado desde archivo.
type JSONStore struct {
	products []entity.Product
}

// productRecord es el esquema en disco. Adaptador estrecho: acepta tanto el
// esquema canónico (base_price) como el legado (price); el resto del sistema
// solo ve entity.Product.
type productRecord struct {
	SKU              string           `json:"sku"`
	Name             string           `json:"name"`
	Brand            string           `json:"brand"`
	ShortDescription string           `json:"short_description"`
	Description      string           `json:"description"`
	Thumbnail        *string          `json:"thumbnail"`
	BasePrice        *decimal.Decimal `json:"base_price"`
	LegacyPrice      *decimal.Decimal `json:"price"`
}

// NewJSONStore carga el catálogo desde path. Un archivo ausente o ilegible no
// es fatal: se registra una advertencia y el catálogo queda vacío.
func NewJSONStore(path string, log *logger.Logger) *JSONStore {
	store := &JSONStore{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("catálogo de productos no disponible; se arranca vacío")
		return store
	}

	records, err := decodeRecords(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("catálogo de productos ilegible; se arranca vacío")
		return store
	}

	store.products = make([]entity.Product, 0, len(records))
	for _, r := range records {
		store.products = append(store.products, r.toEntity())
	}

	log.Info().Int("products", len(store.products)).Str("path", path).Msg("catálogo cargado")
	return store
}

// decodeRecords tolera las tres formas conocidas del archivo:
// lista cruda, objeto {"products": [...]} u objeto arbitrario (se usan sus valores).
func decodeRecords(data []byte) ([]productRecord, error) {
	var list []productRecord
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}

	if raw, ok := wrapper["products"]; ok {
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	// Mapeo con clave desconocida: los valores son los productos.
	// El orden de claves de un objeto JSON no está garantizado.
	for _, raw := range wrapper {
		var r productRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}

func (r productRecord) toEntity() entity.Product {
	p := entity.Product{
		SKU:              r.SKU,
		Name:             r.Name,
		Brand:            r.Brand,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
	}
	if r.Thumbnail != nil {
		p.Thumbnail = *r.Thumbnail
	}
	switch {
	case r.BasePrice != nil:
		p.BasePrice = *r.BasePrice
	case r.LegacyPrice != nil:
		p.BasePrice = *r.LegacyPrice
	}
	return p
}

// All devuelve el catálogo completo en orden de inserción.
func (s *JSONStore) All() []entity.Product {
	return s.products
}

// Find busca por relevancia en cuatro niveles estrictos, insensible a
// mayúsculas. Cada producto cae como máximo en un nivel (gana el primero que
// coincide). El resultado es la concatenación de niveles, deduplicada por SKU
// conservando la primera aparición; los productos sin SKU nunca se deduplican.
func (s *JSONStore) Find(query string) []entity.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var exactSKU, partialSKU, nameMatch, broadMatch []entity.Product

	for _, p := range s.products {
		sku := strings.ToLower(p.SKU)
		name := strings.ToLower(p.Name)
		brand := strings.ToLower(p.Brand)
		shortDesc := strings.ToLower(p.ShortDescription)

		switch {
		case query == sku:
			exactSKU = append(exactSKU, p)
		case strings.Contains(sku, query):
			partialSKU = append(partialSKU, p)
		case strings.Contains(name, query):
			nameMatch = append(nameMatch, p)
		case strings.Contains(brand, query) || strings.Contains(shortDesc, query):
			broadMatch = append(broadMatch, p)
		}
	}

	all := make([]entity.Product, 0, len(exactSKU)+len(partialSKU)+len(nameMatch)+len(broadMatch))
	all = append(all, exactSKU...)
	all = append(all, partialSKU...)
	all = append(all, nameMatch...)
	all = append(all, broadMatch...)

	return dedupeBySKU(all)
}

func dedupeBySKU(items []entity.Product) []entity.Product {
	seen := make(map[string]bool, len(items))
	out := make([]entity.Product, 0, len(items))
	for _, p := range items {
		if p.SKU != "" {
			if seen[p.SKU] {
				continue
			}
			seen[p.SKU] = true
		}
		out = append(out, p)
	}
	return out
}
