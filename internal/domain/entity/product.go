package entity

import "github.com/shopspring/decimal"

// Product representa una entrada del catálogo estático de venta.
// El catálogo se carga una vez al arrancar y es inmutable durante la vida del proceso.
type Product struct {
	SKU              string // único en el catálogo cuando está presente; puede venir vacío
	Name             string
	Brand            string
	ShortDescription string
	Description      string
	Thumbnail        string          // URL de la miniatura; vacío = sin imagen
	BasePrice        decimal.Decimal // precio base del proveedor; cero = usar precio de respaldo
}
