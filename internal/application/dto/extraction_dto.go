package dto

// ExtractedItem es un candidato de línea producido por el modelo de lenguaje.
// Solo existe dentro de una llamada a analyze; SKU puede venir vacío si el
// usuario no mencionó un modelo concreto.
type ExtractedItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ExtractionResult salida estructurada de la extracción por IA.
type ExtractionResult struct {
	CustomerName string          `json:"customer_name"`
	Items        []ExtractedItem `json:"items"`
}
