package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_JSONPuro(t *testing.T) {
	in := `{"customer_name": "ACME", "items": []}`
	assert.Equal(t, in, extractJSON(in))
}

func TestExtractJSON_BloqueMarkdownConEtiqueta(t *testing.T) {
	in := "```json\n{\"items\": [{\"name\": \"Cámara\", \"quantity\": 3}]}\n```"
	assert.Equal(t, `{"items": [{"name": "Cámara", "quantity": 3}]}`, extractJSON(in))
}

func TestExtractJSON_BloqueMarkdownSinEtiqueta(t *testing.T) {
	in := "```\n{\"items\": []}\n```"
	assert.Equal(t, `{"items": []}`, extractJSON(in))
}

func TestExtractJSON_ProsaAlrededor(t *testing.T) {
	in := `Claro, aquí está el resultado: {"items": [{"name": "Gateway"}]} ¡Espero que sirva!`
	assert.Equal(t, `{"items": [{"name": "Gateway"}]}`, extractJSON(in))
}

func TestExtractJSON_SinJSONDevuelveVacio(t *testing.T) {
	assert.Empty(t, extractJSON("no hay nada estructurado aquí"))
}

func TestExtractQuoteItems_SinAPIKeyDevuelveError(t *testing.T) {
	svc := NewGeminiService("", "gemini-2.5-flash")

	_, err := svc.ExtractQuoteItems(context.Background(), "2 cámaras")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
