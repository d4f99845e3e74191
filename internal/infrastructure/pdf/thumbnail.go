package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"github.com/smag/cotizador-api/internal/application/ports"
)

// Verificar en tiempo de compilación que HTTPThumbnailFetcher implementa ThumbnailFetcher.
var _ ports.ThumbnailFetcher = (*HTTPThumbnailFetcher)(nil)

const (
	fetchTimeout = 5 * time.Second
	// Algunos CDNs rechazan clientes sin User-Agent de navegador.
	browserUserAgent = "Mozilla/5.0"
	maxImageBytes    = 5 << 20
)

// HTTPThumbnailFetcher descarga miniaturas remotas y las normaliza a PNG.
// Es best-effort: el caller trata cualquier error como "sin miniatura" y la
// cotización sigue adelante.
type HTTPThumbnailFetcher struct {
	client *http.Client
}

// NewHTTPThumbnailFetcher construye el fetcher con timeout de 5 s.
func NewHTTPThumbnailFetcher() *HTTPThumbnailFetcher {
	return &HTTPThumbnailFetcher{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// FetchPNG descarga la imagen, la decodifica (cualquier formato soportado,
// incluidos modos con canal alfa o paleta) y la re-codifica como PNG.
func (f *HTTPThumbnailFetcher) FetchPNG(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("miniatura: crear request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("miniatura: descargar %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("miniatura: descargar %s: HTTP %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("miniatura: leer %s: %w", url, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("miniatura: decodificar %s: %w", url, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("miniatura: codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// FetchDataURI descarga la imagen y la devuelve como data-URI PNG embebible
// (data:image/png;base64,...), para consumidores que esperan markup.
func (f *HTTPThumbnailFetcher) FetchDataURI(ctx context.Context, url string) (string, error) {
	png, err := f.FetchPNG(ctx, url)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
