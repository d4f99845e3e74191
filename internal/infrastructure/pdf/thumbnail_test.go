package pdf_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infrapdf "github.com/smag/cotizador-api/internal/infrastructure/pdf"
)

// testImage genera una imagen pequeña codificada con encode.
func testImage(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func TestFetchPNG_ReencodaJPEGComoPNG(t *testing.T) {
	jpegBytes := testImage(t, func(b *bytes.Buffer, i image.Image) error {
		return jpeg.Encode(b, i, nil)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Mozilla/5.0", r.Header.Get("User-Agent"),
			"debe enviarse un User-Agent de navegador")
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(jpegBytes)
	}))
	defer srv.Close()

	f := infrapdf.NewHTTPThumbnailFetcher()
	out, err := f.FetchPNG(context.Background(), srv.URL)
	require.NoError(t, err)

	// La salida debe ser un PNG decodificable
	decoded, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 8, decoded.Bounds().Dx())
}

func TestFetchPNG_HTTPNoOKEsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := infrapdf.NewHTTPThumbnailFetcher()
	_, err := f.FetchPNG(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestFetchPNG_ContenidoNoImagenEsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>esto no es una imagen</html>"))
	}))
	defer srv.Close()

	f := infrapdf.NewHTTPThumbnailFetcher()
	_, err := f.FetchPNG(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestFetchDataURI_PrefijoDataImagePNG(t *testing.T) {
	pngBytes := testImage(t, func(b *bytes.Buffer, i image.Image) error {
		return png.Encode(b, i)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngBytes)
	}))
	defer srv.Close()

	f := infrapdf.NewHTTPThumbnailFetcher()
	uri, err := f.FetchDataURI(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}
