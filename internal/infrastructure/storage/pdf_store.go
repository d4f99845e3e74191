// Package storage implementa la persistencia de los PDFs de cotización sobre
// el filesystem. El nombre del archivo es el número de cotización; no existe
// otro registro de la cotización finalizada.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/smag/cotizador-api/internal/domain"
	"github.com/smag/cotizador-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que PDFStore implementa PDFRepository.
var _ repository.PDFRepository = (*PDFStore)(nil)

// PDFStore almacén de PDFs en un directorio plano.
type PDFStore struct {
	dir string
}

// NewPDFStore construye el almacén sobre el directorio indicado.
func NewPDFStore(dir string) *PDFStore {
	return &PDFStore{dir: dir}
}

// filePath normaliza el nombre con filepath.Base para impedir escapes del
// directorio (../../etc) y devuelve la ruta completa.
func (s *PDFStore) filePath(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}

// Save escribe el PDF, creando el directorio si no existe.
func (s *PDFStore) Save(filename string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("almacén PDF: crear directorio: %w", err)
	}
	if err := os.WriteFile(s.filePath(filename), data, 0o644); err != nil {
		return fmt.Errorf("almacén PDF: escribir %s: %w", filename, err)
	}
	return nil
}

// List devuelve los PDFs ordenados del más reciente al más antiguo según la
// fecha de modificación del archivo.
func (s *PDFStore) List() ([]repository.StoredPDF, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("almacén PDF: leer directorio: %w", err)
	}

	var stored []repository.StoredPDF
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		stored = append(stored, repository.StoredPDF{
			Filename:  e.Name(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(stored, func(i, j int) bool {
		return stored[i].CreatedAt.After(stored[j].CreatedAt)
	})
	return stored, nil
}

// Delete elimina un PDF; domain.ErrNotFound si no existe.
func (s *PDFStore) Delete(filename string) error {
	err := os.Remove(s.filePath(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("almacén PDF: eliminar %s: %w", filename, err)
	}
	return nil
}

// Path devuelve la ruta del archivo para servirlo; domain.ErrNotFound si no existe.
func (s *PDFStore) Path(filename string) (string, error) {
	path := s.filePath(filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("almacén PDF: consultar %s: %w", filename, err)
	}
	return path, nil
}
