package usecase

import (
	"fmt"

	"github.com/smag/cotizador-api/internal/application/dto"
	"github.com/smag/cotizador-api/internal/domain/repository"
)

// HistoryUseCase vista sobre los PDFs persistidos: listado, borrado y acceso
// al archivo para servirlo. No hay entidad propia: el historial se deriva del
// contenido del directorio de PDFs.
type HistoryUseCase struct {
	pdfRepo repository.PDFRepository
	baseURL string
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(pdfRepo repository.PDFRepository, baseURL string) *HistoryUseCase {
	return &HistoryUseCase{pdfRepo: pdfRepo, baseURL: baseURL}
}

// List devuelve los PDFs generados, del más reciente al más antiguo.
func (uc *HistoryUseCase) List() ([]dto.HistoryEntry, error) {
	stored, err := uc.pdfRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar historial: %w", err)
	}

	entries := make([]dto.HistoryEntry, 0, len(stored))
	for _, s := range stored {
		entries = append(entries, dto.HistoryEntry{
			Filename:  s.Filename,
			URL:       fmt.Sprintf("%s/pdf/%s", uc.baseURL, s.Filename),
			CreatedAt: s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return entries, nil
}

// Delete elimina un PDF del historial; domain.ErrNotFound si no existe.
func (uc *HistoryUseCase) Delete(filename string) error {
	return uc.pdfRepo.Delete(filename)
}

// PDFPath devuelve la ruta del archivo para servirlo; domain.ErrNotFound si no existe.
func (uc *HistoryUseCase) PDFPath(filename string) (string, error) {
	return uc.pdfRepo.Path(filename)
}
