package repository

import "time"

// StoredPDF metadatos de un PDF persistido en el almacén.
type StoredPDF struct {
	Filename  string
	CreatedAt time.Time // fecha de modificación del archivo
}

// PDFRepository persiste los PDFs de cotizaciones generadas.
// Es la única forma de persistencia de una cotización finalizada:
// no existe registro estructurado aparte del archivo.
type PDFRepository interface {
	// Save escribe el PDF, creando directorios intermedios si hace falta.
	Save(filename string, data []byte) error

	// List devuelve los PDFs ordenados del más reciente al más antiguo.
	List() ([]StoredPDF, error)

	// Delete elimina un PDF; domain.ErrNotFound si no existe.
	Delete(filename string) error

	// Path devuelve la ruta absoluta de un PDF para servirlo;
	// domain.ErrNotFound si no existe.
	Path(filename string) (string, error)
}
