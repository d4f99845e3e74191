// Package sequence implementa el consecutivo diario de cotizaciones sobre un
// archivo JSON pequeño ({date, sequence}).
package sequence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/smag/cotizador-api/internal/application/ports"
)

// Verificar en tiempo de compilación que Counter implementa InvoiceSequencer.
var _ ports.InvoiceSequencer = (*Counter)(nil)

// Counter emite números de cotización SQ-YYYYMMDD-####, estrictamente
// crecientes dentro del día y reiniciados a 0001 al cambiar la fecha (hora
// local del proceso). El read-modify-write del archivo va protegido por un
// mutex; procesos concurrentes sobre el mismo archivo siguen pudiendo pisarse.
type Counter struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

type counterState struct {
	Date     string `json:"date"`
	Sequence int    `json:"sequence"`
}

// NewCounter construye el contador sobre el archivo indicado.
func NewCounter(path string) *Counter {
	return &Counter{path: path, now: time.Now}
}

// Next devuelve el siguiente número formateado y persiste el nuevo estado.
func (c *Counter) Next() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := counterState{}
	if data, err := os.ReadFile(c.path); err == nil {
		// Un archivo corrupto se trata como estado inicial
		_ = json.Unmarshal(data, &state)
	}

	today := c.now().Format("20060102")
	if state.Date != today {
		state.Date = today
		state.Sequence = 1
	} else {
		state.Sequence++
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return "", fmt.Errorf("contador: crear directorio: %w", err)
	}
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("contador: serializar estado: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return "", fmt.Errorf("contador: guardar estado: %w", err)
	}

	return fmt.Sprintf("SQ-%s-%04d", today, state.Sequence), nil
}
