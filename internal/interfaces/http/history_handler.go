package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/smag/cotizador-api/internal/application/dto"
	"github.com/smag/cotizador-api/internal/application/usecase"
	"github.com/smag/cotizador-api/internal/domain"
)

// HistoryHandler gestiona el historial de PDFs generados y su descarga.
type HistoryHandler struct {
	uc *usecase.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar las cotizaciones generadas
// @Description  Devuelve los PDFs persistidos del más reciente al más antiguo.
// @Tags         history
// @Produce      json
// @Success      200  {array}   dto.HistoryEntry
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	entries, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(entries)
}

// Delete godoc
// @Summary      Eliminar una cotización del historial
// @Tags         history
// @Produce      json
// @Param        filename  path  string  true  "Nombre del archivo PDF"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /history/{filename} [delete]
func (h *HistoryHandler) Delete(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if err := h.uc.Delete(filename); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "archivo no encontrado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(dto.DeleteResponse{Success: true, Message: "archivo eliminado"})
}

// ServePDF godoc
// @Summary      Servir el PDF de una cotización
// @Description  Con ?download=true fuerza la descarga (Content-Disposition: attachment).
// @Tags         history
// @Produce      application/pdf
// @Param        filename  path   string  true   "Nombre del archivo PDF"
// @Param        download  query  bool    false  "Forzar descarga"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pdf/{filename} [get]
func (h *HistoryHandler) ServePDF(c *fiber.Ctx) error {
	filename := c.Params("filename")
	path, err := h.uc.PDFPath(filename)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "PDF no encontrado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	if c.QueryBool("download", false) {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	}
	return c.SendFile(path)
}
