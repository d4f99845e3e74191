package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smag/cotizador-api/internal/application/dto"
	"github.com/smag/cotizador-api/internal/application/usecase"
)

// QuotationHandler maneja el flujo de dos pasos del cotizador:
// analyze (borrador) y finalize (PDF numerado).
type QuotationHandler struct {
	uc *usecase.QuotationUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *usecase.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Analyze godoc
// @Summary      Analizar una solicitud en texto libre
// @Description  Extrae productos con IA, los empareja contra el catálogo y
//               devuelve un borrador valorado editable. Un fallo de extracción
//               degrada a lista vacía; la petición sigue siendo exitosa.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AnalyzeRequest  true  "prompt: texto libre del usuario"
// @Success      200   {object}  dto.AnalyzeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /analyze-request [post]
func (h *QuotationHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	if req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "prompt es requerido",
		})
	}

	return c.JSON(h.uc.Analyze(c.Context(), req.Prompt))
}

// Finalize godoc
// @Summary      Finalizar la cotización y generar el PDF
// @Description  Recalcula totales en el servidor, asigna el consecutivo del
//               día, genera el PDF y lo persiste. Devuelve además una copia
//               base64 del PDF.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinalizeRequest  true  "datos editados de la cotización"
// @Success      200   {object}  dto.FinalizeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /finalize-quotation [post]
func (h *QuotationHandler) Finalize(c *fiber.Ctx) error {
	var req dto.FinalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	out, err := h.uc.Finalize(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(out)
}
