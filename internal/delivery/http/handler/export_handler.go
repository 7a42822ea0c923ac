package handler

import (
	"errors"

	"cv-smart-hire/internal/delivery/http/middleware"
	"cv-smart-hire/internal/pkg/response"
	"cv-smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ExportHandler struct {
	uc usecase.ExportUsecase
}

func NewExportHandler(uc usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// HandleExport streams the current candidate set as a CSV attachment.
// The same position/status/sort filters as the candidate list apply.
func (h *ExportHandler) HandleExport(c fiber.Ctx) error {
	params := usecase.CandidateListParams{
		Position:    c.Query("position"),
		Status:      c.Query("status"),
		SortByScore: c.Query("sort") == "score",
	}

	csvText, err := h.uc.ExportCSV(c.Context(), params)
	if err != nil {
		return mapExportUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.csv"`)
	return c.SendString(csvText)
}

func mapExportUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
