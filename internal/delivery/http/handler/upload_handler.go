package handler

import (
	"errors"
	"io"

	"cv-smart-hire/internal/delivery/http/dto"
	"cv-smart-hire/internal/delivery/http/middleware"
	"cv-smart-hire/internal/pkg/response"
	"cv-smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UploadHandler struct {
	ingestion usecase.IngestionUsecase
	uploads   usecase.UploadUsecase
}

func NewUploadHandler(ingestion usecase.IngestionUsecase, uploads usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{ingestion: ingestion, uploads: uploads}
}

// HandleUpload accepts a multipart CSV under the "file" field plus a
// "position" form value naming the opening the rows are scored against.
func (h *UploadHandler) HandleUpload(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file", nil, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}
	if len(body) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Empty file", nil, usecase.ErrEmptyFile)
	}

	positionTitle := c.FormValue("position")

	res, err := h.ingestion.Ingest(c.Context(), string(body), positionTitle, fileHeader.Filename)
	if err != nil {
		return mapIngestionUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewIngestionResponse(res))
}

func (h *UploadHandler) HandleListUploads(c fiber.Ctx) error {
	items, err := h.uploads.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewUploadResponses(items))
}

func mapIngestionUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidCSV):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid CSV", nil, err)
	case errors.Is(err, usecase.ErrEmptyFile):
		return middleware.NewAppError(fiber.StatusBadRequest, "Empty file", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
