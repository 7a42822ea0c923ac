package handler

import (
	"errors"
	"strconv"

	"cv-smart-hire/internal/delivery/http/dto"
	"cv-smart-hire/internal/delivery/http/middleware"
	"cv-smart-hire/internal/pkg/response"
	"cv-smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleList)
	r.Get("/:id", h.HandleGet)
	r.Post("/:id/status", h.HandleUpdateStatus)
	r.Post("/:id/notes", h.HandleUpdateNotes)
}

func (h *CandidateHandler) HandleList(c fiber.Ctx) error {
	params := usecase.CandidateListParams{
		Position:    c.Query("position"),
		Status:      c.Query("status"),
		SortByScore: c.Query("sort") == "score",
	}

	items, err := h.uc.List(c.Context(), params)
	if err != nil {
		return mapCandidateUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewCandidateResponses(items))
}

func (h *CandidateHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseParamID(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	item, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapCandidateUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewCandidateResponse(item))
}

func (h *CandidateHandler) HandleUpdateStatus(c fiber.Ctx) error {
	id, err := parseParamID(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	item, err := h.uc.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return mapCandidateUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewCandidateResponse(item))
}

func (h *CandidateHandler) HandleUpdateNotes(c fiber.Ctx) error {
	id, err := parseParamID(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	var req updateNotesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	item, err := h.uc.UpdateNotes(c.Context(), id, req.Notes)
	if err != nil {
		return mapCandidateUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewCandidateResponse(item))
}

func parseParamID(c fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}

func mapCandidateUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrPositionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Position not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
