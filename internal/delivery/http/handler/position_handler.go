package handler

import (
	"errors"

	"cv-smart-hire/internal/delivery/http/dto"
	"cv-smart-hire/internal/delivery/http/middleware"
	"cv-smart-hire/internal/pkg/response"
	"cv-smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PositionHandler struct {
	uc         usecase.PositionUsecase
	candidates usecase.CandidateUsecase
}

type createPositionRequest struct {
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	RequiredSkills []string `json:"requiredSkills"`
	Active         *bool    `json:"active"`
}

func NewPositionHandler(uc usecase.PositionUsecase, candidates usecase.CandidateUsecase) *PositionHandler {
	return &PositionHandler{uc: uc, candidates: candidates}
}

func (h *PositionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/:id/ranking", h.HandleRanking)
}

func (h *PositionHandler) HandleList(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapPositionUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewPositionResponses(items))
}

func (h *PositionHandler) HandleListActive(c fiber.Ctx) error {
	items, err := h.uc.ListActive(c.Context())
	if err != nil {
		return mapPositionUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewPositionResponses(items))
}

func (h *PositionHandler) HandleCreate(c fiber.Ctx) error {
	var req createPositionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	// New positions default to active unless the request disables them.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	item, err := h.uc.Create(c.Context(), usecase.PositionCreateParams{
		Title:          req.Title,
		Department:     req.Department,
		RequiredSkills: req.RequiredSkills,
		Active:         active,
	})
	if err != nil {
		return mapPositionUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "success", dto.NewPositionResponse(item))
}

func (h *PositionHandler) HandleRanking(c fiber.Ctx) error {
	id, err := parseParamID(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid position id", nil, err)
	}

	items, err := h.candidates.RankForPosition(c.Context(), id)
	if err != nil {
		return mapCandidateUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewRankingResponses(items))
}

func mapPositionUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrPositionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Position not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidPosition):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid position", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
