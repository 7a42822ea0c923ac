package handler

import (
	"cv-smart-hire/internal/delivery/http/middleware"
	"cv-smart-hire/internal/pkg/response"
	"cv-smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc usecase.StatsUsecase
}

func NewStatsHandler(uc usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) HandleOverview(c fiber.Ctx) error {
	stats, err := h.uc.Overview(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, "success", stats)
}
