package handler

import (
	"errors"

	"cv-smart-hire/internal/delivery/http/dto"
	"cv-smart-hire/internal/delivery/http/middleware"
	"cv-smart-hire/internal/pkg/response"
	"cv-smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleList)
	r.Get("/unread", h.HandleListUnread)
	r.Post("/:id/read", h.HandleMarkRead)
}

func (h *NotificationHandler) HandleList(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapNotificationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewNotificationResponses(items))
}

func (h *NotificationHandler) HandleListUnread(c fiber.Ctx) error {
	items, err := h.uc.ListUnread(c.Context())
	if err != nil {
		return mapNotificationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewNotificationResponses(items))
}

func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	id, err := parseParamID(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid notification id", nil, err)
	}

	item, err := h.uc.MarkRead(c.Context(), id)
	if err != nil {
		return mapNotificationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.NewNotificationResponse(item))
}

func mapNotificationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
