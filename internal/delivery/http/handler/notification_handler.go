package handler

import (
	"context"
	"errors"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/notification"
	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (notification.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationHandler struct {
	uc NotificationService
}

func NewNotificationHandler(uc NotificationService) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/:notificationId/read", h.MarkRead)
	r.Put("/user/:userId/read-all", middleware.SelfOnly("userId"), h.MarkAllRead)
	r.Get("/:userId/unread-count", middleware.SelfOnly("userId"), h.UnreadCount)
	r.Get("/:userId", middleware.SelfOnly("userId"), h.List)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	id, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}
	list, err := h.uc.List(c.Context(), id)
	if err != nil {
		return internalError(err)
	}
	return response.OK(c, list)
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "notificationId")
	if err != nil {
		return err
	}
	n, err := h.uc.MarkRead(c.Context(), uid, id)
	if err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
		}
		return internalError(err)
	}
	return response.OK(c, n)
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	id, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}
	updated, err := h.uc.MarkAllRead(c.Context(), id)
	if err != nil {
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, "All notifications marked as read", map[string]any{"updated": updated})
}

func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	id, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}
	count, err := h.uc.UnreadCount(c.Context(), id)
	if err != nil {
		return internalError(err)
	}
	return response.OK(c, map[string]any{"count": count})
}
