package handler

import (
	"net/http"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListNotifications(c *ginext.Context) {
	var q dto.NotificationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	filter := domain.NotificationFilter{UnreadOnly: q.Unread, Page: toPage(q.PageQuery)}
	list, total, err := h.notificationService.List(c.Request.Context(), currentActor(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondPage(c, list, filter.Page, total)
}

func (h *Handler) UnreadCount(c *ginext.Context) {
	n, err := h.notificationService.UnreadCount(c.Request.Context(), currentActor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "", dto.CountResponse{Count: n})
}

func (h *Handler) MarkNotificationRead(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "notification")
		return
	}

	n, err := h.notificationService.MarkRead(c.Request.Context(), currentActor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "notification marked as read", n)
}

func (h *Handler) MarkAllNotificationsRead(c *ginext.Context) {
	n, err := h.notificationService.MarkAllRead(c.Request.Context(), currentActor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "all notifications marked as read", dto.CountResponse{Count: n})
}

func (h *Handler) DeleteNotification(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "notification")
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "notification deleted", nil)
}

func (h *Handler) Broadcast(c *ginext.Context) {
	var req dto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	res, err := h.notificationService.Broadcast(c.Request.Context(), currentActor(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, "broadcast sent", res)
}
