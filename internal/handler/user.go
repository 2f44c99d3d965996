package handler

import (
	"context"
	"net/http"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "user")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "", dto.ToProfileResponse(user))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), currentActor(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "profile updated", user)
}

func (h *Handler) ToggleFollow(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "user")
		return
	}

	following, err := h.userService.ToggleFollow(c.Request.Context(), currentActor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	msg := "unfollowed"
	if following {
		msg = "followed"
	}
	h.respond(c, http.StatusOK, msg, dto.FollowResponse{Following: following})
}

func (h *Handler) ListFollowers(c *ginext.Context) {
	h.listFollowEdges(c, h.userService.ListFollowers)
}

func (h *Handler) ListFollowing(c *ginext.Context) {
	h.listFollowEdges(c, h.userService.ListFollowing)
}

func (h *Handler) listFollowEdges(
	c *ginext.Context,
	list func(ctx context.Context, userID string, page domain.Page) ([]*domain.UserRef, int, error),
) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "user")
		return
	}

	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	page := toPage(q)
	users, total, err := list(c.Request.Context(), id, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondPage(c, users, page, total)
}

func (h *Handler) ListFavourites(c *ginext.Context) {
	h.listMyEvents(c, h.participationService.ListFavourites)
}

func (h *Handler) ListJoinedEvents(c *ginext.Context) {
	h.listMyEvents(c, h.participationService.ListJoined)
}

func (h *Handler) listMyEvents(
	c *ginext.Context,
	list func(ctx context.Context, actor domain.Actor, page domain.Page) ([]*domain.Event, int, error),
) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	page := toPage(q)
	events, total, err := list(c.Request.Context(), currentActor(c), page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondPage(c, events, page, total)
}

// Admin

func (h *Handler) ListUsers(c *ginext.Context) {
	var q dto.UserListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	filter := domain.UserFilter{Query: q.Query, Page: toPage(q.PageQuery)}
	if q.Role != "" {
		role := domain.Role(q.Role)
		filter.Role = &role
	}

	users, total, err := h.userService.List(c.Request.Context(), currentActor(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondPage(c, users, filter.Page, total)
}

func (h *Handler) UpdateUserRole(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "user")
		return
	}

	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), currentActor(c), id, domain.Role(req.Role))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "role updated", user)
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "user")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), currentActor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "user deleted", nil)
}
