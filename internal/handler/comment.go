package handler

import (
	"net/http"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) AddComment(c *ginext.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), currentActor(c), domain.CreateCommentInput{
		EventID:  eventID,
		Content:  req.Content,
		Rating:   req.Rating,
		ParentID: req.ParentComment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, "comment added", comment)
}

func (h *Handler) ListComments(c *ginext.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "event")
		return
	}

	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	page := toPage(q)
	comments, total, err := h.commentService.ListByEvent(c.Request.Context(), optionalActor(c), eventID, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondPage(c, comments, page, total)
}

func (h *Handler) GetComment(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "comment")
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "", comment)
}

func (h *Handler) UpdateComment(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "comment")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), currentActor(c), id, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "comment updated", comment)
}

func (h *Handler) DeleteComment(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "comment")
		return
	}

	res, err := h.commentService.DeleteComment(c.Request.Context(), currentActor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "comment deleted", res)
}

func (h *Handler) ToggleCommentLike(c *ginext.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.invalidID(c, "comment")
		return
	}

	res, err := h.commentService.ToggleLike(c.Request.Context(), currentActor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "", res)
}
