package handler

import (
	"net/http"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/handler/dto"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	res, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, "registration successful", res)
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	res, err := h.authService.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "login successful", res)
}

func (h *Handler) Refresh(c *ginext.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	res, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "", res.Tokens)
}

func (h *Handler) Logout(c *ginext.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "logged out", nil)
}

func (h *Handler) Me(c *ginext.Context) {
	user, _ := middleware.CurrentUser(c)
	h.respond(c, http.StatusOK, "", user)
}
