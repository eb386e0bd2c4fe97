package handler

import (
	"errors"
	"net/http"

	"squadsite-backend/internal/domains/friend"
	"squadsite-backend/internal/shared/response"
	"squadsite-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	service friend.Service
}

func NewFriendHandler(svc friend.Service) *FriendHandler {
	return &FriendHandler{
		service: svc,
	}
}

// ========== LIST: GET /api/friends ==========
func (h *FriendHandler) List(c *gin.Context) {
	friends, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to fetch friends", err)
		response.InternalServerError(c, "Failed to fetch friends")
		return
	}

	response.Success(c, http.StatusOK, friends)
}

// ========== CREATE: POST /api/friends ==========
func (h *FriendHandler) Create(c *gin.Context) {
	var req friend.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid friend data")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ========== UPDATE: PUT /api/friends/:id ==========
func (h *FriendHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req friend.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid friend data")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, friend.ErrFriendNotFound) {
			response.NotFound(c, "Friend not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}
