package handler

import (
	"errors"
	"net/http"

	"squadsite-backend/internal/domains/memory"
	"squadsite-backend/internal/shared/response"
	"squadsite-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MemoryHandler struct {
	service memory.Service
}

func NewMemoryHandler(svc memory.Service) *MemoryHandler {
	return &MemoryHandler{
		service: svc,
	}
}

// ========== LIST: GET /api/memories ==========
func (h *MemoryHandler) List(c *gin.Context) {
	memories, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to fetch memories", err)
		response.InternalServerError(c, "Failed to fetch memories")
		return
	}

	response.Success(c, http.StatusOK, memories)
}

// ========== CREATE: POST /api/memories ==========
func (h *MemoryHandler) Create(c *gin.Context) {
	var req memory.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid memory data")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ========== UPDATE: PUT /api/memories/:id ==========
func (h *MemoryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req memory.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid memory data")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, memory.ErrMemoryNotFound) {
			response.NotFound(c, "Memory not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}
