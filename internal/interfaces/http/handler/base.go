package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/docflow/backend/internal/domain/shared"
	"github.com/docflow/backend/internal/interfaces/http/dto"
	"github.com/docflow/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common response helpers for all handlers
type BaseHandler struct{}

// Success sends a 200 response with the given data
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 response with the given data
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error maps domain errors to HTTP responses
func (h *BaseHandler) Error(c *gin.Context, err error) {
	requestID := c.GetString("request_id")

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(status, dto.NewErrorResponse(domainErr.Code, domainErr.Message, requestID))
		return
	}

	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse("INTERNAL_ERROR", "An unexpected error occurred", requestID))
}

// BadRequest sends a 400 response with the given message
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	requestID := c.GetString("request_id")
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_INPUT", message, requestID))
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context) {
	requestID := c.GetString("request_id")
	c.JSON(http.StatusNotFound, dto.NewErrorResponse("NOT_FOUND", "Resource not found", requestID))
}

// Unauthorized sends a 401 response with the given message
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	requestID := c.GetString("request_id")
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", message, requestID))
}

// CurrentUserID extracts the authenticated user's ID from the context
func (h *BaseHandler) CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get(middleware.ContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CurrentRole extracts the authenticated user's role from the context
func (h *BaseHandler) CurrentRole(c *gin.Context) string {
	return c.GetString(middleware.ContextKeyRole)
}

// ParseUUIDParam parses a UUID path parameter, replying 400 on failure
func (h *BaseHandler) ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
