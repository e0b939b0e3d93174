package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/biztime/backend/internal/domain/shared"
	"github.com/biztime/backend/internal/infrastructure/logger"
	"github.com/biztime/backend/internal/interfaces/http/dto"
	"github.com/biztime/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Deleted acknowledges a successful delete
func (h *BaseHandler) Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Deleted)
}

// Error sends an error response with the given status
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	middleware.SetErrorCode(c, code)
	c.JSON(statusCode, dto.NewErrorResponse(statusCode, message))
}

// HandleError is the single error responder. Domain errors map to their
// status; anything else is logged with its cause and answered with a
// generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if domainErr, ok := shared.AsDomainError(err); ok {
		statusCode := dto.GetHTTPStatus(domainErr.Code)
		if statusCode < http.StatusInternalServerError {
			h.Error(c, statusCode, domainErr.Code, domainErr.Message)
			return
		}
	}

	_ = c.Error(err)
	logger.GetGinLogger(c).Error("Request failed", zap.Error(err))
	h.Error(c, http.StatusInternalServerError, shared.CodeInternal, dto.MessageInternal)
}

// BindJSON decodes the request body into req and validates it. Fields named
// in forbidden are refused with "Not Allowed" when present at all, even as
// null, before any other check. An empty body decodes as {}.
// The returned error is a *shared.DomainError ready for HandleError.
func (h *BaseHandler) BindJSON(c *gin.Context, req any, forbidden ...string) error {
	body, err := c.GetRawData()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return shared.NewDomainError(dto.CodePayloadTooLarge, middleware.MessageBodyTooLarge)
		}
		return shared.BadRequestf("Unable to read request body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if len(forbidden) > 0 {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return shared.BadRequestf("%s", middleware.FormatBindError(err))
		}
		for _, name := range forbidden {
			if _, present := fields[name]; present {
				return shared.NewDomainError(shared.CodeBadRequest, dto.MessageNotAllowed)
			}
		}
	}

	if err := binding.JSON.BindBody(body, req); err != nil {
		code := shared.CodeBadRequest
		if middleware.IsValidationError(err) {
			code = shared.CodeValidation
		}
		return shared.NewDomainError(code, middleware.FormatBindError(err))
	}
	return nil
}

// parsePositiveID parses a path parameter that must be a positive integer
func parsePositiveID(c *gin.Context, param string) (int64, error) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.BadRequestf("%s must be a positive integer, got '%s'", param, raw)
	}
	return id, nil
}
