package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "voice-todo/pkg/errors"
)

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processCreateReq binds and validates the create task body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, *time.Time, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	due, err := h.parseDueDate(req.DueDate)
	return req, due, err
}

// processSaveReq binds the save transcript body. An empty body is allowed.
func (h *handler) processSaveReq(c *gin.Context) (saveReq, *time.Time, error) {
	var req saveReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, nil, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	due, err := h.parseDueDate(req.DueDate)
	return req, due, err
}

// processTranscriptReq binds a recognised speech fragment.
func (h *handler) processTranscriptReq(c *gin.Context) (transcriptReq, error) {
	var req transcriptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processIDReq reads the task id path parameter.
func (h *handler) processIDReq(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errIDRequired
	}
	return id, nil
}

func (h *handler) parseDueDate(text string) (*time.Time, error) {
	due, err := h.dates.ParseDueDate(text, h.now())
	if err != nil {
		return nil, errInvalidDueDate
	}
	return due, nil
}
