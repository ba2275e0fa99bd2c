package http

import (
	"github.com/gin-gonic/gin"

	"ai-calendar-assistant/internal/middleware"
)

// processCreateReq binds and validates the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID = middleware.UserID(c)
	return req, req.validate()
}

// processListReq binds and validates the list events query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.UserID = middleware.UserID(c)
	return req, req.validate()
}

// processUpdateReq binds and validates the update event request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	req.UserID = middleware.UserID(c)
	return req, req.validate()
}
