package http

import (
	"github.com/gin-gonic/gin"

	"ai-calendar-assistant/internal/middleware"
	"ai-calendar-assistant/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Appends the user's message to the transcript and replies. Add-event phrases create a calendar event; everything else is answered by the generative model. Assistant failures come back as messages, not errors.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Chat message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Empty message"
// @Failure     401 {object} response.Resp "Unauthenticated"
// @Failure     429 {object} response.Resp "Rate limited"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sendResp{Messages: newMessageResps(output.Messages)})
}

// History godoc
// @Summary     Get the chat transcript
// @Description Returns the user's transcript oldest first. A fresh session opens with the assistant greeting.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} historyResp
// @Failure     401 {object} response.Resp "Unauthenticated"
// @Router      /api/v1/chat/messages [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, middleware.UserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, historyResp{
		Messages: newMessageResps(output.Messages),
		Total:    len(output.Messages),
	})
}

// Reset godoc
// @Summary     Reset the chat transcript
// @Description Discards the user's transcript. The next message starts a fresh session.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthenticated"
// @Router      /api/v1/chat/messages [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx, middleware.UserID(c)); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
