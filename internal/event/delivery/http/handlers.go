package http

import (
	"github.com/gin-gonic/gin"

	"ai-calendar-assistant/internal/middleware"
	"ai-calendar-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a calendar event
// @Description Creates an event from a draft. A date-only draft expands to local midnight plus one day; dates before today are rejected.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event draft"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Validation rejection"
// @Failure     401 {object} response.Resp "Unauthenticated"
// @Failure     502 {object} response.Resp "Event store failure"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, createResp{Event: h.newEventResp(output.Event)})
}

// List godoc
// @Summary     List calendar events
// @Description Lists the user's events ordered by start time. `date` filters one local day; `month` filters the visible month. Anonymous requests get an empty list.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       date  query string false "Local day (YYYY-MM-DD)"
// @Param       month query string false "Visible month (YYYY-MM)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad filter"
// @Failure     502 {object} response.Resp "Event store failure"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	events := make([]eventResp, 0, len(output.Events))
	for _, evt := range output.Events {
		events = append(events, h.newEventResp(evt))
	}
	response.OK(c, listResp{Events: events, Total: output.Total})
}

// Detail godoc
// @Summary     Get event detail
// @Description Returns a single event owned by the authenticated user.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Event: h.newEventResp(output.Event)})
}

// Update godoc
// @Summary     Update a calendar event
// @Description Partial merge: omitted fields stay untouched both locally and remotely. Overlapping updates to the same event are not serialized; rapid edits may apply out of order.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Event ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Validation rejection"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Event store failure"
// @Router      /api/v1/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, updateResp{Event: h.newEventResp(output.Event)})
}

// Delete godoc
// @Summary     Delete a calendar event
// @Description Permanently removes an event. The client is responsible for confirming with the user first; the row disappears only after the store acknowledges.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Event store failure"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.UserID(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
