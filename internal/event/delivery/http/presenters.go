package http

import (
	"time"

	"ai-calendar-assistant/internal/event"
)

// --- Request DTOs ---

type createReq struct {
	UserID      string    `json:"-"` // populated from the verified token
	Title       string    `json:"title"       binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Date        string    `json:"date"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"    binding:"max=500"`
	Color       string    `json:"color"       binding:"max=64"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() event.CreateEventInput {
	return event.CreateEventInput{
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
		Color:       r.Color,
	}
}

// ---

type listReq struct {
	UserID string `form:"-"`
	Date   string `form:"date"`
	Month  string `form:"month"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() event.ListEventsInput {
	return event.ListEventsInput{
		UserID: r.UserID,
		Date:   r.Date,
		Month:  r.Month,
	}
}

// ---

// updateReq is a partial draft. Absent and empty-string fields are
// equivalent: both keep the stored value, so string fields cannot be
// cleared through this endpoint, only replaced.
type updateReq struct {
	ID          string    `json:"-"` // populated from URI param
	UserID      string    `json:"-"`
	Title       string    `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	Date        string    `json:"date"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"    binding:"omitempty,max=500"`
	Color       string    `json:"color"       binding:"omitempty,max=64"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() event.UpdateEventInput {
	return event.UpdateEventInput{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
		Color:       r.Color,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (h *handler) newEventResp(evt event.Event) eventResp {
	return eventResp{
		ID:          evt.ID,
		Title:       evt.Title,
		Description: evt.Description,
		Date:        h.cal.LocalDate(evt.StartTime),
		StartTime:   evt.StartTime,
		EndTime:     evt.EndTime,
		Location:    evt.Location,
		Color:       evt.Color,
		CreatedAt:   evt.CreatedAt,
		UpdatedAt:   evt.UpdatedAt,
	}
}

type createResp struct {
	Event eventResp `json:"event"`
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
}

type detailResp struct {
	Event eventResp `json:"event"`
}

type updateResp struct {
	Event eventResp `json:"event"`
}
