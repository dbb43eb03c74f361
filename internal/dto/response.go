package dto

import (
	"time"

	"github.com/Eursukkul/eventclub/internal/models"
)

type EventResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RegistrationResponse struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"eventId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegistrationWithEventResponse struct {
	RegistrationResponse
	Event EventResponse `json:"event"`
}

type AnnouncementResponse struct {
	ID       uint      `json:"id"`
	EventID  *uint     `json:"eventId"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	PostedAt time.Time `json:"postedAt"`
}

type AnnouncementWithEventResponse struct {
	AnnouncementResponse
	Event *EventResponse `json:"event"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.UTC(),
		Location:    e.Location,
		CreatedAt:   e.CreatedAt.UTC(),
	}
}

func ToEventResponses(events []models.Event) []EventResponse {
	resp := make([]EventResponse, len(events))
	for i := range events {
		resp[i] = ToEventResponse(&events[i])
	}
	return resp
}

func ToRegistrationResponse(r *models.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		Name:      r.Name,
		Email:     r.Email,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func ToRegistrationResponses(regs []models.Registration) []RegistrationResponse {
	resp := make([]RegistrationResponse, len(regs))
	for i := range regs {
		resp[i] = ToRegistrationResponse(&regs[i])
	}
	return resp
}

// ToRegistrationWithEventResponses expects Event to be loaded on every row.
func ToRegistrationWithEventResponses(regs []models.Registration) []RegistrationWithEventResponse {
	resp := make([]RegistrationWithEventResponse, 0, len(regs))
	for i := range regs {
		r := &regs[i]
		if r.Event == nil {
			continue
		}
		resp = append(resp, RegistrationWithEventResponse{
			RegistrationResponse: ToRegistrationResponse(r),
			Event:                ToEventResponse(r.Event),
		})
	}
	return resp
}

func ToAnnouncementResponse(a *models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:       a.ID,
		EventID:  a.EventID,
		Title:    a.Title,
		Message:  a.Message,
		PostedAt: a.PostedAt.UTC(),
	}
}

// ToAnnouncementWithEventResponse renders a nil Event as JSON null.
func ToAnnouncementWithEventResponse(a *models.Announcement) AnnouncementWithEventResponse {
	resp := AnnouncementWithEventResponse{AnnouncementResponse: ToAnnouncementResponse(a)}
	if a.Event != nil {
		ev := ToEventResponse(a.Event)
		resp.Event = &ev
	}
	return resp
}

func ToAnnouncementWithEventResponses(items []models.Announcement) []AnnouncementWithEventResponse {
	resp := make([]AnnouncementWithEventResponse, len(items))
	for i := range items {
		resp[i] = ToAnnouncementWithEventResponse(&items[i])
	}
	return resp
}
