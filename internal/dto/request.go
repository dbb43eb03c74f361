package dto

import (
	"strings"
	"time"
)

type CreateEventRequest struct {
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description" validate:"notblank,min=10"`
	Date        string `json:"date" validate:"notblank"`
	Location    string `json:"location" validate:"notblank"`
}

type CreateRegistrationRequest struct {
	EventID uint   `json:"eventId" validate:"required"`
	Name    string `json:"name" validate:"notblank,min=2"`
	Email   string `json:"email" validate:"required,email"`
}

type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed rejected"`
}

type CreateAnnouncementRequest struct {
	EventID *uint  `json:"eventId"`
	Title   string `json:"title" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}

// Accepted date layouts, tried in order. Values without a zone are UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps as well as the zone-less forms
// produced by HTML date and datetime-local inputs.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
