// Package notification renders and delivers registration emails. Delivery is
// fire-and-forget: the Dispatcher never reports failures to its caller.
package notification

import (
	"context"
	"time"
)

// Payload carries everything needed to render either message kind. It is
// also the wire format of queued reminders.
type Payload struct {
	RegistrationID uint      `json:"registrationId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	EventTitle     string    `json:"eventTitle"`
	EventDate      time.Time `json:"eventDate"`
	EventLocation  string    `json:"eventLocation"`
}

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Notifier is the delivery transport.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
