package models

import "time"

type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "pending"
	StatusConfirmed RegistrationStatus = "confirmed"
	StatusRejected  RegistrationStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}

// CanTransition encodes the organizer triage policy: a pending registration
// is confirmed or rejected, and a decided one can only be reset to pending.
// Re-applying the current status is always allowed.
func CanTransition(from, to RegistrationStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusRejected
	case StatusConfirmed, StatusRejected:
		return to == StatusPending
	}
	return false
}

type Registration struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	EventID   uint               `gorm:"not null;index" json:"eventId"`
	Name      string             `gorm:"not null" json:"name"`
	Email     string             `gorm:"not null;index" json:"email"`
	Status    RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time          `json:"createdAt"`

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
