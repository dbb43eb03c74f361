package models

import "time"

// Announcement is a feed entry. A nil EventID makes it a general announcement.
type Announcement struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	EventID  *uint     `gorm:"index" json:"eventId"`
	Title    string    `gorm:"not null" json:"title"`
	Message  string    `gorm:"not null" json:"message"`
	PostedAt time.Time `gorm:"not null;index" json:"postedAt"`

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
