package model

import "time"

// Response is a participant's availability submission: the dates and
// locations they can make. One per (schedule, user), written once.
type Response struct {
	ID                uint `gorm:"primarykey"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ScheduleID        uint       `gorm:"uniqueIndex:idx_responses_schedule_user; not null"`
	UserID            uint       `gorm:"uniqueIndex:idx_responses_schedule_user; not null"`
	SelectedDates     []string   `gorm:"serializer:json"`
	SelectedLocations []Location `gorm:"serializer:json"`
}
