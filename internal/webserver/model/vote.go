package model

import "time"

// Vote is a participant's single pick in the coordination round, cast among
// the candidate sets when no unanimous overlap exists. The location is stored
// by its composite key. One per (schedule, user).
type Vote struct {
	ID            uint `gorm:"primarykey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ScheduleID    uint   `gorm:"uniqueIndex:idx_votes_schedule_user; not null"`
	UserID        uint   `gorm:"uniqueIndex:idx_votes_schedule_user; not null"`
	VotedDate     string `gorm:"not null"`
	VotedLocation string `gorm:"not null"`
}
