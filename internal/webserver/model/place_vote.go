package model

import "time"

// MaxPlaceChoices caps how many hearted places one ballot can carry.
const MaxPlaceChoices = 2

// PlaceVote is a participant's ballot in the final place round: one or two
// hearted place titles. One ballot per (schedule, user), never merged.
type PlaceVote struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ScheduleID uint     `gorm:"uniqueIndex:idx_place_votes_schedule_user; not null"`
	UserID     uint     `gorm:"uniqueIndex:idx_place_votes_schedule_user; not null"`
	Choices    []string `gorm:"serializer:json"`
}
