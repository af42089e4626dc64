package model

import "time"

// HeartedLocation is a place saved as a candidate for the final place vote.
// Hearting carries no vote weight; it only builds the ballot.
type HeartedLocation struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ScheduleID uint   `gorm:"uniqueIndex:idx_hearts_schedule_place; not null"`
	Title      string `gorm:"uniqueIndex:idx_hearts_schedule_place; not null"`
	Address    string `gorm:"uniqueIndex:idx_hearts_schedule_place; not null"`
}

func (h HeartedLocation) Location() Location {
	return Location{Title: h.Title, Address: h.Address}
}
