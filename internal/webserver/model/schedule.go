package model

import (
	"time"

	"github.com/yaksok/yaksok/internal/tally"
)

// Schedule is the meetup being coordinated. Candidate dates and locations are
// the organizer's proposal; final fields stay null until the corresponding
// round commits a decision and are never overwritten afterwards.
type Schedule struct {
	ID            uint `gorm:"primarykey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Uuid          string `gorm:"uniqueIndex; not null"`
	PlanName      string `gorm:"not null"`
	Month         string
	Dates         []string   `gorm:"serializer:json"`
	Locations     []Location `gorm:"serializer:json"`
	CreatedBy     uint       `gorm:"not null; index"`
	Participants  []uint     `gorm:"serializer:json"`
	VotingStarted bool       `gorm:"not null; default:false"`
	FinalDate     *string
	FinalLocation *Location `gorm:"serializer:json"`
	FinalPlace    *Location `gorm:"serializer:json"`
}

// AllParticipants returns every user expected to act on this schedule. The
// organizer always counts, listed or not.
func (s Schedule) AllParticipants() []uint {
	return tally.Participants(s.Participants, s.CreatedBy)
}

func (s Schedule) IsParticipant(userID uint) bool {
	for _, id := range s.AllParticipants() {
		if id == userID {
			return true
		}
	}
	return false
}

func (s Schedule) Validate() map[string]string {
	errs := map[string]string{}

	if s.PlanName == "" {
		errs["plan_name"] = "Plan name cannot be empty"
	}

	if len(s.PlanName) > 50 {
		errs["plan_name"] = "Plan name cannot be longer than 50 characters"
	}

	if s.Month == "" {
		errs["month"] = "Month cannot be empty"
	}

	if len(s.Dates) == 0 {
		errs["dates"] = "At least one candidate date is required"
	}

	if len(s.Locations) == 0 {
		errs["locations"] = "At least one candidate location is required"
	}

	return errs
}
