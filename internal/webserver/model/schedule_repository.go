package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

func (s *ScheduleRepository) Create(schedule *Schedule) error {
	if result := s.DB.Create(schedule); result.Error != nil {
		log.Printf("error creating schedule: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (s *ScheduleRepository) FindByUuid(uuid string) (*Schedule, error) {
	var schedule Schedule

	result := s.DB.Where("uuid = ?", uuid).First(&schedule)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error retrieving schedule: %s\n", result.Error)
		return nil, result.Error
	}
	return &schedule, nil
}

func (s *ScheduleRepository) FindByID(id uint) (*Schedule, error) {
	var schedule Schedule

	result := s.DB.First(&schedule, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error retrieving schedule: %s\n", result.Error)
		return nil, result.Error
	}
	return &schedule, nil
}

// StartVoting flips the place-vote round open. It only succeeds once.
func (s *ScheduleRepository) StartVoting(scheduleID uint) error {
	result := s.DB.Model(&Schedule{}).
		Where("id = ? AND voting_started = ?", scheduleID, false).
		Update("voting_started", true)
	if result.Error != nil {
		log.Printf("error starting voting: %s\n", result.Error)
	}
	return result.Error
}

// FinalizeDate commits the agreed date. The update is conditioned on the
// field still being unset so a second concurrent writer is a harmless no-op
// and the first committed value always wins.
func (s *ScheduleRepository) FinalizeDate(scheduleID uint, date string) error {
	return s.finalize(scheduleID, "final_date", &Schedule{FinalDate: &date})
}

// FinalizeLocation commits the agreed meeting location.
func (s *ScheduleRepository) FinalizeLocation(scheduleID uint, location Location) error {
	return s.finalize(scheduleID, "final_location", &Schedule{FinalLocation: &location})
}

// FinalizePlace commits the winner of the place-vote round.
func (s *ScheduleRepository) FinalizePlace(scheduleID uint, place Location) error {
	return s.finalize(scheduleID, "final_place", &Schedule{FinalPlace: &place})
}

// finalize routes the write through Updates with an explicit Select so the
// json serializer applies to the struct-valued columns.
func (s *ScheduleRepository) finalize(scheduleID uint, column string, value *Schedule) error {
	result := s.DB.Model(&Schedule{}).
		Select(column).
		Where("id = ? AND "+column+" IS NULL", scheduleID).
		Updates(value)
	if result.Error != nil {
		log.Printf("error finalizing %s: %s\n", column, result.Error)
		return result.Error
	}
	// RowsAffected == 0 means someone finalized first; the committed value stands.
	return nil
}
