package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type VoteRepository struct {
	DB *gorm.DB
}

func (v *VoteRepository) Create(vote *Vote) error {
	if result := v.DB.Create(vote); result.Error != nil {
		log.Printf("error creating vote: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (v *VoteRepository) FindByScheduleAndUser(scheduleID, userID uint) (*Vote, error) {
	var vote Vote

	result := v.DB.Where("schedule_id = ? AND user_id = ?", scheduleID, userID).First(&vote)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error retrieving vote: %s\n", result.Error)
		return nil, result.Error
	}
	return &vote, nil
}

func (v *VoteRepository) BySchedule(scheduleID uint) ([]Vote, error) {
	var votes []Vote

	result := v.DB.Where("schedule_id = ?", scheduleID).Find(&votes)
	if result.Error != nil {
		log.Printf("error listing votes: %s\n", result.Error)
		return nil, result.Error
	}
	return votes, nil
}

func (v *VoteRepository) UserIDsBySchedule(scheduleID uint) ([]uint, error) {
	var ids []uint

	result := v.DB.Model(&Vote{}).Where("schedule_id = ?", scheduleID).Pluck("user_id", &ids)
	if result.Error != nil {
		log.Printf("error listing vote user ids: %s\n", result.Error)
		return nil, result.Error
	}
	return ids, nil
}
