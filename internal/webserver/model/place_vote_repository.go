package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type PlaceVoteRepository struct {
	DB *gorm.DB
}

func (p *PlaceVoteRepository) Create(vote *PlaceVote) error {
	if result := p.DB.Create(vote); result.Error != nil {
		log.Printf("error creating place vote: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (p *PlaceVoteRepository) FindByScheduleAndUser(scheduleID, userID uint) (*PlaceVote, error) {
	var vote PlaceVote

	result := p.DB.Where("schedule_id = ? AND user_id = ?", scheduleID, userID).First(&vote)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error retrieving place vote: %s\n", result.Error)
		return nil, result.Error
	}
	return &vote, nil
}

func (p *PlaceVoteRepository) BySchedule(scheduleID uint) ([]PlaceVote, error) {
	var votes []PlaceVote

	result := p.DB.Where("schedule_id = ?", scheduleID).Find(&votes)
	if result.Error != nil {
		log.Printf("error listing place votes: %s\n", result.Error)
		return nil, result.Error
	}
	return votes, nil
}

func (p *PlaceVoteRepository) UserIDsBySchedule(scheduleID uint) ([]uint, error) {
	var ids []uint

	result := p.DB.Model(&PlaceVote{}).Where("schedule_id = ?", scheduleID).Pluck("user_id", &ids)
	if result.Error != nil {
		log.Printf("error listing place vote user ids: %s\n", result.Error)
		return nil, result.Error
	}
	return ids, nil
}
