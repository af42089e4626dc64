package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func (r *ResponseRepository) Create(response *Response) error {
	if result := r.DB.Create(response); result.Error != nil {
		log.Printf("error creating response: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (r *ResponseRepository) FindByScheduleAndUser(scheduleID, userID uint) (*Response, error) {
	var response Response

	result := r.DB.Where("schedule_id = ? AND user_id = ?", scheduleID, userID).First(&response)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error retrieving response: %s\n", result.Error)
		return nil, result.Error
	}
	return &response, nil
}

func (r *ResponseRepository) BySchedule(scheduleID uint) ([]Response, error) {
	var responses []Response

	result := r.DB.Where("schedule_id = ?", scheduleID).Find(&responses)
	if result.Error != nil {
		log.Printf("error listing responses: %s\n", result.Error)
		return nil, result.Error
	}
	return responses, nil
}

func (r *ResponseRepository) UserIDsBySchedule(scheduleID uint) ([]uint, error) {
	var ids []uint

	result := r.DB.Model(&Response{}).Where("schedule_id = ?", scheduleID).Pluck("user_id", &ids)
	if result.Error != nil {
		log.Printf("error listing response user ids: %s\n", result.Error)
		return nil, result.Error
	}
	return ids, nil
}
