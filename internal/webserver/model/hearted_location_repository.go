package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type HeartedLocationRepository struct {
	DB *gorm.DB
}

// Create saves a hearted place. Hearting the same place twice is a no-op.
func (h *HeartedLocationRepository) Create(heart *HeartedLocation) error {
	result := h.DB.Where(HeartedLocation{
		ScheduleID: heart.ScheduleID,
		Title:      heart.Title,
		Address:    heart.Address,
	}).FirstOrCreate(heart)
	if result.Error != nil {
		log.Printf("error creating hearted location: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (h *HeartedLocationRepository) BySchedule(scheduleID uint) ([]HeartedLocation, error) {
	var hearts []HeartedLocation

	result := h.DB.Where("schedule_id = ?", scheduleID).Order("title ASC").Find(&hearts)
	if result.Error != nil {
		log.Printf("error listing hearted locations: %s\n", result.Error)
		return nil, result.Error
	}
	return hearts, nil
}

func (h *HeartedLocationRepository) Total(scheduleID uint) int64 {
	var totalRows int64
	h.DB.Model(&HeartedLocation{}).Where("schedule_id = ?", scheduleID).Count(&totalRows)
	return totalRows
}

func (h *HeartedLocationRepository) FindByTitle(scheduleID uint, title string) (*HeartedLocation, error) {
	var heart HeartedLocation

	result := h.DB.Where("schedule_id = ? AND title = ?", scheduleID, title).First(&heart)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error retrieving hearted location: %s\n", result.Error)
		return nil, result.Error
	}
	return &heart, nil
}
