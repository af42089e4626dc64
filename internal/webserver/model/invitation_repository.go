package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type InvitationRepository struct {
	DB *gorm.DB
}

func (i *InvitationRepository) Create(invitation *Invitation) error {
	if result := i.DB.Create(invitation); result.Error != nil {
		log.Printf("error creating invitation: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (i *InvitationRepository) FindByScheduleAndUser(scheduleID, userID uint) (*Invitation, error) {
	var invitation Invitation

	result := i.DB.Where("schedule_id = ? AND user_id = ?", scheduleID, userID).First(&invitation)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error retrieving invitation: %s\n", result.Error)
		return nil, result.Error
	}
	return &invitation, nil
}

func (i *InvitationRepository) BySchedule(scheduleID uint) ([]Invitation, error) {
	var invitations []Invitation

	result := i.DB.Where("schedule_id = ?", scheduleID).Find(&invitations)
	if result.Error != nil {
		log.Printf("error listing invitations: %s\n", result.Error)
		return nil, result.Error
	}
	return invitations, nil
}

func (i *InvitationRepository) ByUserAndStatus(userID uint, status string) ([]Invitation, error) {
	var invitations []Invitation

	result := i.DB.Where("user_id = ? AND status = ?", userID, status).Order("created_at DESC").Find(&invitations)
	if result.Error != nil {
		log.Printf("error listing invitations: %s\n", result.Error)
		return nil, result.Error
	}
	return invitations, nil
}

// Accept moves a pending invitation to accepted and points the participant at
// the first stage of the flow. Only pending rows match, so accepting again
// cannot reset the stage a participant already progressed to.
func (i *InvitationRepository) Accept(scheduleID, userID uint) error {
	result := i.DB.Model(&Invitation{}).
		Where("schedule_id = ? AND user_id = ? AND status = ?", scheduleID, userID, InvitationPending).
		Updates(map[string]interface{}{"status": InvitationAccepted, "last_stage": StageInvited})
	if result.Error != nil {
		log.Printf("error accepting invitation: %s\n", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the invitation row. A missing row is not an error, matching
// the destructive reject semantics.
func (i *InvitationRepository) Delete(scheduleID, userID uint) error {
	result := i.DB.Where("schedule_id = ? AND user_id = ?", scheduleID, userID).Delete(&Invitation{})
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("error deleting invitation: %s\n", result.Error)
	}
	return nil
}

// RecordLastStage is a best-effort write used only to resume a flow; callers
// ignore its error on purpose.
func (i *InvitationRepository) RecordLastStage(scheduleID, userID uint, stage string) error {
	result := i.DB.Model(&Invitation{}).
		Where("schedule_id = ? AND user_id = ?", scheduleID, userID).
		Update("last_stage", stage)
	if result.Error != nil {
		log.Printf("error recording last stage: %s\n", result.Error)
	}
	return result.Error
}
