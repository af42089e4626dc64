package model

import "time"

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

// Flow stages a participant can resume from, in visit order.
const (
	StageInvited             = "invited-schedule"
	StageWaitingForResponses = "waiting-for-responses"
	StageCoordinate          = "coordinate-schedule"
	StageDetails             = "schedule-details"
	StageWaitingForVotes     = "waiting-for-votes"
	StageFinal               = "final-schedule"
)

// Invitation ties a user to a schedule they have been asked to join. One row
// per (schedule, user); rejecting deletes the row instead of keeping a state.
type Invitation struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ScheduleID uint   `gorm:"uniqueIndex:idx_invitations_schedule_user; not null"`
	UserID     uint   `gorm:"uniqueIndex:idx_invitations_schedule_user; not null"`
	Status     string `gorm:"not null; default:pending"`
	LastStage  string
}

func ValidStage(stage string) bool {
	switch stage {
	case StageInvited, StageWaitingForResponses, StageCoordinate,
		StageDetails, StageWaitingForVotes, StageFinal:
		return true
	}
	return false
}
