package model_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/yaksok/yaksok/internal/webserver/infrastructure"
	"github.com/yaksok/yaksok/internal/webserver/model"
	"gorm.io/gorm"
)

func newSchedule(t *testing.T, repository *model.ScheduleRepository) *model.Schedule {
	t.Helper()

	schedule := model.Schedule{
		Uuid:     uuid.NewString(),
		PlanName: "Team dinner",
		Month:    "2026-09",
		Dates:    []string{"2026-09-04"},
		Locations: []model.Location{
			{Title: "강남역", Address: "서울 강남구 강남대로"},
		},
		CreatedBy:    1,
		Participants: []uint{2, 3},
	}
	if err := repository.Create(&schedule); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return &schedule
}

func TestFinalizeWritesOnce(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	repository := &model.ScheduleRepository{DB: db}
	schedule := newSchedule(t, repository)

	if err := repository.FinalizeDate(schedule.ID, "2026-09-04"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// The second write is a no-op, the first committed value stands
	if err := repository.FinalizeDate(schedule.ID, "2026-09-05"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	decided, err := repository.FindByID(schedule.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if decided.FinalDate == nil || *decided.FinalDate != "2026-09-04" {
		t.Errorf("Expected final date 2026-09-04, got %v", decided.FinalDate)
	}

	first := model.Location{Title: "강남역", Address: "서울 강남구 강남대로"}
	second := model.Location{Title: "홍대입구", Address: "서울 마포구 양화로"}
	if err := repository.FinalizeLocation(schedule.ID, first); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := repository.FinalizeLocation(schedule.ID, second); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := repository.FinalizePlace(schedule.ID, second); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	decided, err = repository.FindByID(schedule.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if decided.FinalLocation == nil || decided.FinalLocation.Title != "강남역" {
		t.Errorf("Expected final location 강남역, got %v", decided.FinalLocation)
	}
	if decided.FinalLocation != nil && decided.FinalLocation.Address != "서울 강남구 강남대로" {
		t.Errorf("Expected the committed location to keep its address, got %q", decided.FinalLocation.Address)
	}
	if decided.FinalPlace == nil || decided.FinalPlace.Title != "홍대입구" {
		t.Errorf("Expected final place 홍대입구, got %v", decided.FinalPlace)
	}
}

func TestStartVotingIsIdempotent(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	repository := &model.ScheduleRepository{DB: db}
	schedule := newSchedule(t, repository)

	for i := 0; i < 2; i++ {
		if err := repository.StartVoting(schedule.ID); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	started, err := repository.FindByID(schedule.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !started.VotingStarted {
		t.Error("Expected voting to be started")
	}
}

func TestAcceptMissingInvitation(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	invitations := &model.InvitationRepository{DB: db}

	if err := invitations.Accept(1, 1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestHeartingTwiceKeepsOneRow(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	hearts := &model.HeartedLocationRepository{DB: db}

	for i := 0; i < 2; i++ {
		heart := model.HeartedLocation{
			ScheduleID: 1,
			Title:      "갈비명가",
			Address:    "서울 강남구 테헤란로 12",
		}
		if err := hearts.Create(&heart); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if total := hearts.Total(1); total != 1 {
		t.Errorf("Expected 1 hearted place, got %d", total)
	}
}
