package assignments

import (
	"errors"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"

	"github.com/google/uuid"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Assignment binds one athlete to one program. TrainingDates are ascending
// calendar days; the Nth date is trained on the Nth slot of the program schedule.
type Assignment struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	ProgramID     uuid.UUID       `json:"programId"`
	CoachID       *uuid.UUID      `json:"coachId,omitempty"`
	Status        Status          `json:"status"`
	TrainingDates []calendar.Date `json:"trainingDates"`
}

// IndexOf returns the position of date in TrainingDates, or -1.
func (a Assignment) IndexOf(date calendar.Date) int {
	for i, d := range a.TrainingDates {
		if d == date {
			return i
		}
	}
	return -1
}

// AllPast tells whether every training date is strictly before today.
// An assignment without dates is never considered finished.
func (a Assignment) AllPast(today calendar.Date) bool {
	if len(a.TrainingDates) == 0 {
		return false
	}
	for _, d := range a.TrainingDates {
		if !d.Before(today) {
			return false
		}
	}
	return true
}
