package completions

import (
	"errors"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"

	"github.com/google/uuid"
)

var (
	ErrCompletionNotFound = errors.New("completion not found")
	ErrNoScheduleSlot     = errors.New("training date has no program day")
	ErrDateNotScheduled   = errors.New("date is not a training date of the assignment")
	ErrAssignmentCanceled = errors.New("assignment is cancelled")
	ErrNotCompleted       = errors.New("workout is not completed")
	ErrStatsNotStored     = errors.New("training type stats not stored")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
)

// IsTerminal reports whether the reconciler must leave a row with this status alone.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusMissed
}

// ColorFor is the status color shown next to a workout.
func ColorFor(status Status) string {
	switch status {
	case StatusCompleted:
		return "green"
	case StatusMissed:
		return "red"
	default:
		return ""
	}
}

// Completion is the record of one scheduled training day of an assignment.
// There is at most one per (AssignmentID, ScheduledDate).
type Completion struct {
	ID            uuid.UUID      `json:"id"`
	AssignmentID  uuid.UUID      `json:"assignmentId"`
	UserID        uuid.UUID      `json:"userId"`
	ProgramID     uuid.UUID      `json:"programId"`
	ScheduledDate calendar.Date  `json:"scheduledDate"`
	WeekNumber    int            `json:"weekNumber"`
	DayNumber     int            `json:"dayNumber"`
	Status        Status         `json:"status"`
	StatusColor   string         `json:"statusColor,omitempty"`
	CompletedDate *calendar.Date `json:"completedDate,omitempty"`
}
