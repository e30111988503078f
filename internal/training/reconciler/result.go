package reconciler

import (
	"fmt"
	"time"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Operations that can fail for a single assignment or date.
const (
	OpListCompletions    = "list_completions"
	OpLoadSchedule       = "load_schedule"
	OpInsertMissed       = "insert_missed"
	OpMarkMissed         = "mark_missed"
	OpCompleteAssignment = "complete_assignment"
)

// ItemError is a failure confined to one assignment, or one date of it.
type ItemError struct {
	AssignmentID uuid.UUID      `json:"assignmentId"`
	Date         *calendar.Date `json:"date,omitempty"`
	Op           string         `json:"op"`
	Message      string         `json:"message"`
}

func (e ItemError) Error() string {
	if e.Date != nil {
		return fmt.Sprintf("assignment %s, %s: %s: %s", e.AssignmentID, e.Date, e.Op, e.Message)
	}
	return fmt.Sprintf("assignment %s: %s: %s", e.AssignmentID, e.Op, e.Message)
}

// Result summarizes one reconcile sweep.
type Result struct {
	Trigger   string        `json:"trigger"`
	Today     calendar.Date `json:"today"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`

	Assignments int `json:"assignments"`
	// Created counts missed completions inserted for dates without a row.
	Created int `json:"created"`
	// Updated counts scheduled or pending completions moved to missed.
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	// Structural counts past dates with no program day to map to.
	Structural          int `json:"structural"`
	Failed              int `json:"failed"`
	FinishedAssignments int `json:"finishedAssignments"`

	Errors []ItemError `json:"errors,omitempty"`
}

// Err combines the per item errors, nil when there were none.
func (r *Result) Err() error {
	var err error
	for _, itemErr := range r.Errors {
		err = multierr.Append(err, itemErr)
	}
	return err
}

func (r *Result) addFailure(assignmentID uuid.UUID, date *calendar.Date, op string, err error) {
	r.Failed++
	r.Errors = append(r.Errors, ItemError{
		AssignmentID: assignmentID,
		Date:         date,
		Op:           op,
		Message:      err.Error(),
	})
}
