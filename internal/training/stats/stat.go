package stats

import (
	"strings"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"

	"github.com/google/uuid"
)

// TrainingTypeStat is the time spent on one training type in one completed
// training day of an assignment.
type TrainingTypeStat struct {
	ID                  uuid.UUID     `json:"id"`
	UserID              uuid.UUID     `json:"userId"`
	AssignmentID        uuid.UUID     `json:"assignmentId"`
	WorkoutCompletionID *uuid.UUID    `json:"workoutCompletionId,omitempty"`
	TrainingDate        calendar.Date `json:"trainingDate"`
	TrainingType        string        `json:"trainingType"`
	Minutes             int           `json:"minutes"`
}

// excludedTrainingTypes never count toward reportable training time.
var excludedTrainingTypes = map[string]struct{}{
	"mobility":   {},
	"stability":  {},
	"activation": {},
	"neural act": {},
	"recovery":   {},
}

// NormalizeTrainingType trims and lower-cases a block label.
func NormalizeTrainingType(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// IsReportable tells whether a block label produces stats.
func IsReportable(label string) bool {
	normalized := NormalizeTrainingType(label)
	if normalized == "" {
		return false
	}
	_, excluded := excludedTrainingTypes[normalized]
	return !excluded
}
