package program

import (
	"errors"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/duration"

	"github.com/google/uuid"
)

var ErrProgramNotFound = errors.New("program not found")

// Program is the read-only structure a coach builds. Only the parts needed
// for scheduling and duration estimation are loaded.
type Program struct {
	ID    uuid.UUID `json:"id"`
	Weeks []Week    `json:"weeks"`
}

type Week struct {
	WeekNumber int   `json:"weekNumber"`
	Days       []Day `json:"days"`
}

type Day struct {
	DayNumber int     `json:"dayNumber"`
	Blocks    []Block `json:"blocks,omitempty"`
}

type Block struct {
	TrainingType string              `json:"trainingType"`
	Exercises    []duration.Exercise `json:"exercises"`
}
