package program

import (
	"sort"
)

// Slot is one training day in a program, addressed by week and day number.
type Slot struct {
	WeekNumber int `json:"weekNumber"`
	DayNumber  int `json:"dayNumber"`
}

// Schedule is the ordered list of slots of a program. The Nth training date of
// an assignment is trained on the Nth slot.
type Schedule []Slot

// BuildSchedule walks weeks by ascending week number and, inside each week, days
// by ascending day number. The input program is not modified.
func BuildSchedule(p Program) Schedule {
	weeks := make([]Week, len(p.Weeks))
	copy(weeks, p.Weeks)
	sort.SliceStable(weeks, func(i, j int) bool {
		return weeks[i].WeekNumber < weeks[j].WeekNumber
	})

	schedule := make(Schedule, 0)
	for _, w := range weeks {
		days := make([]Day, len(w.Days))
		copy(days, w.Days)
		sort.SliceStable(days, func(i, j int) bool {
			return days[i].DayNumber < days[j].DayNumber
		})
		for _, d := range days {
			schedule = append(schedule, Slot{
				WeekNumber: w.WeekNumber,
				DayNumber:  d.DayNumber,
			})
		}
	}

	return schedule
}

// SlotAt returns the slot for the training date at index. The second return
// value is false when the program has fewer days than the index requires.
func (s Schedule) SlotAt(index int) (Slot, bool) {
	if index < 0 || index >= len(s) {
		return Slot{}, false
	}
	return s[index], true
}
