package stats

import (
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
)

// Buckets maps a bucket key (week start, month or year) to minutes per training type.
type Buckets map[string]map[string]int

func AggregateByType(stats []TrainingTypeStat) map[string]int {
	byType := make(map[string]int)
	for _, s := range stats {
		byType[s.TrainingType] += s.Minutes
	}
	return byType
}

// AggregateByWeek buckets by the Monday of each row's ISO week, keyed "YYYY-MM-DD".
func AggregateByWeek(stats []TrainingTypeStat) Buckets {
	return aggregateBy(stats, func(d calendar.Date) string {
		return d.WeekStart().String()
	})
}

// AggregateByMonth buckets by calendar month, keyed "YYYY-MM".
func AggregateByMonth(stats []TrainingTypeStat) Buckets {
	return aggregateBy(stats, calendar.Date.MonthKey)
}

// AggregateByYear buckets by calendar year, keyed "YYYY".
func AggregateByYear(stats []TrainingTypeStat) Buckets {
	return aggregateBy(stats, calendar.Date.YearKey)
}

func aggregateBy(stats []TrainingTypeStat, keyFn func(calendar.Date) string) Buckets {
	buckets := make(Buckets)
	for _, s := range stats {
		key := keyFn(s.TrainingDate)
		if _, ok := buckets[key]; !ok {
			buckets[key] = make(map[string]int)
		}
		buckets[key][s.TrainingType] += s.Minutes
	}
	return buckets
}

func TotalMinutes(stats []TrainingTypeStat) int {
	total := 0
	for _, s := range stats {
		total += s.Minutes
	}
	return total
}
