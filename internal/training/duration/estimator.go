// Package duration estimates how long an exercise takes from the way coaches
// write sets, reps, tempo and rest. Nothing here returns an error: input that
// can not be read contributes zero.
package duration

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const defaultTempoSeconds = 3.0

// RepsMode tells how the reps field of an exercise should be read.
type RepsMode string

const (
	// RepsModeAuto sniffs the shape of the reps string.
	RepsModeAuto RepsMode = ""
	RepsModeReps RepsMode = "reps"
	// RepsModeTime reads a bare number in reps as seconds.
	RepsModeTime RepsMode = "time"
)

type Exercise struct {
	Sets     int      `json:"sets"`
	Reps     string   `json:"reps"`
	Tempo    string   `json:"tempo"`
	Rest     string   `json:"rest"`
	RepsMode RepsMode `json:"repsMode,omitempty"`
}

// Reps is a classified reps field: either a literal duration or a rep count.
type Reps struct {
	IsTime  bool    `json:"isTime"`
	Seconds float64 `json:"seconds,omitempty"`
	Count   int     `json:"count,omitempty"`
}

var (
	minutesSecondsRe = regexp.MustCompile(`^(\d+):(\d{2})$`)
	timeUnitRe       = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*(sec|''|min|')$`)
	leadingIntRe     = regexp.MustCompile(`^\s*(\d+)`)
)

// ParseRepsToTime classifies reps as a time ("15:00", "30sec", "45''", "2'",
// "1,5min") or a count ("10", "8/8" -> 16, "1.2.1.3" -> 7).
func ParseRepsToTime(reps string) Reps {
	reps = strings.TrimSpace(reps)

	if m := minutesSecondsRe.FindStringSubmatch(reps); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		return Reps{IsTime: true, Seconds: float64(minutes*60 + seconds)}
	}

	if m := timeUnitRe.FindStringSubmatch(reps); m != nil {
		value := parseFloat(m[1])
		switch strings.ToLower(m[2]) {
		case "min", "'":
			return Reps{IsTime: true, Seconds: value * 60}
		default:
			return Reps{IsTime: true, Seconds: value}
		}
	}

	return Reps{Count: parseRepCount(reps)}
}

func parseRepCount(reps string) int {
	if !strings.ContainsAny(reps, "./") {
		return atoi(reps)
	}

	total := 0
	segments := strings.FieldsFunc(reps, func(r rune) bool {
		return r == '.' || r == '/'
	})
	for _, segment := range segments {
		total += atoi(segment)
	}
	return total
}

// ParseTempoToSeconds returns seconds per rep. Segments are dot separated and an
// x/X segment (explosive) counts as half a second. Empty tempo means 3s.
func ParseTempoToSeconds(tempo string) float64 {
	tempo = strings.TrimSpace(tempo)
	if tempo == "" {
		return defaultTempoSeconds
	}

	total := 0.0
	for _, segment := range strings.Split(tempo, ".") {
		segment = strings.TrimSpace(segment)
		if strings.EqualFold(segment, "x") {
			total += 0.5
			continue
		}
		total += parseFloat(segment)
	}
	return total
}

// ParseRestTime converts rest between sets into seconds. "1:30" is MM:SS, "2'"
// is minutes, "45s" is seconds and a bare number is minutes.
func ParseRestTime(rest string) float64 {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return 0
	}

	switch {
	case strings.Contains(rest, ":"):
		parts := strings.SplitN(rest, ":", 2)
		return parseFloat(parts[0])*60 + parseFloat(parts[1])
	case strings.Contains(rest, "'"):
		return parseFloat(strings.ReplaceAll(rest, "'", "")) * 60
	case strings.Contains(strings.ToLower(rest), "s"):
		lower := strings.ToLower(rest)
		lower = strings.TrimSuffix(lower, "sec")
		lower = strings.TrimSuffix(lower, "s")
		return parseFloat(lower)
	default:
		return parseFloat(rest) * 60
	}
}

// EstimateSeconds is the total time an exercise takes inside a block, rest included.
func EstimateSeconds(ex Exercise) float64 {
	if ex.Sets <= 0 {
		return 0
	}
	sets := float64(ex.Sets)
	restSeconds := ParseRestTime(ex.Rest)

	reps := ParseRepsToTime(ex.Reps)
	if !reps.IsTime && ex.RepsMode == RepsModeTime {
		reps = Reps{IsTime: true, Seconds: parseFloat(ex.Reps)}
	}

	if reps.IsTime {
		return sets*reps.Seconds + sets*restSeconds
	}
	return sets*float64(reps.Count)*ParseTempoToSeconds(ex.Tempo) + sets*restSeconds
}

// EstimateBlockSeconds sums EstimateSeconds over the exercises of a block.
func EstimateBlockSeconds(exercises []Exercise) float64 {
	total := 0.0
	for _, ex := range exercises {
		total += EstimateSeconds(ex)
	}
	return total
}

// Minutes rounds seconds to whole minutes, half away from zero.
func Minutes(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(seconds / 60))
}

// atoi reads the leading integer of s, so "10-12" is 10 and "12 reps" is 12.
func atoi(s string) int {
	m := leadingIntRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
