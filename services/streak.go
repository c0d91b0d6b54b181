package services

import (
	"sort"
	"time"
)

const day = 24 * time.Hour

// ComputeStreak counts consecutive UTC days with at least one completion.
// The current streak is alive only when the newest day is today or yesterday.
func ComputeStreak(completions []time.Time, now time.Time) Streak {
	if len(completions) == 0 {
		return Streak{}
	}
	seen := make(map[time.Time]bool)
	days := make([]time.Time, 0, len(completions))
	for _, completion := range completions {
		d := truncateDay(completion)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	streak := Streak{}
	last := days[0]
	streak.LastActivity = &last

	today := truncateDay(now)
	if gap := today.Sub(days[0]); gap == 0 || gap == day {
		streak.Current = 1
		for i := 1; i < len(days); i++ {
			if days[i-1].Sub(days[i]) != day {
				break
			}
			streak.Current++
		}
	}

	run := 1
	streak.Longest = 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == day {
			run++
		} else {
			run = 1
		}
		if run > streak.Longest {
			streak.Longest = run
		}
	}
	return streak
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
