package progression

import "time"

// Streak math works on UTC calendar days: two completions count as the same
// day when their UTC dates match, regardless of clock time.

// ComputeStreak derives the streak after a completion happening "today".
// First completion ever starts at 1, a completion yesterday continues the
// chain, a second completion today keeps it flat, anything older resets to 1.
func ComputeStreak(prevStreak, prevLongest int, prevDate *time.Time, today time.Time) (newStreak, newLongest int) {
	switch {
	case prevDate == nil:
		newStreak = 1
	case sameDay(*prevDate, today):
		newStreak = prevStreak
	case sameDay(*prevDate, today.AddDate(0, 0, -1)):
		newStreak = prevStreak + 1
	default:
		newStreak = 1
	}
	newLongest = prevLongest
	if newStreak > newLongest {
		newLongest = newStreak
	}
	return newStreak, newLongest
}

// DecayedStreak is the passive counterpart used on read paths: with no new
// completion since before yesterday the current streak is already lost and
// reads as 0. Longest streak and completion totals are never touched here.
func DecayedStreak(current int, last *time.Time, today time.Time) int {
	if current == 0 || last == nil {
		return current
	}
	if sameDay(*last, today) || sameDay(*last, today.AddDate(0, 0, -1)) {
		return current
	}
	return 0
}

// DecayCutoff is the oldest completion instant that still keeps a streak
// alive on read paths: the start of yesterday, UTC. Anything earlier already
// reads as a lost streak.
func DecayCutoff(today time.Time) time.Time {
	y, m, d := today.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
