package progression

import (
	"strings"
	"time"

	"github.com/habipet/backend/pkg/entity"
)

const (
	// DedupWindow is the trailing interval inside which repeat notifications
	// of the same category are candidates for suppression.
	DedupWindow = time.Hour

	// LowStatThreshold is the happiness/health level below which the pet
	// starts complaining.
	LowStatThreshold = 30

	SadPhrase    = "feeling sad"
	UnwellPhrase = "not feeling well"
)

// SuppressedByRecent reports whether any recent notification already carries
// the distinguishing phrase. This is the loose fallback policy, used when the
// caller has no previous stat value to detect a threshold crossing with.
func SuppressedByRecent(recent []entity.Notification, phrase string) bool {
	if phrase == "" {
		return false
	}
	for _, n := range recent {
		if strings.Contains(n.Message, phrase) {
			return true
		}
	}
	return false
}

// CrossedBelow reports whether the stat moved from the non-triggering side of
// the threshold to the triggering side in this update. Preferred policy: one
// warning per downward crossing, however long the stat then stays low.
func CrossedBelow(prev, curr, threshold int) bool {
	return prev >= threshold && curr < threshold
}
