package selection

import (
	"rangely/models"
	"rangely/services/restriction"
)

// findClampPoint locates the furthest day from the anchor, in the attempted
// direction, for which the whole interval from the anchor is still allowed.
// The caller has already established that the full interval to candidate is
// blocked, so the answer lies strictly between anchor and candidate.
//
// The search bisects over the ordinal day distance instead of scanning day by
// day: drags can span months, and O(log N) Evaluate calls keep every
// pointer-move cheap. Offsets below lastGood are known allowed, offsets at or
// above firstBad are known blocked; the gap is halved until it collapses to
// one day.
//
// Returns the clamp day (the anchor itself when even the adjacent day is
// blocked) and the messages of the rules blocking the first bad offset.
func findClampPoint(eval *restriction.Evaluator, anchor, candidate models.Day, direction models.SelectionDirection) (models.Day, []string) {
	step := 1
	if direction == models.DirectionBackward {
		step = -1
	}

	distance := anchor.DaysUntil(candidate)
	if distance < 0 {
		distance = -distance
	}

	lastGood, firstBad := 0, distance
	for firstBad-lastGood > 1 {
		mid := lastGood + (firstBad-lastGood)/2
		probe := anchor.AddDays(step * mid)
		if eval.Evaluate(anchor, probe).Allowed {
			lastGood = mid
		} else {
			firstBad = mid
		}
	}

	blocking := eval.Evaluate(anchor, anchor.AddDays(step*firstBad))
	return anchor.AddDays(step * lastGood), blocking.Messages
}
