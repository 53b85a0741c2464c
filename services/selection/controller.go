package selection

import (
	"strings"

	"rangely/models"
	"rangely/services/restriction"
)

// Result is the outcome of one controller transition. Success with a non-empty
// Message means the selection changed but was clamped short of the requested
// day; callers must not treat a message alone as failure.
type Result struct {
	Selection models.Selection `json:"selection"`
	Success   bool             `json:"success"`
	Message   string           `json:"message,omitempty"`
}

// Controller turns a sequence of pointed-at days into a coherent,
// restriction-compliant selection. It owns one Evaluator and one Selection
// value; one controller serves one rendered calendar, driven by a serialized
// event loop, so no locking is involved.
type Controller struct {
	eval       *restriction.Evaluator
	sel        models.Selection
	singleDate bool
}

// NewController builds an idle controller over the given rules. singleDate
// selects single-day mode, where every pick replaces the whole selection and
// no extension or boundary search applies.
func NewController(rules []models.Rule, singleDate bool) *Controller {
	return &Controller{
		eval:       restriction.NewEvaluator(rules),
		sel:        models.EmptySelection(),
		singleDate: singleDate,
	}
}

// RestoreController rebuilds a controller around a previously captured
// selection, e.g. one loaded from the session cache between HTTP calls.
func RestoreController(rules []models.Rule, sel models.Selection, singleDate bool) *Controller {
	c := NewController(rules, singleDate)
	c.sel = sel
	return c
}

// Snapshot returns the current selection value.
func (c *Controller) Snapshot() models.Selection {
	return c.sel
}

// SetRestrictions swaps the evaluator for a new configuration. The in-progress
// selection is deliberately untouched: a config change mid-drag must not cost
// the user their anchor.
func (c *Controller) SetRestrictions(rules []models.Rule) {
	c.eval = restriction.NewEvaluator(rules)
}

// Clear returns the controller to Idle.
func (c *Controller) Clear() Result {
	c.sel = models.EmptySelection()
	return Result{Selection: c.sel, Success: true}
}

// StartSelection begins a gesture at d. A blocked day leaves the controller
// idle and reports the blocking messages; an allowed day becomes the anchor.
func (c *Controller) StartSelection(d models.Day) Result {
	next, res := start(c.eval, c.sel, d, c.singleDate)
	c.sel = next
	return res
}

// UpdateSelection extends the current gesture toward d. When the whole
// interval from the anchor is blocked, the furthest still-valid extension is
// substituted (see boundary.go) and the blocking reason is surfaced as an
// informational message.
func (c *Controller) UpdateSelection(d models.Day) Result {
	next, res := update(c.eval, c.sel, d, c.singleDate)
	c.sel = next
	return res
}

// start is the Idle -> Selecting transition, pure over its inputs.
func start(eval *restriction.Evaluator, sel models.Selection, d models.Day, singleDate bool) (models.Selection, Result) {
	dec := eval.EvaluateDay(d)
	if !dec.Allowed {
		return sel, Result{Selection: sel, Success: false, Message: joinMessages(dec.Messages)}
	}

	next := models.Selection{
		Anchor:    &d,
		Start:     &d,
		Direction: models.DirectionNone,
	}
	if singleDate {
		next.End = &d
	}
	return next, Result{Selection: next, Success: true}
}

// update is the Selecting extension transition, pure over its inputs.
func update(eval *restriction.Evaluator, sel models.Selection, d models.Day, singleDate bool) (models.Selection, Result) {
	if !sel.Active() {
		return sel, Result{Selection: sel, Success: false, Message: ErrNoActiveSelection.Message}
	}

	if singleDate {
		dec := eval.EvaluateDay(d)
		if !dec.Allowed {
			return sel, Result{Selection: sel, Success: false, Message: joinMessages(dec.Messages)}
		}
		next := models.Selection{Anchor: &d, Start: &d, End: &d, Direction: models.DirectionNone}
		return next, Result{Selection: next, Success: true}
	}

	anchor := *sel.Anchor

	// Direction is re-derived on every call so a drag can reverse mid-gesture.
	direction := models.DirectionForward
	if d.Before(anchor) {
		direction = models.DirectionBackward
	}

	// An anchor inside an operating zone cannot be dragged out of it: the raw
	// candidate is clamped to the zone bound first, keeping the zone message.
	candidate := d
	var zoneMessage string
	if zone, ok := anchorZone(eval, anchor); ok && !zone.Range.Contains(candidate) {
		if direction == models.DirectionForward {
			candidate = zone.Range.End
		} else {
			candidate = zone.Range.Start
		}
		zoneMessage = zone.Message
	}

	lo := models.MinDay(anchor, candidate)
	hi := models.MaxDay(anchor, candidate)

	dec := eval.Evaluate(lo, hi)
	if dec.Allowed {
		next := commit(anchor, lo, hi, direction)
		return next, Result{Selection: next, Success: true, Message: zoneMessage}
	}

	clamp, blockMessages := findClampPoint(eval, anchor, candidate, direction)
	if clamp.Equal(anchor) {
		// Even the adjacent day is blocked: zero-length clamp, reported as
		// failure so the caller can show why nothing moved.
		next := commit(anchor, anchor, anchor, direction)
		return next, Result{
			Selection: next,
			Success:   false,
			Message:   joinMessages(append([]string{zoneMessage}, blockMessages...)),
		}
	}

	next := commit(anchor, models.MinDay(anchor, clamp), models.MaxDay(anchor, clamp), direction)
	return next, Result{
		Selection: next,
		Success:   true,
		Message:   joinMessages(append([]string{zoneMessage}, blockMessages...)),
	}
}

// commit builds the next selection with the anchor fixed and the opposite end
// moved, normalized so Start <= End.
func commit(anchor, start, end models.Day, direction models.SelectionDirection) models.Selection {
	a, s, e := anchor, start, end
	return models.Selection{Anchor: &a, Start: &s, End: &e, Direction: direction}
}

// anchorZone returns the first operating zone containing the anchor.
func anchorZone(eval *restriction.Evaluator, anchor models.Day) (models.Zone, bool) {
	for _, zone := range eval.Zones() {
		if zone.Range.Contains(anchor) {
			return zone, true
		}
	}
	return models.Zone{}, false
}

// joinMessages flattens the evaluator's per-rule messages into one note.
func joinMessages(messages []string) string {
	var parts []string
	for _, m := range messages {
		if m != "" {
			parts = append(parts, m)
		}
	}
	return strings.Join(parts, "; ")
}
