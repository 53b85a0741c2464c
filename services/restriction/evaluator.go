package restriction

import (
	"rangely/models"
)

// Evaluator answers whether a candidate day or closed day interval is
// selectable under a restriction configuration. It holds no selection state
// and is a pure function of (rules, candidate interval); swapping the
// configuration means building a fresh Evaluator.
type Evaluator struct {
	rules []models.Rule
}

// NewEvaluator builds an evaluator over an ordered rule list. The slice is
// copied so later mutation by the caller cannot skew results.
func NewEvaluator(rules []models.Rule) *Evaluator {
	owned := make([]models.Rule, len(rules))
	copy(owned, rules)
	return &Evaluator{rules: owned}
}

// Evaluate decides whether the closed interval [a,b] is selectable. A single
// day is the degenerate interval [d,d]. The interval is normalized first, so
// Evaluate(a,b) and Evaluate(b,a) are identical. Every enabled rule is
// checked and every violation contributes a message, in rule order.
func (e *Evaluator) Evaluate(a, b models.Day) models.Decision {
	if a.IsZero() || b.IsZero() {
		return models.Decision{Allowed: false, Messages: []string{"invalid date"}}
	}
	if b.Before(a) {
		a, b = b, a
	}

	var messages []string
	for _, rule := range e.rules {
		if !rule.Enabled {
			continue
		}
		if violated, msg := checkRule(rule, a, b); violated {
			messages = append(messages, msg)
		}
	}
	return models.Decision{Allowed: len(messages) == 0, Messages: messages}
}

// EvaluateDay is shorthand for the degenerate single-day interval.
func (e *Evaluator) EvaluateDay(d models.Day) models.Decision {
	return e.Evaluate(d, d)
}

// Zones returns the operating zones of all enabled restrictedBoundary rules.
// The selection controller uses them for anchor containment; this accessor is
// the only coupling between the two components.
func (e *Evaluator) Zones() []models.Zone {
	var zones []models.Zone
	for _, rule := range e.rules {
		if !rule.Enabled || rule.Kind != models.RuleKindRestrictedBoundary || rule.RestrictedBoundary == nil {
			continue
		}
		for _, zone := range rule.RestrictedBoundary.Zones {
			if !zone.Range.Valid() {
				continue
			}
			if zone.Message == "" {
				zone.Message = rule.Message
			}
			zones = append(zones, zone)
		}
	}
	return zones
}
