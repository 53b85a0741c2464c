package restriction

import (
	"rangely/models"
)

// checkRule dispatches on the rule variant. [a,b] is already normalized.
// Rules whose payload is missing or malformed never violate: a bad config
// entry degrades to "no constraint" instead of locking out every date.
func checkRule(rule models.Rule, a, b models.Day) (bool, string) {
	switch rule.Kind {
	case models.RuleKindBoundary:
		return checkBoundary(rule, a, b)
	case models.RuleKindDateRange:
		return checkDateRange(rule, a, b)
	case models.RuleKindAllowedRanges:
		return checkAllowedRanges(rule, a, b)
	case models.RuleKindWeekday:
		return checkWeekday(rule, a)
	case models.RuleKindRestrictedBoundary:
		return checkRestrictedBoundary(rule, a, b)
	default:
		return false, ""
	}
}

// checkBoundary blocks the side of the boundary named by Direction. With no
// explicit Inclusive flag the boundary date itself stays selectable: "before"
// blocks strictly earlier days, "after" blocks strictly later days.
func checkBoundary(rule models.Rule, a, b models.Day) (bool, string) {
	br := rule.Boundary
	if br == nil || br.Date.IsZero() {
		return false, ""
	}
	inclusive := br.Inclusive != nil && *br.Inclusive

	switch br.Direction {
	case models.DirectionBefore:
		if a.Before(br.Date) || (inclusive && a.Equal(br.Date)) {
			return true, rule.Message
		}
	case models.DirectionAfter:
		if b.After(br.Date) || (inclusive && b.Equal(br.Date)) {
			return true, rule.Message
		}
	}
	return false, ""
}

// checkDateRange blocks intersection with any listed interval. A violated
// interval's own message wins over the rule message when it has one.
func checkDateRange(rule models.Rule, a, b models.Day) (bool, string) {
	dr := rule.DateRange
	if dr == nil {
		return false, ""
	}
	for _, r := range dr.Ranges {
		if !r.Valid() {
			continue
		}
		if r.Overlaps(a, b) {
			if r.Message != "" {
				return true, r.Message
			}
			return true, rule.Message
		}
	}
	return false, ""
}

// checkAllowedRanges permits only intervals fully inside one listed window;
// a range must not straddle two windows. A rule with no usable windows is
// inert rather than default-deny, so one malformed config entry cannot lock
// out the whole calendar.
func checkAllowedRanges(rule models.Rule, a, b models.Day) (bool, string) {
	ar := rule.AllowedRanges
	if ar == nil {
		return false, ""
	}
	sawValid := false
	for _, r := range ar.Ranges {
		if !r.Valid() {
			continue
		}
		sawValid = true
		if r.ContainsRange(a, b) {
			return false, ""
		}
	}
	if !sawValid {
		return false, ""
	}
	return true, rule.Message
}

// checkWeekday blocks on the weekday of the interval start.
func checkWeekday(rule models.Rule, a models.Day) (bool, string) {
	wr := rule.Weekday
	if wr == nil {
		return false, ""
	}
	weekday := int(a.Weekday())
	for _, blocked := range wr.Days {
		if blocked == weekday {
			return true, rule.Message
		}
	}
	return false, ""
}

// checkRestrictedBoundary blocks overlap with any zone exception, and
// enforces the optional global min/max clamps.
func checkRestrictedBoundary(rule models.Rule, a, b models.Day) (bool, string) {
	rb := rule.RestrictedBoundary
	if rb == nil {
		return false, ""
	}
	for _, zone := range rb.Zones {
		for _, exc := range zone.Exceptions {
			if !exc.Valid() {
				continue
			}
			if exc.Overlaps(a, b) {
				switch {
				case exc.Message != "":
					return true, exc.Message
				case zone.Message != "":
					return true, zone.Message
				default:
					return true, rule.Message
				}
			}
		}
	}
	if rb.Min != nil && !rb.Min.IsZero() && a.Before(*rb.Min) {
		return true, rule.Message
	}
	if rb.Max != nil && !rb.Max.IsZero() && b.After(*rb.Max) {
		return true, rule.Message
	}
	return false, ""
}
