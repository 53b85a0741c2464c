package selection

import (
	"testing"

	"rangely/models"
)

func day(t *testing.T, s string) models.Day {
	t.Helper()
	d, err := models.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func dayRange(t *testing.T, start, end string) models.DayRange {
	t.Helper()
	return models.DayRange{Start: day(t, start), End: day(t, end)}
}

func boundaryBefore(t *testing.T, date, message string) models.Rule {
	t.Helper()
	return models.Rule{
		Kind:    models.RuleKindBoundary,
		Enabled: true,
		Message: message,
		Boundary: &models.BoundaryRule{
			Date:      day(t, date),
			Direction: models.DirectionBefore,
		},
	}
}

func blackout(t *testing.T, start, end, message string) models.Rule {
	t.Helper()
	return models.Rule{
		Kind:    models.RuleKindDateRange,
		Enabled: true,
		Message: message,
		DateRange: &models.DateRangeRule{
			Ranges: []models.DayRange{dayRange(t, start, end)},
		},
	}
}

func assertDay(t *testing.T, got *models.Day, want string) {
	t.Helper()
	if got == nil {
		t.Fatalf("day is nil, want %s", want)
	}
	if got.String() != want {
		t.Fatalf("day = %s, want %s", got, want)
	}
}

func TestStartSelectionBlockedLeavesIdle(t *testing.T) {
	// Scenario: everything before 2025-06-01 is off limits.
	c := NewController([]models.Rule{boundaryBefore(t, "2025-06-01", "too early")}, false)

	res := c.StartSelection(day(t, "2025-05-30"))
	if res.Success {
		t.Fatal("blocked start reported success")
	}
	if res.Message != "too early" {
		t.Errorf("message = %q, want %q", res.Message, "too early")
	}
	if c.Snapshot().Active() {
		t.Error("blocked start left an anchor behind")
	}
}

func TestStartThenExtendAllowed(t *testing.T) {
	c := NewController([]models.Rule{boundaryBefore(t, "2025-06-01", "too early")}, false)

	if res := c.StartSelection(day(t, "2025-06-10")); !res.Success {
		t.Fatalf("allowed start failed: %q", res.Message)
	}
	res := c.UpdateSelection(day(t, "2025-06-20"))
	if !res.Success || res.Message != "" {
		t.Fatalf("clean extend: success=%v message=%q", res.Success, res.Message)
	}

	sel := c.Snapshot()
	assertDay(t, sel.Start, "2025-06-10")
	assertDay(t, sel.End, "2025-06-20")
	assertDay(t, sel.Anchor, "2025-06-10")
	if sel.Direction != models.DirectionForward {
		t.Errorf("direction = %s, want forward", sel.Direction)
	}
}

func TestExtendClampsBeforeBlackout(t *testing.T) {
	c := NewController([]models.Rule{blackout(t, "2025-07-04", "2025-07-04", "holiday closure")}, false)

	c.StartSelection(day(t, "2025-07-01"))
	res := c.UpdateSelection(day(t, "2025-07-10"))

	if !res.Success {
		t.Fatalf("clamped extend should succeed, got failure: %q", res.Message)
	}
	if res.Message != "holiday closure" {
		t.Errorf("clamp message = %q, want %q", res.Message, "holiday closure")
	}
	sel := c.Snapshot()
	assertDay(t, sel.Start, "2025-07-01")
	assertDay(t, sel.End, "2025-07-03")
}

func TestBoundarySearchClampsExactly(t *testing.T) {
	// Allowed through 2025-06-14, blocked from 2025-06-15: a drag to +5 days
	// past the edge must land exactly on the last good day.
	c := NewController([]models.Rule{blackout(t, "2025-06-15", "2025-09-30", "booked out")}, false)

	c.StartSelection(day(t, "2025-06-01"))
	res := c.UpdateSelection(day(t, "2025-06-20"))

	if !res.Success {
		t.Fatalf("partial extension should succeed, got failure: %q", res.Message)
	}
	sel := c.Snapshot()
	assertDay(t, sel.End, "2025-06-14")
	if res.Message != "booked out" {
		t.Errorf("clamp message = %q, want %q", res.Message, "booked out")
	}
}

func TestAdjacentDayBlockedClampsToAnchor(t *testing.T) {
	c := NewController([]models.Rule{blackout(t, "2025-06-02", "2025-09-30", "booked out")}, false)

	c.StartSelection(day(t, "2025-06-01"))
	res := c.UpdateSelection(day(t, "2025-06-06"))

	if res.Success {
		t.Fatal("zero-length clamp must report failure")
	}
	if res.Message != "booked out" {
		t.Errorf("failure message = %q, want %q", res.Message, "booked out")
	}
	sel := c.Snapshot()
	assertDay(t, sel.End, "2025-06-01")
	assertDay(t, sel.Anchor, "2025-06-01")
}

func TestBackwardExtensionClamps(t *testing.T) {
	c := NewController([]models.Rule{blackout(t, "2025-06-05", "2025-06-05", "maintenance day")}, false)

	c.StartSelection(day(t, "2025-06-08"))
	res := c.UpdateSelection(day(t, "2025-06-01"))

	if !res.Success {
		t.Fatalf("backward clamp should succeed, got failure: %q", res.Message)
	}
	sel := c.Snapshot()
	assertDay(t, sel.Start, "2025-06-06")
	assertDay(t, sel.End, "2025-06-08")
	if sel.Direction != models.DirectionBackward {
		t.Errorf("direction = %s, want backward", sel.Direction)
	}
}

func TestDirectionReversalMidGesture(t *testing.T) {
	c := NewController(nil, false)

	c.StartSelection(day(t, "2025-06-10"))
	c.UpdateSelection(day(t, "2025-06-20"))
	res := c.UpdateSelection(day(t, "2025-06-05"))

	if !res.Success {
		t.Fatalf("reversed extend failed: %q", res.Message)
	}
	sel := c.Snapshot()
	assertDay(t, sel.Start, "2025-06-05")
	assertDay(t, sel.End, "2025-06-10")
	assertDay(t, sel.Anchor, "2025-06-10")
	if sel.Direction != models.DirectionBackward {
		t.Errorf("direction = %s, want backward", sel.Direction)
	}
}

func TestAllowedRangesClampToWindowEnd(t *testing.T) {
	c := NewController([]models.Rule{{
		Kind:    models.RuleKindAllowedRanges,
		Enabled: true,
		Message: "outside operating window",
		AllowedRanges: &models.AllowedRangesRule{
			Ranges: []models.DayRange{dayRange(t, "2025-03-01", "2025-03-15")},
		},
	}}, false)

	c.StartSelection(day(t, "2025-03-10"))
	res := c.UpdateSelection(day(t, "2025-03-20"))

	if !res.Success {
		t.Fatalf("clamped extend should succeed, got failure: %q", res.Message)
	}
	sel := c.Snapshot()
	assertDay(t, sel.End, "2025-03-15")
}

func zoneRules(t *testing.T) []models.Rule {
	t.Helper()
	return []models.Rule{{
		Kind:    models.RuleKindRestrictedBoundary,
		Enabled: true,
		Message: "outside season",
		RestrictedBoundary: &models.RestrictedBoundaryRule{
			Zones: []models.Zone{{
				Name:    "july season",
				Range:   dayRange(t, "2025-07-01", "2025-07-31"),
				Message: "selection limited to the july season",
				Exceptions: []models.DayRange{
					{Start: day(t, "2025-07-04"), End: day(t, "2025-07-04"), Message: "closed for the holiday"},
				},
			}},
		},
	}}
}

func TestZoneExceptionClampsInside(t *testing.T) {
	c := NewController(zoneRules(t), false)

	c.StartSelection(day(t, "2025-07-02"))
	res := c.UpdateSelection(day(t, "2025-07-04"))

	if !res.Success {
		t.Fatalf("clamp before exception should succeed, got failure: %q", res.Message)
	}
	sel := c.Snapshot()
	assertDay(t, sel.End, "2025-07-03")
	if res.Message != "closed for the holiday" {
		t.Errorf("message = %q, want exception message", res.Message)
	}
}

func TestAnchorCannotLeaveItsZone(t *testing.T) {
	c := NewController(zoneRules(t), false)

	// Anchor past the exception so only the zone bound clamps.
	c.StartSelection(day(t, "2025-07-05"))
	res := c.UpdateSelection(day(t, "2025-08-05"))

	if !res.Success {
		t.Fatalf("zone-bound clamp should succeed, got failure: %q", res.Message)
	}
	sel := c.Snapshot()
	assertDay(t, sel.End, "2025-07-31")
	if res.Message != "selection limited to the july season" {
		t.Errorf("message = %q, want zone message", res.Message)
	}
}

func TestZoneBoundThenExceptionClamp(t *testing.T) {
	// Dragging out of the zone from before the exception hits the zone bound
	// first, then the exception inside it.
	c := NewController(zoneRules(t), false)

	c.StartSelection(day(t, "2025-07-02"))
	res := c.UpdateSelection(day(t, "2025-08-05"))

	if !res.Success {
		t.Fatalf("clamped extend should succeed, got failure: %q", res.Message)
	}
	sel := c.Snapshot()
	assertDay(t, sel.End, "2025-07-03")
	if res.Message != "selection limited to the july season; closed for the holiday" {
		t.Errorf("message = %q, want zone and exception messages", res.Message)
	}
}

func TestUpdateWithoutAnchorFails(t *testing.T) {
	c := NewController(nil, false)

	res := c.UpdateSelection(day(t, "2025-06-10"))
	if res.Success {
		t.Fatal("extend with no active selection reported success")
	}
	if res.Message != ErrNoActiveSelection.Message {
		t.Errorf("message = %q, want %q", res.Message, ErrNoActiveSelection.Message)
	}
	if c.Snapshot().Active() {
		t.Error("state mutated by invalid call")
	}
}

func TestSetRestrictionsKeepsSelection(t *testing.T) {
	c := NewController(nil, false)

	c.StartSelection(day(t, "2025-06-10"))
	c.UpdateSelection(day(t, "2025-06-12"))

	c.SetRestrictions([]models.Rule{blackout(t, "2025-06-15", "2025-06-15", "newly blocked")})

	sel := c.Snapshot()
	assertDay(t, sel.Anchor, "2025-06-10")
	assertDay(t, sel.End, "2025-06-12")

	// The new configuration governs the next extension.
	res := c.UpdateSelection(day(t, "2025-06-20"))
	if !res.Success {
		t.Fatalf("extend under new rules failed: %q", res.Message)
	}
	assertDay(t, c.Snapshot().End, "2025-06-14")
}

func TestSingleDateMode(t *testing.T) {
	c := NewController([]models.Rule{blackout(t, "2025-06-05", "2025-06-05", "maintenance day")}, true)

	res := c.StartSelection(day(t, "2025-06-01"))
	if !res.Success {
		t.Fatalf("single-date start failed: %q", res.Message)
	}
	sel := c.Snapshot()
	assertDay(t, sel.Start, "2025-06-01")
	assertDay(t, sel.End, "2025-06-01")

	// A new pick replaces the whole selection; no boundary search applies.
	res = c.UpdateSelection(day(t, "2025-06-10"))
	if !res.Success {
		t.Fatalf("single-date repick failed: %q", res.Message)
	}
	sel = c.Snapshot()
	assertDay(t, sel.Start, "2025-06-10")
	assertDay(t, sel.End, "2025-06-10")

	// A blocked pick changes nothing.
	res = c.UpdateSelection(day(t, "2025-06-05"))
	if res.Success {
		t.Fatal("blocked single-date pick reported success")
	}
	assertDay(t, c.Snapshot().Start, "2025-06-10")
}

func TestClearReturnsToIdle(t *testing.T) {
	c := NewController(nil, false)

	c.StartSelection(day(t, "2025-06-10"))
	res := c.Clear()
	if !res.Success {
		t.Fatal("clear failed")
	}
	if c.Snapshot().Active() {
		t.Error("clear left an anchor behind")
	}
}

func TestBoundarySearchSpansMonths(t *testing.T) {
	// A multi-month drag: the bisection must land on the exact edge without a
	// day-by-day sweep.
	c := NewController([]models.Rule{blackout(t, "2025-09-18", "2025-12-31", "next quarter closed")}, false)

	c.StartSelection(day(t, "2025-06-01"))
	res := c.UpdateSelection(day(t, "2025-11-30"))

	if !res.Success {
		t.Fatalf("long clamp should succeed, got failure: %q", res.Message)
	}
	assertDay(t, c.Snapshot().End, "2025-09-17")
}
