package models

import "time"

// RuleKind tags the variant carried by a Rule.
type RuleKind string

const (
	RuleKindBoundary           RuleKind = "boundary"
	RuleKindDateRange          RuleKind = "dateRange"
	RuleKindAllowedRanges      RuleKind = "allowedRanges"
	RuleKindWeekday            RuleKind = "weekday"
	RuleKindRestrictedBoundary RuleKind = "restrictedBoundary"
)

// BoundaryDirection says which side of a boundary date is blocked.
type BoundaryDirection string

const (
	DirectionBefore BoundaryDirection = "before"
	DirectionAfter  BoundaryDirection = "after"
)

// DayRange is a closed interval of calendar days. Message, when set, overrides
// the owning rule's message for violations caused by this interval.
type DayRange struct {
	Start   Day    `bson:"start" json:"start"`
	End     Day    `bson:"end" json:"end"`
	Message string `bson:"message,omitempty" json:"message,omitempty"`
}

// Valid reports whether both endpoints parsed and are ordered. Malformed
// entries are skipped by the evaluator rather than blocking anything.
func (r DayRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.Start.After(r.End)
}

// Contains reports whether d falls inside the closed interval.
func (r DayRange) Contains(d Day) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps reports whether [a,b] intersects the closed interval.
func (r DayRange) Overlaps(a, b Day) bool {
	return !a.After(r.End) && !b.Before(r.Start)
}

// ContainsRange reports whether [a,b] lies fully inside the interval.
func (r DayRange) ContainsRange(a, b Day) bool {
	return r.Contains(a) && r.Contains(b)
}

// BoundaryRule blocks everything on one side of a single date. When Inclusive
// is nil the boundary date itself stays selectable on either direction.
type BoundaryRule struct {
	Date      Day               `bson:"date" json:"date"`
	Direction BoundaryDirection `bson:"direction" json:"direction"`
	Inclusive *bool             `bson:"inclusive,omitempty" json:"inclusive,omitempty"`
}

// DateRangeRule blocks candidates intersecting any listed interval.
type DateRangeRule struct {
	Ranges []DayRange `bson:"ranges" json:"ranges"`
}

// AllowedRangesRule permits only candidates fully contained in one listed
// interval. Whitelist semantics: outside every interval is denied.
type AllowedRangesRule struct {
	Ranges []DayRange `bson:"ranges" json:"ranges"`
}

// WeekdayRule blocks a set of weekdays (0 = Sunday .. 6 = Saturday).
type WeekdayRule struct {
	Days []int `bson:"days" json:"days"`
}

// Zone is a permitted operating window that may itself contain blocked
// exception sub-ranges (e.g. a holiday inside an open season).
type Zone struct {
	Name       string     `bson:"name,omitempty" json:"name,omitempty"`
	Range      DayRange   `bson:"range" json:"range"`
	Exceptions []DayRange `bson:"exceptions,omitempty" json:"exceptions,omitempty"`
	Message    string     `bson:"message,omitempty" json:"message,omitempty"`
}

// RestrictedBoundaryRule lists operating zones plus optional global clamps.
// Zones additionally feed the selection controller's anchor containment.
type RestrictedBoundaryRule struct {
	Zones []Zone `bson:"zones" json:"zones"`
	Min   *Day   `bson:"min,omitempty" json:"min,omitempty"`
	Max   *Day   `bson:"max,omitempty" json:"max,omitempty"`
}

// Rule is one declarative restriction. Exactly one variant payload is non-nil,
// selected by Kind; unknown or missing payloads make the rule inert.
type Rule struct {
	Kind    RuleKind `bson:"kind" json:"kind"`
	Enabled bool     `bson:"enabled" json:"enabled"`
	Message string   `bson:"message,omitempty" json:"message,omitempty"`

	Boundary           *BoundaryRule           `bson:"boundary,omitempty" json:"boundary,omitempty"`
	DateRange          *DateRangeRule          `bson:"dateRange,omitempty" json:"dateRange,omitempty"`
	AllowedRanges      *AllowedRangesRule      `bson:"allowedRanges,omitempty" json:"allowedRanges,omitempty"`
	Weekday            *WeekdayRule            `bson:"weekday,omitempty" json:"weekday,omitempty"`
	RestrictedBoundary *RestrictedBoundaryRule `bson:"restrictedBoundary,omitempty" json:"restrictedBoundary,omitempty"`
}

// RuleSet is a named, ordered restriction configuration. Order never changes
// the evaluation outcome; it only fixes the order of returned messages.
type RuleSet struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Rules     []Rule    `bson:"rules" json:"rules"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Decision is the evaluator's verdict for one candidate interval. Messages
// are order-preserving; joining them is the caller's concern.
type Decision struct {
	Allowed  bool     `json:"allowed"`
	Messages []string `json:"messages,omitempty"`
}
