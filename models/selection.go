package models

import "time"

// SelectionDirection records which way the current gesture is extending.
type SelectionDirection string

const (
	DirectionNone     SelectionDirection = "none"
	DirectionForward  SelectionDirection = "forward"
	DirectionBackward SelectionDirection = "backward"
)

// Selection is the transient state of an in-progress or committed selection.
// Anchor is the day the gesture began at and never moves during one continuous
// gesture; only the opposite end does. When Start and End are both set,
// Start <= End.
type Selection struct {
	Anchor    *Day               `json:"anchor"`
	Start     *Day               `json:"start"`
	End       *Day               `json:"end"`
	Direction SelectionDirection `json:"direction"`
}

// EmptySelection is the Idle state.
func EmptySelection() Selection {
	return Selection{Direction: DirectionNone}
}

// Active reports whether a gesture is in progress (an anchor exists).
func (s Selection) Active() bool { return s.Anchor != nil }

// SelectionSession is a remote widget's selection state as cached in Redis.
// Rules travel with the session so each call can rebuild the controller
// without a second lookup; RuleSetID is kept for config re-resolution.
type SelectionSession struct {
	SessionID     string    `json:"sessionId"`
	RuleSetID     string    `json:"ruleSetId,omitempty"`
	Rules         []Rule    `json:"rules"`
	Selection     Selection `json:"selection"`
	SingleDate    bool      `json:"singleDate"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
