package selection

import (
	"rangely/models"

	rulesetRepo "rangely/database/repository/ruleset"
)

// SessionService manages remote selection sessions: one session per rendered
// calendar widget, persisted in Redis between calls so the HTTP surface stays
// stateless.
type SessionService interface {
	InitiateSession(req InitiateSessionRequest) (*models.SelectionSession, error)
	StartSelection(sessionID string, day models.Day) (*Result, error)
	UpdateSelection(sessionID string, day models.Day) (*Result, error)
	ClearSelection(sessionID string) (*Result, error)
	SetRestrictions(sessionID string, req RestrictionsUpdate) (*models.SelectionSession, error)
	EndSession(sessionID string) error
}

// InitiateSessionRequest carries either inline rules or a stored rule set id.
type InitiateSessionRequest struct {
	Rules      []models.Rule `json:"rules,omitempty"`
	RuleSetID  string        `json:"ruleSetId,omitempty"`
	SingleDate bool          `json:"singleDate,omitempty"`
}

// RestrictionsUpdate swaps a session's restriction configuration.
type RestrictionsUpdate struct {
	Rules     []models.Rule `json:"rules,omitempty"`
	RuleSetID string        `json:"ruleSetId,omitempty"`
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	RuleSets rulesetRepo.RuleSetRepository
}
