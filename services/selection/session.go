// File: services/selection/session.go
package selection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rangely/models"
	"rangely/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// InitiateSession creates a new selection session, assigns it a unique
// SessionID, and stores it in Redis. Rules may be supplied inline or resolved
// from a stored rule set by id.
func (s *DefaultSessionService) InitiateSession(req InitiateSessionRequest) (*models.SelectionSession, error) {
	rules, err := s.resolveRules(req.Rules, req.RuleSetID)
	if err != nil {
		return nil, err
	}

	session := models.SelectionSession{
		SessionID:  uuid.New().String(),
		RuleSetID:  req.RuleSetID,
		Rules:      rules,
		Selection:  models.EmptySelection(),
		SingleDate: req.SingleDate,
		CreatedAt:  time.Now(),
	}

	if err := saveSession(session); err != nil {
		return nil, err
	}
	return &session, nil
}

// StartSelection applies the Idle -> Selecting transition to a session.
func (s *DefaultSessionService) StartSelection(sessionID string, day models.Day) (*Result, error) {
	return s.applyTransition(sessionID, func(c *Controller) Result {
		return c.StartSelection(day)
	})
}

// UpdateSelection extends a session's in-progress selection.
func (s *DefaultSessionService) UpdateSelection(sessionID string, day models.Day) (*Result, error) {
	return s.applyTransition(sessionID, func(c *Controller) Result {
		return c.UpdateSelection(day)
	})
}

// ClearSelection returns a session to Idle.
func (s *DefaultSessionService) ClearSelection(sessionID string) (*Result, error) {
	return s.applyTransition(sessionID, func(c *Controller) Result {
		return c.Clear()
	})
}

// SetRestrictions swaps a session's rules. The persisted selection state is
// left untouched so a user mid-drag keeps their anchor across config changes.
func (s *DefaultSessionService) SetRestrictions(sessionID string, req RestrictionsUpdate) (*models.SelectionSession, error) {
	session, err := getSession(sessionID)
	if err != nil {
		return nil, err
	}

	rules, err := s.resolveRules(req.Rules, req.RuleSetID)
	if err != nil {
		return nil, err
	}

	session.Rules = rules
	session.RuleSetID = req.RuleSetID
	if err := saveSession(*session); err != nil {
		return nil, err
	}
	return session, nil
}

// EndSession removes a selection session from Redis.
func (s *DefaultSessionService) EndSession(sessionID string) error {
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()
	return cacheClient.Del(ctx, utils.SessionCachePrefix+sessionID).Err()
}

// applyTransition loads the session, replays one controller transition, and
// persists the resulting selection.
func (s *DefaultSessionService) applyTransition(sessionID string, fn func(*Controller) Result) (*Result, error) {
	session, err := getSession(sessionID)
	if err != nil {
		return nil, err
	}

	ctrl := RestoreController(session.Rules, session.Selection, session.SingleDate)
	res := fn(ctrl)

	session.Selection = ctrl.Snapshot()
	if err := saveSession(*session); err != nil {
		return nil, err
	}
	return &res, nil
}

// resolveRules prefers a stored rule set when an id is given.
func (s *DefaultSessionService) resolveRules(inline []models.Rule, ruleSetID string) ([]models.Rule, error) {
	if ruleSetID == "" {
		return inline, nil
	}
	if s.RuleSets == nil {
		return nil, fmt.Errorf("rule set lookup is not configured")
	}
	rs, err := s.RuleSets.GetByID(context.Background(), ruleSetID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rule set %q: %w", ruleSetID, err)
	}
	return rs.Rules, nil
}

func saveSession(session models.SelectionSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal selection session: %w", err)
	}
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Set(ctx, utils.SessionCachePrefix+session.SessionID, data, utils.SessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store selection session: %w", err)
	}
	return nil
}

func getSession(sessionID string) (*models.SelectionSession, error) {
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()
	data, err := cacheClient.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load selection session: %w", err)
	}

	var session models.SelectionSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse selection session: %w", err)
	}
	return &session, nil
}
