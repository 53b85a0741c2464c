package handlers

import (
	"errors"
	"net/http"

	"rangely/models"
	"rangely/services/selection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SelectionHandler exposes the session-backed selection controller over HTTP.
// It binds and validates input, delegates every decision to the service, and
// renders the returned result untouched.
type SelectionHandler struct {
	Sessions selection.SessionService
}

// NewSelectionHandler constructs a SelectionHandler.
func NewSelectionHandler(sessions selection.SessionService) *SelectionHandler {
	return &SelectionHandler{Sessions: sessions}
}

// CreateSession starts a new selection session from inline rules or a stored
// rule set id.
func (h *SelectionHandler) CreateSession(c *gin.Context) {
	var req selection.InitiateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.InitiateSession(req)
	if err != nil {
		getLogger(c).Error("failed to initiate selection session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate selection session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.SessionID,
		"selection": session.Selection,
	})
}

// StartSelection begins a gesture at the posted day.
func (h *SelectionHandler) StartSelection(c *gin.Context) {
	h.applyDayTransition(c, h.Sessions.StartSelection)
}

// ExtendSelection extends the in-progress gesture toward the posted day.
func (h *SelectionHandler) ExtendSelection(c *gin.Context) {
	h.applyDayTransition(c, h.Sessions.UpdateSelection)
}

// ClearSelection returns the session's selection to idle.
func (h *SelectionHandler) ClearSelection(c *gin.Context) {
	sessionID := c.Param("sessionID")
	res, err := h.Sessions.ClearSelection(sessionID)
	if err != nil {
		h.renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SetRestrictions swaps the session's restriction configuration without
// touching its in-progress selection.
func (h *SelectionHandler) SetRestrictions(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var req selection.RestrictionsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.SetRestrictions(sessionID, req)
	if err != nil {
		h.renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.SessionID,
		"selection": session.Selection,
	})
}

// EndSession discards the session.
func (h *SelectionHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Sessions.EndSession(sessionID); err != nil {
		getLogger(c).Error("failed to end selection session",
			zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end selection session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ended": true})
}

func (h *SelectionHandler) applyDayTransition(c *gin.Context, fn func(string, models.Day) (*selection.Result, error)) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	day, err := models.ParseDay(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": err.Error()})
		return
	}

	res, err := fn(sessionID, day)
	if err != nil {
		h.renderServiceError(c, err)
		return
	}

	// A blocked day or a no-op extend is still a 200: rejection is a normal
	// outcome the widget renders, not a transport error.
	c.JSON(http.StatusOK, res)
}

func (h *SelectionHandler) renderServiceError(c *gin.Context, err error) {
	var selErr *selection.SelectionError
	if errors.As(err, &selErr) && selErr == selection.ErrSessionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": selErr.Message})
		return
	}
	getLogger(c).Error("selection session operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "selection session operation failed"})
}
