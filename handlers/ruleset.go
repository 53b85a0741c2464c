package handlers

import (
	"errors"
	"net/http"

	rulesetRepo "rangely/database/repository/ruleset"
	"rangely/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RuleSetHandler manages stored restriction configurations.
type RuleSetHandler struct {
	Repo rulesetRepo.RuleSetRepository
}

// NewRuleSetHandler constructs a RuleSetHandler.
func NewRuleSetHandler(repo rulesetRepo.RuleSetRepository) *RuleSetHandler {
	return &RuleSetHandler{Repo: repo}
}

// CreateRuleSet stores a new named rule set.
func (h *RuleSetHandler) CreateRuleSet(c *gin.Context) {
	var rs models.RuleSet
	if err := c.ShouldBindJSON(&rs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if rs.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rule set name is required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), rs)
	if err != nil {
		getLogger(c).Error("failed to create rule set", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create rule set"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetRuleSet fetches one rule set by id.
func (h *RuleSetHandler) GetRuleSet(c *gin.Context) {
	id := c.Param("id")
	rs, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rule set not found"})
			return
		}
		getLogger(c).Error("failed to fetch rule set", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rule set"})
		return
	}
	c.JSON(http.StatusOK, rs)
}

// UpdateRuleSet replaces a stored rule set's name and rules.
func (h *RuleSetHandler) UpdateRuleSet(c *gin.Context) {
	var rs models.RuleSet
	if err := c.ShouldBindJSON(&rs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	rs.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), rs); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rule set not found"})
			return
		}
		getLogger(c).Error("failed to update rule set", zap.String("id", rs.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update rule set"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteRuleSet removes a stored rule set.
func (h *RuleSetHandler) DeleteRuleSet(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rule set not found"})
			return
		}
		getLogger(c).Error("failed to delete rule set", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete rule set"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListRuleSets returns every stored rule set.
func (h *RuleSetHandler) ListRuleSets(c *gin.Context) {
	sets, err := h.Repo.List(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to list rule sets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rule sets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ruleSets": sets})
}
