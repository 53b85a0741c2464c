package handlers

import (
	"net/http"

	"rangely/models"
	"rangely/services/restriction"

	"github.com/gin-gonic/gin"
)

// EvaluateHandler answers whether a candidate day or closed interval is
// selectable under an inline restriction configuration. Stateless: every call
// builds a fresh evaluator from the posted rules.
func EvaluateHandler(c *gin.Context) {
	var input struct {
		Rules []models.Rule `json:"rules"`
		Start string        `json:"start" binding:"required"`
		End   string        `json:"end"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := models.ParseDay(input.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date", "details": err.Error()})
		return
	}

	end := start
	if input.End != "" {
		end, err = models.ParseDay(input.End)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date", "details": err.Error()})
			return
		}
	}

	eval := restriction.NewEvaluator(input.Rules)
	c.JSON(http.StatusOK, eval.Evaluate(start, end))
}
