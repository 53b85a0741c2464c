package routes

import (
	"net/http"
	"time"

	"rangely/handlers"
	"rangely/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterEvaluateRoutes registers the stateless evaluation endpoint.
func RegisterEvaluateRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/evaluate", handlers.EvaluateHandler)
	}
}

// RegisterSelectionRoutes registers all endpoints for the selection engine.
func RegisterSelectionRoutes(r *gin.Engine, sh *handlers.SelectionHandler) {
	api := r.Group("/api/selection")
	{
		api.POST("/session", sh.CreateSession)
		api.POST("/session/:sessionID/start", sh.StartSelection)
		api.PUT("/session/:sessionID/extend", sh.ExtendSelection)
		api.POST("/session/:sessionID/clear", sh.ClearSelection)
		api.PUT("/session/:sessionID/restrictions", sh.SetRestrictions)
		api.DELETE("/session/:sessionID", sh.EndSession)
	}
}

// RegisterRuleSetRoutes registers rule set management endpoints. Reads are
// public so widgets can resolve shared configurations; writes are admin-only.
func RegisterRuleSetRoutes(r *gin.Engine, rh *handlers.RuleSetHandler) {
	api := r.Group("/api/rulesets")
	{
		api.GET("", rh.ListRuleSets)
		api.GET("/:id", rh.GetRuleSet)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", rh.CreateRuleSet)
		protected.PUT("/:id", rh.UpdateRuleSet)
		protected.DELETE("/:id", rh.DeleteRuleSet)
	}
}

// RegisterAdminRoutes registers the admin token exchange.
func RegisterAdminRoutes(r *gin.Engine) {
	r.POST("/api/admin/login", handlers.AdminLoginHandler)
}

// RegisterHealthRoute registers the health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.SelectionHandler, rh *handlers.RuleSetHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterEvaluateRoutes(r)
	RegisterSelectionRoutes(r, sh)
	RegisterRuleSetRoutes(r, rh)
	RegisterAdminRoutes(r)
	RegisterHealthRoute(r)
}
