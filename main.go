// File: rangely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rangely/config"
	"rangely/cron"
	"rangely/database"
	rulesetRepo "rangely/database/repository/ruleset"
	"rangely/handlers"
	"rangely/middleware"
	"rangely/routes"
	"rangely/services/selection"
	"rangely/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	ruleSets := rulesetRepo.NewMongoRuleSetRepo()
	if err := ruleSets.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure ruleset indexes: %v", err)
	}

	// services.
	sessionService := &selection.DefaultSessionService{
		RuleSets: ruleSets,
	}

	selectionHandler := handlers.NewSelectionHandler(sessionService)
	ruleSetHandler := handlers.NewRuleSetHandler(ruleSets)

	routes.RegisterRoutes(router, selectionHandler, ruleSetHandler)

	// Background maintenance: nightly sweep of stale rule entries.
	cron.InitSweepWorker(ruleSets)
	cron.ScheduleRuleSetSweep()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("main: server exited")
}
