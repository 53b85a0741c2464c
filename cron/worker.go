package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"rangely/config"
	rulesetRepo "rangely/database/repository/ruleset"
	"rangely/models"
	"rangely/services/tasks"

	"github.com/hibiken/asynq"
)

// InitSweepWorker runs the async worker in background. The sweep disables
// rules whose every interval already lies in the past, so stale holiday or
// blackout entries stop cluttering stored rule sets.
func InitSweepWorker(repo rulesetRepo.RuleSetRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRuleSetSweep, handleSweepTask(repo))

	go func() {
		log.Println("[SweepWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[SweepWorker] failed to start worker: %v", err)
		}
	}()
}

// ScheduleRuleSetSweep enqueues the next nightly sweep.
func ScheduleRuleSetSweep() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	payload := tasks.RuleSetSweepPayload{Cutoff: models.DayOf(nextMidnight)}

	task, opts, err := tasks.NewRuleSetSweepTask(payload, nextMidnight)
	if err != nil {
		log.Printf("[SweepWorker] failed to build sweep task: %v", err)
		return
	}
	if _, err := client.Enqueue(task, opts...); err != nil {
		log.Printf("[SweepWorker] failed to enqueue sweep task: %v", err)
	}
}

func handleSweepTask(repo rulesetRepo.RuleSetRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.RuleSetSweepPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SweepHandler] invalid payload: %v", err)
			return err
		}

		sets, err := repo.List(ctx)
		if err != nil {
			log.Printf("[SweepHandler] failed to list rule sets: %v", err)
			return err
		}

		for _, rs := range sets {
			changed := false
			for i, rule := range rs.Rules {
				if rule.Enabled && RuleExpired(rule, p.Cutoff) {
					rs.Rules[i].Enabled = false
					changed = true
				}
			}
			if !changed {
				continue
			}
			if err := repo.Update(ctx, rs); err != nil {
				log.Printf("[SweepHandler] failed to update rule set %s: %v", rs.ID, err)
			}
		}

		// Re-arm for the next night.
		ScheduleRuleSetSweep()
		return nil
	}
}

// RuleExpired reports whether every interval the rule restricts ended before
// the cutoff. Only interval-shaped rules expire; boundary and weekday rules
// stay meaningful indefinitely, and expiring an allowedRanges whitelist would
// open the whole calendar rather than tidy it.
func RuleExpired(rule models.Rule, cutoff models.Day) bool {
	if cutoff.IsZero() {
		return false
	}
	switch rule.Kind {
	case models.RuleKindDateRange:
		if rule.DateRange == nil {
			return false
		}
		return rangesExpired(rule.DateRange.Ranges, cutoff)
	case models.RuleKindRestrictedBoundary:
		if rule.RestrictedBoundary == nil || len(rule.RestrictedBoundary.Zones) == 0 {
			return false
		}
		for _, zone := range rule.RestrictedBoundary.Zones {
			if !zone.Range.Valid() || !zone.Range.End.Before(cutoff) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func rangesExpired(ranges []models.DayRange, cutoff models.Day) bool {
	sawValid := false
	for _, r := range ranges {
		if !r.Valid() {
			continue
		}
		sawValid = true
		if !r.End.Before(cutoff) {
			return false
		}
	}
	return sawValid
}
