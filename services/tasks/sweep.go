package tasks

import (
	"encoding/json"
	"time"

	"rangely/models"

	"github.com/hibiken/asynq"
)

const TypeRuleSetSweep = "ruleset:sweep"

// RuleSetSweepPayload names the cutoff day: rules whose every date lies
// strictly before it are disabled by the sweep worker.
type RuleSetSweepPayload struct {
	Cutoff models.Day `json:"cutoff"`
}

func NewRuleSetSweepTask(payload RuleSetSweepPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeRuleSetSweep, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
