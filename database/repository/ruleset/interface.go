// File: database/repository/ruleset/interface.go
package rulesetRepo

import (
	"context"

	"rangely/database"
	"rangely/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RuleSetRepository stores named restriction configurations so multiple
// widgets can share one rule set by id.
type RuleSetRepository interface {
	Create(ctx context.Context, rs models.RuleSet) (string, error)
	GetByID(ctx context.Context, id string) (*models.RuleSet, error)
	Update(ctx context.Context, rs models.RuleSet) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.RuleSet, error)
	EnsureIndexes() error
}

type mongoRuleSetRepo struct {
	coll *mongo.Collection
}

// NewMongoRuleSetRepo constructs a new MongoDB RuleSetRepository.
func NewMongoRuleSetRepo() RuleSetRepository {
	db := database.MongoClient.Database("rangely")
	return &mongoRuleSetRepo{
		coll: db.Collection("rulesets"),
	}
}
