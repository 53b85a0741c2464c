// File: database/repository/ruleset/crud.go
package rulesetRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rangely/models"
)

func (r *mongoRuleSetRepo) Create(ctx context.Context, rs models.RuleSet) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rs.ID == "" {
		rs.ID = uuid.New().String()
	}
	now := time.Now()
	rs.CreatedAt = now
	rs.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, rs); err != nil {
		return "", err
	}
	return rs.ID, nil
}

func (r *mongoRuleSetRepo) GetByID(ctx context.Context, id string) (*models.RuleSet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	var rs models.RuleSet
	if err := r.coll.FindOne(ctx, filter).Decode(&rs); err != nil {
		return nil, err
	}
	return &rs, nil
}

func (r *mongoRuleSetRepo) Update(ctx context.Context, rs models.RuleSet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rs.UpdatedAt = time.Now()
	filter := bson.M{"id": rs.ID}
	update := bson.M{"$set": bson.M{
		"name":      rs.Name,
		"rules":     rs.Rules,
		"updatedAt": rs.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRuleSetRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRuleSetRepo) List(ctx context.Context) ([]models.RuleSet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sets []models.RuleSet
	if err := cursor.All(ctx, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}
