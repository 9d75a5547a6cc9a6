package mongodb

import (
	"context"

	"github.com/profenger/feedback-hub/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PromptRepository struct {
	col *mongo.Collection
}

func NewPromptRepository(db *mongo.Database) *PromptRepository {
	return &PromptRepository{col: db.Collection(colPrompts)}
}

func (r *PromptRepository) Create(ctx context.Context, submission *domain.PromptSubmission) error {
	if submission.ID == "" {
		submission.ID = newID()
	}
	_, err := r.col.InsertOne(ctx, submission)
	return err
}

func (r *PromptRepository) List(ctx context.Context, limit int) ([]*domain.PromptSubmission, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return findMany[domain.PromptSubmission](ctx, r.col, bson.D{}, opts)
}
