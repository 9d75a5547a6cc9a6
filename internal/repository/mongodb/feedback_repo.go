package mongodb

import (
	"context"

	"github.com/profenger/feedback-hub/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type FeedbackRepository struct {
	col *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{col: db.Collection(colFeedback)}
}

func (r *FeedbackRepository) Create(ctx context.Context, submission *domain.FeedbackSubmission) error {
	if submission.ID == "" {
		submission.ID = newID()
	}
	_, err := r.col.InsertOne(ctx, submission)
	return err
}

func (r *FeedbackRepository) List(ctx context.Context, limit int) ([]*domain.FeedbackSubmission, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return findMany[domain.FeedbackSubmission](ctx, r.col, bson.D{}, opts)
}
