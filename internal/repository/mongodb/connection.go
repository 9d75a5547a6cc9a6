package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/profenger/feedback-hub/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names
const (
	colUsers    = "users"
	colFeedback = "feedback_submissions"
	colPrompts  = "prompt_submissions"
)

func NewConnection(uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb: connect failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("mongodb: ping failed: %w", err)
	}

	db := client.Database(dbName)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, nil, fmt.Errorf("mongodb: ensure indexes failed: %w", err)
	}

	return client, db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		// Backstop for the existence check done before every insert.
		{colUsers, bson.D{{Key: "email", Value: 1}}, true},

		{colFeedback, bson.D{{Key: "created_at", Value: -1}}, false},
		{colPrompts, bson.D{{Key: "created_at", Value: -1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := db.Collection(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}

func NewRepositories(db *mongo.Database) *repository.Repositories {
	return &repository.Repositories{
		User:     NewUserRepository(db),
		Feedback: NewFeedbackRepository(db),
		Prompt:   NewPromptRepository(db),
	}
}
