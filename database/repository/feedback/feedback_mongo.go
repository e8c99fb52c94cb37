package feedbackRepo

import (
	"context"
	"fmt"
	"time"

	"nextstop/database"
	"nextstop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	return &MongoFeedbackRepo{coll: database.DB().Collection("feedbacks")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new feedback document.
func (r *MongoFeedbackRepo) Create(fb *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fb.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, fb); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// GetAll retrieves all feedback documents, newest first.
func (r *MongoFeedbackRepo) GetAll() ([]models.Feedback, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Feedback
	for cursor.Next(ctx) {
		var fb models.Feedback
		if err := cursor.Decode(&fb); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
		out = append(out, fb)
	}
	return out, nil
}
