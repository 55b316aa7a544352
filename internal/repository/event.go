package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizsuite/loyalty/internal/model"
)

const eventsCollection = "points_events"

// EventRepository is append-only storage for points activity events
type EventRepository interface {
	Create(context.Context, *model.PointsEvent) error
	FindRecent(context.Context, int64) ([]*model.PointsEvent, error)
}

type mongoEventRepository struct {
	collection *mongo.Collection
}

// NewMongoEventRepository builds mongo-backed EventRepository
func NewMongoEventRepository(client *mongo.Client, database string) EventRepository {
	return &mongoEventRepository{collection: client.Database(database).Collection(eventsCollection)}
}

func (r *mongoEventRepository) Create(ctx context.Context, e *model.PointsEvent) error {
	if _, err := r.collection.InsertOne(ctx, e); err != nil {
		return err
	}
	return nil
}

// FindRecent returns up to limit events, newest first
func (r *mongoEventRepository) FindRecent(ctx context.Context, limit int64) ([]*model.PointsEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "occurredAt", Value: -1}}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	events := make([]*model.PointsEvent, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
