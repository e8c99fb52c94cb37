package routeRepo

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

// MongoRouteRepo implements RouteRepository using MongoDB.
type MongoRouteRepo struct {
	coll *mongo.Collection
}

// NewMongoRouteRepo creates a new instance of RouteRepository using MongoDB.
func NewMongoRouteRepo() RouteRepository {
	coll := database.DB().Collection("routes")
	repo := &MongoRouteRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoRouteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "route_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "source_key", Value: 1}, {Key: "destination_key", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new route document.
func (r *MongoRouteRepo) Create(route *models.Route) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	route.CreatedAt = now
	route.UpdatedAt = now
	route.Normalize()

	if _, err := r.coll.InsertOne(ctx, route); err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}
	return nil
}

// GetAll retrieves all route documents.
func (r *MongoRouteRepo) GetAll() ([]models.Route, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve routes: %w", err)
	}
	defer cursor.Close(ctx)

	var routes []models.Route
	for cursor.Next(ctx) {
		var rt models.Route
		if err := cursor.Decode(&rt); err != nil {
			return nil, fmt.Errorf("failed to decode route: %w", err)
		}
		routes = append(routes, rt)
	}
	return routes, nil
}

// GetByID retrieves a route by its routeId, case-insensitively.
func (r *MongoRouteRepo) GetByID(routeID string) (*models.Route, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var route models.Route
	err := r.coll.FindOne(ctx, bson.M{"route_key": models.NormalizeKey(routeID)}).Decode(&route)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch route %s: %w", routeID, err)
	}
	return &route, nil
}

// GetBySourceDestination retrieves the route connecting two cities,
// matching case-insensitively on the normalized keys.
func (r *MongoRouteRepo) GetBySourceDestination(source, destination string) (*models.Route, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"source_key":      models.NormalizeKey(source),
		"destination_key": models.NormalizeKey(destination),
	}
	var route models.Route
	if err := r.coll.FindOne(ctx, filter).Decode(&route); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch route %s-%s: %w", source, destination, err)
	}
	return &route, nil
}

// Update modifies an existing route document.
func (r *MongoRouteRepo) Update(route *models.Route) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	route.UpdatedAt = time.Now()
	route.Normalize()
	filter := bson.M{"route_key": route.RouteKey}
	update := bson.M{"$set": route}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update route %s: %w", route.RouteID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("route %s not found", route.RouteID)
	}
	return nil
}

// Delete removes a route document by its routeId.
func (r *MongoRouteRepo) Delete(routeID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"route_key": models.NormalizeKey(routeID)})
	if err != nil {
		return fmt.Errorf("failed to delete route %s: %w", routeID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("route %s not found", routeID)
	}
	return nil
}
