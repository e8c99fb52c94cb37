package busRepo

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

// MongoBusRepo implements BusRepository using MongoDB.
type MongoBusRepo struct {
	coll *mongo.Collection
}

// NewMongoBusRepo creates a new instance of BusRepository using MongoDB.
func NewMongoBusRepo() BusRepository {
	coll := database.DB().Collection("buses")
	repo := &MongoBusRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBusRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "bus_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "route_key", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new bus document.
func (r *MongoBusRepo) Create(bus *models.Bus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	bus.CreatedAt = now
	bus.UpdatedAt = now
	bus.Normalize()

	if _, err := r.coll.InsertOne(ctx, bus); err != nil {
		return fmt.Errorf("failed to create bus: %w", err)
	}
	return nil
}

// GetAll retrieves all bus documents.
func (r *MongoBusRepo) GetAll() ([]models.Bus, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve buses: %w", err)
	}
	defer cursor.Close(ctx)

	var buses []models.Bus
	for cursor.Next(ctx) {
		var b models.Bus
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode bus: %w", err)
		}
		buses = append(buses, b)
	}
	return buses, nil
}

// GetByNumber retrieves a bus by its busNumber, case-insensitively.
func (r *MongoBusRepo) GetByNumber(busNumber string) (*models.Bus, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var bus models.Bus
	err := r.coll.FindOne(ctx, bson.M{"bus_key": models.NormalizeKey(busNumber)}).Decode(&bus)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch bus %s: %w", busNumber, err)
	}
	return &bus, nil
}

// GetByRoute retrieves the buses assigned to a route, optionally filtered by type.
func (r *MongoBusRepo) GetByRoute(routeID, busType string) ([]models.Bus, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"route_key": models.NormalizeKey(routeID)}
	if busType != "" {
		filter["type"] = busType
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve buses for route %s: %w", routeID, err)
	}
	defer cursor.Close(ctx)

	var buses []models.Bus
	for cursor.Next(ctx) {
		var b models.Bus
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode bus: %w", err)
		}
		buses = append(buses, b)
	}
	return buses, nil
}

// Update modifies an existing bus document.
func (r *MongoBusRepo) Update(bus *models.Bus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	bus.UpdatedAt = time.Now()
	bus.Normalize()
	filter := bson.M{"bus_key": bus.BusKey}
	update := bson.M{"$set": bus}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update bus %s: %w", bus.BusNumber, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("bus %s not found", bus.BusNumber)
	}
	return nil
}

// Delete removes a bus document by its busNumber.
func (r *MongoBusRepo) Delete(busNumber string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"bus_key": models.NormalizeKey(busNumber)})
	if err != nil {
		return fmt.Errorf("failed to delete bus %s: %w", busNumber, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("bus %s not found", busNumber)
	}
	return nil
}
