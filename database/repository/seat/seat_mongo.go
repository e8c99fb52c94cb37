package seatRepo

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

// MongoSeatRepo implements SeatRepository using MongoDB.
type MongoSeatRepo struct {
	coll *mongo.Collection
}

// NewMongoSeatRepo creates a new instance of SeatRepository using MongoDB.
func NewMongoSeatRepo() SeatRepository {
	coll := database.DB().Collection("seats")
	repo := &MongoSeatRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique (bus, date) key for the inventory ledger.
func (r *MongoSeatRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "bus_key", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByBusAndDate retrieves the inventory record for a bus on a date.
func (r *MongoSeatRepo) GetByBusAndDate(busNumber, date string) (*models.SeatInventory, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"bus_key": models.NormalizeKey(busNumber), "date": date}
	var inv models.SeatInventory
	if err := r.coll.FindOne(ctx, filter).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch seat inventory for %s on %s: %w", busNumber, date, err)
	}
	return &inv, nil
}

// GetForBusesOnDate retrieves the inventory records for several buses on a date.
func (r *MongoSeatRepo) GetForBusesOnDate(busNumbers []string, date string) (map[string]models.SeatInventory, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	keys := make([]string, 0, len(busNumbers))
	for _, n := range busNumbers {
		keys = append(keys, models.NormalizeKey(n))
	}

	filter := bson.M{"bus_key": bson.M{"$in": keys}, "date": date}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve seat inventories for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	out := make(map[string]models.SeatInventory, len(keys))
	for cursor.Next(ctx) {
		var inv models.SeatInventory
		if err := cursor.Decode(&inv); err != nil {
			return nil, fmt.Errorf("failed to decode seat inventory: %w", err)
		}
		out[inv.BusKey] = inv
	}
	return out, nil
}

// Upsert creates or replaces the inventory record for (busNumber, date).
func (r *MongoSeatRepo) Upsert(inv *models.SeatInventory) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now
	}
	inv.UpdatedAt = now
	inv.Normalize()

	filter := bson.M{"bus_key": inv.BusKey, "date": inv.Date}
	update := bson.M{"$set": inv}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert seat inventory for %s on %s: %w", inv.BusNumber, inv.Date, err)
	}
	return nil
}

// Reserve removes the requested labels from the free set in a single
// conditional update. The $all guard makes the check-and-remove atomic: if
// any label has been taken since the caller looked, nothing matches and
// nothing is written.
func (r *MongoSeatRepo) Reserve(ctx context.Context, busNumber, date string, labels []string) (bool, error) {
	filter := bson.M{
		"bus_key": models.NormalizeKey(busNumber),
		"date":    date,
		"seats":   bson.M{"$all": labels},
	}
	update := bson.M{
		"$pull": bson.M{"seats": bson.M{"$in": labels}},
		"$inc":  bson.M{"available_seats": -len(labels)},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to reserve seats on %s/%s: %w", busNumber, date, err)
	}
	return res.MatchedCount > 0, nil
}

// Release appends the labels back into the free set and restores the count.
func (r *MongoSeatRepo) Release(ctx context.Context, busNumber, date string, labels []string) (bool, error) {
	filter := bson.M{
		"bus_key": models.NormalizeKey(busNumber),
		"date":    date,
	}
	update := bson.M{
		"$push": bson.M{"seats": bson.M{"$each": labels}},
		"$inc":  bson.M{"available_seats": len(labels)},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to release seats on %s/%s: %w", busNumber, date, err)
	}
	return res.MatchedCount > 0, nil
}
