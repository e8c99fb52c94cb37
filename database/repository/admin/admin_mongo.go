package adminRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nextstop/database"
	"nextstop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates a new instance of AdminRepository using MongoDB.
func NewMongoAdminRepo() AdminRepository {
	coll := database.DB().Collection("admins")
	repo := &MongoAdminRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAdminRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new admin document.
func (r *MongoAdminRepo) Create(admin *models.Admin) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))

	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *MongoAdminRepo) findOne(filter bson.M) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter["is_active"] = true
	var admin models.Admin
	if err := r.coll.FindOne(ctx, filter).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin: %w", err)
	}
	return &admin, nil
}

// GetByUsername retrieves an active admin by username.
func (r *MongoAdminRepo) GetByUsername(username string) (*models.Admin, error) {
	return r.findOne(bson.M{"username": username})
}

// GetByEmail retrieves an active admin by email address.
func (r *MongoAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	return r.findOne(bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

// GetByLogin retrieves an active admin by username or email.
func (r *MongoAdminRepo) GetByLogin(login string) (*models.Admin, error) {
	return r.findOne(bson.M{"$or": bson.A{
		bson.M{"username": login},
		bson.M{"email": strings.ToLower(strings.TrimSpace(login))},
	}})
}

// Update modifies an existing admin document.
func (r *MongoAdminRepo) Update(admin *models.Admin) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	admin.UpdatedAt = time.Now()
	filter := bson.M{"username": admin.Username}
	update := bson.M{"$set": admin}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update admin %s: %w", admin.Username, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("admin %s not found", admin.Username)
	}
	return nil
}

// SetResetCode stores a password reset code and its expiry on the account.
func (r *MongoAdminRepo) SetResetCode(email, code string, expiry time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email)), "is_active": true}
	update := bson.M{"$set": bson.M{
		"reset_code":        code,
		"reset_code_expiry": expiry,
		"updated_at":        time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set reset code for %s: %w", email, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("admin with email %s not found", email)
	}
	return nil
}

// UpdatePassword replaces the password hash and clears any reset code.
func (r *MongoAdminRepo) UpdatePassword(email, passwordHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email)), "is_active": true}
	update := bson.M{
		"$set":   bson.M{"password_hash": passwordHash, "updated_at": time.Now()},
		"$unset": bson.M{"reset_code": "", "reset_code_expiry": ""},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update password for %s: %w", email, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("admin with email %s not found", email)
	}
	return nil
}
