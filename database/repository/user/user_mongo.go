package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.DB().Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
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

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) findOne(filter bson.M) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by username.
func (r *MongoUserRepo) GetByUsername(username string) (*models.User, error) {
	return r.findOne(bson.M{"username": username})
}

// GetByEmail retrieves a user by email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

// GetByLogin retrieves a user by username or email.
func (r *MongoUserRepo) GetByLogin(login string) (*models.User, error) {
	return r.findOne(bson.M{"$or": bson.A{
		bson.M{"username": login},
		bson.M{"email": strings.ToLower(strings.TrimSpace(login))},
	}})
}

// Update modifies an existing user document.
func (r *MongoUserRepo) Update(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	user.UpdatedAt = time.Now()
	filter := bson.M{"username": user.Username}
	update := bson.M{"$set": user}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.Username, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", user.Username)
	}
	return nil
}

// SetResetCode stores a password reset code and its expiry on the account.
func (r *MongoUserRepo) SetResetCode(email, code string, expiry time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
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
		return fmt.Errorf("user with email %s not found", email)
	}
	return nil
}

// UpdatePassword replaces the password hash and clears any reset code.
func (r *MongoUserRepo) UpdatePassword(email, passwordHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	update := bson.M{
		"$set":   bson.M{"password_hash": passwordHash, "updated_at": time.Now()},
		"$unset": bson.M{"reset_code": "", "reset_code_expiry": ""},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update password for %s: %w", email, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with email %s not found", email)
	}
	return nil
}
