package models

import "time"

// Admin represents an operator account with catalog management rights.
type Admin struct {
	Username        string    `bson:"username" json:"username"`
	Email           string    `bson:"email" json:"email"`
	PasswordHash    string    `bson:"password_hash" json:"-"`
	Role            string    `bson:"role" json:"role"`
	IsActive        bool      `bson:"is_active" json:"isActive"`
	ResetCode       string    `bson:"reset_code,omitempty" json:"-"`
	ResetCodeExpiry time.Time `bson:"reset_code_expiry,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
