package models

import "time"

// User represents a registered passenger account.
type User struct {
	Username        string    `bson:"username" json:"username"`
	FirstName       string    `bson:"first_name" json:"firstName"`
	LastName        string    `bson:"last_name,omitempty" json:"lastName,omitempty"`
	Email           string    `bson:"email" json:"email"`
	MobileNo        string    `bson:"mobile_no" json:"mobileNo"`
	AltMobileNo     string    `bson:"alt_mobile_no,omitempty" json:"altMobileNo,omitempty"`
	DOB             string    `bson:"dob,omitempty" json:"dob,omitempty"`
	Address         string    `bson:"address,omitempty" json:"address,omitempty"`
	PasswordHash    string    `bson:"password_hash" json:"-"`
	Role            string    `bson:"role" json:"role"`
	ResetCode       string    `bson:"reset_code,omitempty" json:"-"`
	ResetCodeExpiry time.Time `bson:"reset_code_expiry,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
