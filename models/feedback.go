package models

import "time"

// Feedback is a passenger's rating of a bus.
type Feedback struct {
	ID        string    `bson:"id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	BusNumber string    `bson:"bus_number" json:"busNumber"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
