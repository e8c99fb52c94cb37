package models

import "time"

// Route describes a serviced connection between two cities.
// RouteKey/SourceKey/DestinationKey are the normalized forms used for
// case-insensitive lookups.
type Route struct {
	RouteID        string    `bson:"route_id" json:"routeId"`
	RouteKey       string    `bson:"route_key" json:"-"`
	Source         string    `bson:"source" json:"source"`
	SourceKey      string    `bson:"source_key" json:"-"`
	Destination    string    `bson:"destination" json:"destination"`
	DestinationKey string    `bson:"destination_key" json:"-"`
	Distance       float64   `bson:"distance" json:"distance"`
	Duration       string    `bson:"duration" json:"duration"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// Normalize refreshes the derived lookup keys from the display values.
func (r *Route) Normalize() {
	r.RouteKey = NormalizeKey(r.RouteID)
	r.SourceKey = NormalizeKey(r.Source)
	r.DestinationKey = NormalizeKey(r.Destination)
}
