package models

import "time"

// Bus types accepted by the catalog.
const (
	BusTypeAC      = "AC"
	BusTypeNonAC   = "Non-AC"
	BusTypeSleeper = "Sleeper"
)

// ValidBusType reports whether t is one of the accepted bus types.
func ValidBusType(t string) bool {
	return t == BusTypeAC || t == BusTypeNonAC || t == BusTypeSleeper
}

// Bus describes a vehicle assigned to a route.
type Bus struct {
	BusNumber     string    `bson:"bus_number" json:"busNumber"`
	BusKey        string    `bson:"bus_key" json:"-"`
	BusName       string    `bson:"bus_name" json:"busName"`
	Type          string    `bson:"type" json:"type"`
	RouteID       string    `bson:"route_id" json:"routeId"`
	RouteKey      string    `bson:"route_key" json:"-"`
	OperatorName1 string    `bson:"operator_name1,omitempty" json:"operatorName1,omitempty"`
	OperatorPhone1 string   `bson:"operator_phone1,omitempty" json:"operatorPhone1,omitempty"`
	OperatorName2 string    `bson:"operator_name2,omitempty" json:"operatorName2,omitempty"`
	OperatorPhone2 string   `bson:"operator_phone2,omitempty" json:"operatorPhone2,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// Normalize refreshes the derived lookup keys from the display values.
func (b *Bus) Normalize() {
	b.BusKey = NormalizeKey(b.BusNumber)
	b.RouteKey = NormalizeKey(b.RouteID)
}

// BusWithRoute joins a bus with its route for catalog responses.
type BusWithRoute struct {
	Bus
	Route *Route `json:"route,omitempty"`
}
