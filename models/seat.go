package models

import "time"

// SeatInventory tracks per-bus, per-date seat availability. Seats holds the
// labels currently free; AvailableSeats must always equal len(Seats).
type SeatInventory struct {
	BusNumber      string    `bson:"bus_number" json:"busNumber"`
	BusKey         string    `bson:"bus_key" json:"-"`
	Date           string    `bson:"date" json:"date"`
	TotalSeats     int       `bson:"total_seats" json:"totalSeats"`
	AvailableSeats int       `bson:"available_seats" json:"availableSeats"`
	Seats          []string  `bson:"seats" json:"seats"`
	Price          float64   `bson:"price" json:"price"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// Normalize refreshes the derived lookup key from the display value.
func (s *SeatInventory) Normalize() {
	s.BusKey = NormalizeKey(s.BusNumber)
}

// EmptyInventory returns the zero-availability default attached to search
// results when no inventory record exists for a bus/date.
func EmptyInventory(busNumber, date string) SeatInventory {
	return SeatInventory{
		BusNumber:      busNumber,
		BusKey:         NormalizeKey(busNumber),
		Date:           date,
		AvailableSeats: 0,
		Seats:          []string{},
	}
}
