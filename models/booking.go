package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Booking statuses.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// Booking is the ledger record of a reservation. SeatNumbers is the
// historical record of what was booked and survives cancellation.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Username      string    `bson:"username" json:"username"`
	BusNumber     string    `bson:"bus_number" json:"busNumber"`
	RouteID       string    `bson:"route_id" json:"routeId"`
	TotalSeats    int       `bson:"total_seats" json:"totalSeats"`
	SeatNumbers   []string  `bson:"seat_numbers" json:"seatNumbers"`
	TotalFare     float64   `bson:"total_fare" json:"totalFare"`
	JourneyDate   string    `bson:"journey_date" json:"journeyDate"`
	BoardingPoint string    `bson:"boarding_point" json:"boardingPoint"`
	BookingStatus string    `bson:"booking_status" json:"bookingStatus"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// SeatList accepts seat labels either as a JSON array or as a single
// comma-delimited string ("1-1, 1-2").
type SeatList []string

func (s *SeatList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = arr
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = strings.Split(str, ",")
	return nil
}

// Normalized returns the trimmed, ordered seat labels with empties dropped.
func (s SeatList) Normalized() []string {
	out := make([]string, 0, len(s))
	for _, label := range s {
		label = strings.TrimSpace(label)
		if label != "" {
			out = append(out, label)
		}
	}
	return out
}

// BookingRequest is the payload for reserving seats.
type BookingRequest struct {
	BusNumber     string   `json:"busNumber"`
	RouteID       string   `json:"routeId"`
	SeatNumbers   SeatList `json:"seatNumbers"`
	JourneyDate   string   `json:"journeyDate"`
	BoardingPoint string   `json:"boardingPoint"`
}
