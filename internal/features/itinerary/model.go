package itinerary

import "time"

// FlightInfo describes one leg of the group's flight pair.
type FlightInfo struct {
	From         string `json:"from" bson:"from"`
	To           string `json:"to" bson:"to"`
	Date         string `json:"date" bson:"date"`
	Time         string `json:"time" bson:"time"`
	Airline      string `json:"airline" bson:"airline"`
	FlightNumber string `json:"flight_number" bson:"flight_number"`
}

type FlightDetails struct {
	Departure FlightInfo `json:"departure" bson:"departure"`
	Return    FlightInfo `json:"return" bson:"return"`
}

// DailySchedule is one day of the trip program.
type DailySchedule struct {
	Day           int      `json:"day" bson:"day"`
	Date          string   `json:"date" bson:"date"`
	Title         string   `json:"title" bson:"title"`
	Activities    []string `json:"activities" bson:"activities"`
	BiblicalQuote string   `json:"biblical_quote" bson:"biblical_quote"`
	Accommodation string   `json:"accommodation" bson:"accommodation"`
}

// Itinerary is the full travel program of a group. By convention a
// group has at most one itinerary; this is not enforced by the store.
type Itinerary struct {
	ID            string          `json:"id" bson:"id"`
	GroupID       string          `json:"group_id" bson:"group_id"`
	GroupName     string          `json:"group_name" bson:"group_name"`
	Flights       FlightDetails   `json:"flights" bson:"flights"`
	Included      []string        `json:"included" bson:"included"`
	NotIncluded   []string        `json:"not_included" bson:"not_included"`
	DailySchedule []DailySchedule `json:"daily_schedule" bson:"daily_schedule"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" bson:"updated_at"`
}

// ItineraryUpdate is a partial update. Nil fields are left untouched in
// storage; a present list replaces the stored list wholesale.
type ItineraryUpdate struct {
	GroupName     *string          `json:"group_name,omitempty"`
	Flights       *FlightDetails   `json:"flights,omitempty"`
	Included      *[]string        `json:"included,omitempty"`
	NotIncluded   *[]string        `json:"not_included,omitempty"`
	DailySchedule *[]DailySchedule `json:"daily_schedule,omitempty"`
}
