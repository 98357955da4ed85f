package models

import (
	"encoding/json"
	"time"
)

// Booking represents a persisted hotel-booking record.
type Booking struct {
	ID                       string     `bson:"id" json:"id"`
	Hotel                    string     `bson:"hotel" json:"hotel"`         // "Resort Hotel" or "City Hotel"
	LeadTime                 int        `bson:"lead_time" json:"lead_time"` // Days between booking and arrival
	ArrivalDateYear          int        `bson:"arrival_date_year" json:"arrival_date_year"`
	ArrivalDateMonth         string     `bson:"arrival_date_month" json:"arrival_date_month"`             // Canonical month name, e.g. "August"
	ArrivalDateWeekNumber    int        `bson:"arrival_date_week_number" json:"arrival_date_week_number"` // ISO week 1-53
	ArrivalDateDayOfMonth    int        `bson:"arrival_date_day_of_month" json:"arrival_date_day_of_month"`
	StaysInWeekendNights     int        `bson:"stays_in_weekend_nights" json:"stays_in_weekend_nights"`
	StaysInWeekNights        int        `bson:"stays_in_week_nights" json:"stays_in_week_nights"`
	Adults                   int        `bson:"adults" json:"adults"`
	Children                 int        `bson:"children" json:"children"`
	Babies                   int        `bson:"babies" json:"babies"`
	Meal                     string     `bson:"meal" json:"meal"`       // BB, FB, HB, SC, Undefined or ""
	Country                  string     `bson:"country" json:"country"` // 2-3 letter code
	MarketSegment            string     `bson:"market_segment" json:"market_segment"`
	IsRepeatedGuest          bool       `bson:"is_repeated_guest" json:"is_repeated_guest"`
	ReservedRoomType         string     `bson:"reserved_room_type" json:"reserved_room_type"` // Single letter A-H
	Agent                    *int       `bson:"agent,omitempty" json:"agent,omitempty"`       // Optional agent identifier
	Company                  *int       `bson:"company,omitempty" json:"company,omitempty"`   // Optional company identifier
	CustomerType             string     `bson:"customer_type" json:"customer_type"`
	ADR                      float64    `bson:"adr" json:"adr"` // Average daily rate
	RequiredCarParkingSpaces int        `bson:"required_car_parking_spaces" json:"required_car_parking_spaces"`
	TotalOfSpecialRequests   int        `bson:"total_of_special_requests" json:"total_of_special_requests"`
	ReservationStatus        string     `bson:"reservation_status" json:"reservation_status"`           // Canceled, Check-Out, No-Show
	ReservationStatusDate    string     `bson:"reservation_status_date" json:"reservation_status_date"` // "YYYY-MM-DD"
	CreatedAt                time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt                time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt                *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
}

// BookingFilter narrows a booking listing.
type BookingFilter struct {
	Hotel   string
	Year    int
	Month   string
	Country string
	Status  string
}

// Pagination describes the slice of a listing that was returned.
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// ToMap converts a booking to its JSON field map.
func (b *Booking) ToMap() map[string]any {
	raw, err := json.Marshal(b)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}

// BookingFromMap builds a booking from a JSON field map. Unknown keys are
// dropped; values must already satisfy the record shape contract.
func BookingFromMap(m map[string]any) (*Booking, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var b Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
