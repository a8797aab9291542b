package request

import "github.com/goccy/go-json"

type CreatePackage struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Price         float64         `json:"price" validate:"required,gt=0"`
	ChildPrice    float64         `json:"child_price" validate:"gte=0"`
	TotalSeats    int             `json:"total_seats" validate:"required,gt=0"`
	DepartureDate string          `json:"departure_date" validate:"required"`
	ReturnDate    string          `json:"return_date" validate:"required"`
	DurationDays  int             `json:"duration_days" validate:"required,gt=0"`
	MakkahHotel   json.RawMessage `json:"makkah_hotel"`
	MadinahHotel  json.RawMessage `json:"madinah_hotel"`
	Itinerary     json.RawMessage `json:"itinerary"`
}

type UpdatePackage struct {
	PackageID    int64           `json:"package_id" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Price        float64         `json:"price" validate:"required,gt=0"`
	ChildPrice   float64         `json:"child_price" validate:"gte=0"`
	MakkahHotel  json.RawMessage `json:"makkah_hotel"`
	MadinahHotel json.RawMessage `json:"madinah_hotel"`
	Itinerary    json.RawMessage `json:"itinerary"`
	Status       string          `json:"status" validate:"required,oneof=draft active inactive"`
}

type ReviewPackage struct {
	PackageID int64  `json:"package_id" validate:"required"`
	Approval  string `json:"approval" validate:"required,oneof=approved rejected"`
}

type ListPackages struct {
	DepartureAfter  string  `query:"departure_after"`
	DepartureBefore string  `query:"departure_before"`
	MaxPrice        float64 `query:"max_price"`
}

type CreateTemplate struct {
	Name     string          `json:"name" validate:"required"`
	Template json.RawMessage `json:"template" validate:"required"`
}
