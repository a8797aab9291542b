package response

import "github.com/goccy/go-json"

type PackageDetail struct {
	ID             int64           `json:"id"`
	CompanyID      int64           `json:"company_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	ChildPrice     float64         `json:"child_price"`
	TotalSeats     int             `json:"total_seats"`
	AvailableSeats int             `json:"available_seats"`
	DepartureDate  string          `json:"departure_date"`
	ReturnDate     string          `json:"return_date"`
	DurationDays   int             `json:"duration_days"`
	MakkahHotel    json.RawMessage `json:"makkah_hotel,omitempty"`
	MadinahHotel   json.RawMessage `json:"madinah_hotel,omitempty"`
	Itinerary      json.RawMessage `json:"itinerary,omitempty"`
	Status         string          `json:"status"`
	ApprovalStatus string          `json:"approval_status"`
}

type Template struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Template json.RawMessage `json:"template"`
}
