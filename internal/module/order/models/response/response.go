package response

import "github.com/goccy/go-json"

type OrderQueued struct {
	OrderID     string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
}

type OrderDetail struct {
	ID               string          `json:"id"`
	OrderNumber      string          `json:"order_number"`
	PackageID        int64           `json:"package_id"`
	NumberOfAdults   int             `json:"number_of_adults"`
	NumberOfChildren int             `json:"number_of_children"`
	Travelers        json.RawMessage `json:"travelers"`
	SpecialRequests  string          `json:"special_requests,omitempty"`
	TotalAmount      float64         `json:"total_amount"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentStatus    string          `json:"payment_status"`
	Status           string          `json:"status"`
	ReceiptPath      string          `json:"receipt_path,omitempty"`
	ReceiptVerified  bool            `json:"receipt_verified"`
	CreatedAt        string          `json:"created_at"`
}

type DocumentResult struct {
	DocumentType   string `json:"document_type"`
	TravelerIndex  int    `json:"traveler_index"`
	Extracted      bool   `json:"extracted"`
	FullName       string `json:"full_name,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
	ImagePath      string `json:"image_path"`
}

// GatewayCharge is the payment processor's charge result.
type GatewayCharge struct {
	Success  bool   `json:"success"`
	IntentID string `json:"intent_id"`
	Message  string `json:"message"`
}

// ExtractionResult is the document extraction service's response.
type ExtractionResult struct {
	Success        bool   `json:"success"`
	FullName       string `json:"full_name"`
	DocumentNumber string `json:"document_number"`
	Nationality    string `json:"nationality"`
	DateOfBirth    string `json:"date_of_birth"`
	ExpiryDate     string `json:"expiry_date"`
}
