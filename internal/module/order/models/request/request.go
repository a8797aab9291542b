package request

type Traveler struct {
	FullName       string `json:"full_name" validate:"required"`
	PassportNumber string `json:"passport_number" validate:"required"`
	DateOfBirth    string `json:"date_of_birth" validate:"required"`
}

type CreateOrder struct {
	PackageID        int64      `json:"package_id" validate:"required"`
	NumberOfAdults   int        `json:"number_of_adults" validate:"required,gt=0"`
	NumberOfChildren int        `json:"number_of_children" validate:"gte=0"`
	Travelers        []Traveler `json:"travelers" validate:"required,min=1,dive"`
	SpecialRequests  string     `json:"special_requests"`
	PaymentMethod    string     `json:"payment_method" validate:"required,oneof=card cash bank_transfer"`
	DeferPayment     bool       `json:"defer_payment"`
}

// CreateOrderQueue is the payload published to the order queue; the
// order id is minted before publishing so the caller can track it.
type CreateOrderQueue struct {
	OrderID        string  `json:"order_id" validate:"required"`
	CustomerID     int64   `json:"customer_id" validate:"required"`
	EmailRecipient string  `json:"email_recipient"`
	TotalAmount    float64 `json:"total_amount" validate:"required"`
	CreateOrder
}

type Payment struct {
	OrderID      string `json:"order_id" validate:"required"`
	PaymentToken string `json:"payment_token" validate:"required"`
}

type CancelOrder struct {
	OrderID string `json:"order_id" validate:"required"`
}

type ConfirmOrder struct {
	OrderID string `json:"order_id" validate:"required"`
}

type CompleteOrder struct {
	OrderID string `json:"order_id" validate:"required"`
}

type VerifyReceipt struct {
	OrderID string `json:"order_id" validate:"required"`
}

type AttachDocument struct {
	OrderID       string `json:"order_id" validate:"required"`
	DocumentType  string `json:"document_type" validate:"required,oneof=passport visa"`
	TravelerIndex int    `json:"traveler_index" validate:"gte=0"`
	ImagePath     string `json:"image_path" validate:"required"`
}

type PaymentExpiration struct {
	OrderID   string `json:"order_id" validate:"required"`
	PackageID int64  `json:"package_id" validate:"required"`
	Seats     int    `json:"seats" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
