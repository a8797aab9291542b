package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

const (
	StatusDraft     = "draft"
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	PaymentStatusPending   = "pending"
	PaymentStatusPartial   = "partial"
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"

	PaymentMethodCard         = "card"
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
)

type Order struct {
	ID               uuid.UUID      `db:"id"`
	OrderNumber      string         `db:"order_number"`
	CustomerID       int64          `db:"customer_id"`
	PackageID        int64          `db:"package_id"`
	CompanyID        int64          `db:"company_id"`
	NumberOfAdults   int            `db:"number_of_adults"`
	NumberOfChildren int            `db:"number_of_children"`
	Travelers        types.JSONText `db:"travelers"`
	SpecialRequests  sql.NullString `db:"special_requests"`
	TotalAmount      float64        `db:"total_amount"`
	PaymentMethod    string         `db:"payment_method"`
	PaymentStatus    string         `db:"payment_status"`
	Status           string         `db:"status"`
	ReceiptPath      sql.NullString `db:"receipt_path"`
	PaymentIntentID  sql.NullString `db:"payment_intent_id"`
	ReceiptVerified  bool           `db:"receipt_verified"`
	TaskID           sql.NullString `db:"task_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
	DeletedAt        sql.NullTime   `db:"deleted_at"`
}

type Passport struct {
	ID             int64          `db:"id"`
	OrderID        uuid.UUID      `db:"order_id"`
	TravelerIndex  int            `db:"traveler_index"`
	FullName       string         `db:"full_name"`
	PassportNumber string         `db:"passport_number"`
	Nationality    sql.NullString `db:"nationality"`
	DateOfBirth    sql.NullString `db:"date_of_birth"`
	ExpiryDate     sql.NullString `db:"expiry_date"`
	ImagePath      sql.NullString `db:"image_path"`
	Extracted      bool           `db:"extracted"`
	CreatedAt      time.Time      `db:"created_at"`
}

type Visa struct {
	ID            int64          `db:"id"`
	OrderID       uuid.UUID      `db:"order_id"`
	TravelerIndex int            `db:"traveler_index"`
	FullName      string         `db:"full_name"`
	VisaNumber    string         `db:"visa_number"`
	Nationality   sql.NullString `db:"nationality"`
	ExpiryDate    sql.NullString `db:"expiry_date"`
	ImagePath     sql.NullString `db:"image_path"`
	Extracted     bool           `db:"extracted"`
	CreatedAt     time.Time      `db:"created_at"`
}

// BookingPackage is the slice of the packages row the order flow reads.
type BookingPackage struct {
	ID             int64     `db:"id"`
	CompanyID      int64     `db:"company_id"`
	Price          float64   `db:"price"`
	ChildPrice     float64   `db:"child_price"`
	Status         string    `db:"status"`
	ApprovalStatus string    `db:"approval_status"`
	ReturnDate     time.Time `db:"return_date"`
}

// CanTransition reports whether an order status change follows the
// draft → pending → confirmed|cancelled → completed partial order.
func CanTransition(from, to string) bool {
	switch from {
	case StatusDraft:
		return to == StatusPending || to == StatusCancelled
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}
