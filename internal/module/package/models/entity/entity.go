package entity

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx/types"
)

type Package struct {
	ID             int64          `db:"id"`
	CompanyID      int64          `db:"company_id"`
	Name           string         `db:"name"`
	Description    string         `db:"description"`
	Price          float64        `db:"price"`
	ChildPrice     float64        `db:"child_price"`
	TotalSeats     int            `db:"total_seats"`
	AvailableSeats int            `db:"available_seats"`
	DepartureDate  time.Time      `db:"departure_date"`
	ReturnDate     time.Time      `db:"return_date"`
	DurationDays   int            `db:"duration_days"`
	MakkahHotel    types.JSONText `db:"makkah_hotel"`
	MadinahHotel   types.JSONText `db:"madinah_hotel"`
	Itinerary      types.JSONText `db:"itinerary"`
	Status         string         `db:"status"`
	ApprovalStatus string         `db:"approval_status"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      sql.NullTime   `db:"updated_at"`
	DeletedAt      sql.NullTime   `db:"deleted_at"`
}

type PackageTemplate struct {
	ID        int64          `db:"id"`
	CompanyID int64          `db:"company_id"`
	Name      string         `db:"name"`
	Template  types.JSONText `db:"template"`
	CreatedAt time.Time      `db:"created_at"`
}

// Company is the slice of the users row the package flow needs to gate
// creation on verification and subscription limits.
type Company struct {
	ID                    int64          `db:"id"`
	VerificationStatus    sql.NullString `db:"verification_status"`
	IsVerified            bool           `db:"is_verified"`
	SubscriptionPlan      sql.NullString `db:"subscription_plan"`
	PackageLimit          sql.NullInt64  `db:"package_limit"`
	SubscriptionExpiresAt sql.NullTime   `db:"subscription_expires_at"`
}
