package entity

import (
	"database/sql"
	"time"
)

type User struct {
	ID             int64          `db:"id"`
	FullName       string         `db:"full_name"`
	Email          string         `db:"email"`
	PasswordHash   string         `db:"password_hash"`
	Phone          string         `db:"phone"`
	Role           string         `db:"role"`
	ProfilePicture sql.NullString `db:"profile_picture"`

	// company only
	CompanyName           sql.NullString `db:"company_name"`
	CompanyLicense        sql.NullString `db:"company_license"`
	CompanyAddress        sql.NullString `db:"company_address"`
	BankName              sql.NullString `db:"bank_name"`
	BankAccount           sql.NullString `db:"bank_account"`
	PaymentGatewayKey     sql.NullString `db:"payment_gateway_key"`
	VerificationStatus    sql.NullString `db:"verification_status"`
	IsVerified            bool           `db:"is_verified"`
	VerificationNotes     sql.NullString `db:"verification_notes"`
	RejectionReason       sql.NullString `db:"rejection_reason"`
	SubscriptionPlan      sql.NullString `db:"subscription_plan"`
	PackageLimit          sql.NullInt64  `db:"package_limit"`
	SubscriptionExpiresAt sql.NullTime   `db:"subscription_expires_at"`

	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}
