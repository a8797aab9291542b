package entity

import (
	"database/sql"
	"time"
)

const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
)

// Subscription is one history row per admin action on a company plan;
// the users row carries the current snapshot.
type Subscription struct {
	ID           int64        `db:"id"`
	CompanyID    int64        `db:"company_id"`
	Plan         string       `db:"plan"`
	PackageLimit int64        `db:"package_limit"`
	Status       string       `db:"status"`
	StartedAt    time.Time    `db:"started_at"`
	ExpiresAt    sql.NullTime `db:"expires_at"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    sql.NullTime `db:"updated_at"`
}

// Company is the slice of the users row the admin flows manage.
type Company struct {
	ID                    int64          `db:"id"`
	Email                 string         `db:"email"`
	FullName              string         `db:"full_name"`
	CompanyName           sql.NullString `db:"company_name"`
	CompanyLicense        sql.NullString `db:"company_license"`
	VerificationStatus    sql.NullString `db:"verification_status"`
	IsVerified            bool           `db:"is_verified"`
	VerificationNotes     sql.NullString `db:"verification_notes"`
	RejectionReason       sql.NullString `db:"rejection_reason"`
	SubscriptionPlan      sql.NullString `db:"subscription_plan"`
	PackageLimit          sql.NullInt64  `db:"package_limit"`
	SubscriptionExpiresAt sql.NullTime   `db:"subscription_expires_at"`
	CreatedAt             time.Time      `db:"created_at"`
}
