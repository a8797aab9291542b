package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         int64          `db:"id"`
	OrderID    uuid.UUID      `db:"order_id"`
	CustomerID int64          `db:"customer_id"`
	PackageID  int64          `db:"package_id"`
	Rating     int            `db:"rating"`
	Comment    sql.NullString `db:"comment"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  sql.NullTime   `db:"updated_at"`
}

// ReviewedOrder is the slice of the orders row the review flow checks.
type ReviewedOrder struct {
	ID         uuid.UUID `db:"id"`
	CustomerID int64     `db:"customer_id"`
	PackageID  int64     `db:"package_id"`
	Status     string    `db:"status"`
}
