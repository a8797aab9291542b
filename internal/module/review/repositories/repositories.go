package repositories

import (
	"context"
	"database/sql"

	"umrah-service/internal/module/review/models/entity"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	InsertReview(ctx context.Context, review *entity.Review) error
	FindReviewsByPackageID(ctx context.Context, packageID int64) ([]entity.Review, error)
	FindOrderForReview(ctx context.Context, orderID string) (entity.ReviewedOrder, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertReview implements Repositories. The unique index on order_id
// turns a second review into a conflict.
func (r *repositories) InsertReview(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (
			order_id, customer_id, package_id, rating, comment, created_at
		) VALUES (
			:order_id, :customer_id, :package_id, :rating, :comment, :created_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, review); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return errors.Conflict("order already has a review")
		}
		return errors.InternalServerError("error insert review")
	}
	return nil
}

// FindReviewsByPackageID implements Repositories.
func (r *repositories) FindReviewsByPackageID(ctx context.Context, packageID int64) ([]entity.Review, error) {
	query := `SELECT * FROM reviews WHERE package_id = $1 ORDER BY created_at DESC`
	var reviews []entity.Review
	if err := r.db.SelectContext(ctx, &reviews, query, packageID); err != nil {
		return nil, errors.InternalServerError("error find reviews by package id")
	}
	return reviews, nil
}

// FindOrderForReview implements Repositories.
func (r *repositories) FindOrderForReview(ctx context.Context, orderID string) (entity.ReviewedOrder, error) {
	query := `SELECT id, customer_id, package_id, status FROM orders WHERE id = $1 AND deleted_at IS NULL`
	var order entity.ReviewedOrder
	err := r.db.GetContext(ctx, &order, query, orderID)
	if err == sql.ErrNoRows {
		return entity.ReviewedOrder{}, errors.NotFound("order not found")
	}
	if err != nil {
		return entity.ReviewedOrder{}, errors.InternalServerError("error find order for review")
	}
	return order, nil
}
