package repositories

import (
	"context"
	"database/sql"
	"time"

	"umrah-service/internal/module/admin/models/entity"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindCompanies(ctx context.Context) ([]entity.Company, error)
	FindCompanyByID(ctx context.Context, companyID int64) (entity.Company, error)
	UpdateVerification(ctx context.Context, company *entity.Company) error
	UpdateSubscriptionSnapshot(ctx context.Context, company *entity.Company) error
	InsertSubscription(ctx context.Context, subscription *entity.Subscription) error
	FindSubscriptionsByCompanyID(ctx context.Context, companyID int64) ([]entity.Subscription, error)
	ExpireSubscriptions(ctx context.Context, now time.Time) (int64, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindCompanies implements Repositories.
func (r *repositories) FindCompanies(ctx context.Context) ([]entity.Company, error) {
	query := `
		SELECT id, email, full_name, company_name, company_license,
			verification_status, is_verified, verification_notes, rejection_reason,
			subscription_plan, package_limit, subscription_expires_at, created_at
		FROM users
		WHERE role = 'company' AND deleted_at IS NULL
		ORDER BY created_at DESC`
	var companies []entity.Company
	if err := r.db.SelectContext(ctx, &companies, query); err != nil {
		return nil, errors.InternalServerError("error find companies")
	}
	return companies, nil
}

// FindCompanyByID implements Repositories.
func (r *repositories) FindCompanyByID(ctx context.Context, companyID int64) (entity.Company, error) {
	query := `
		SELECT id, email, full_name, company_name, company_license,
			verification_status, is_verified, verification_notes, rejection_reason,
			subscription_plan, package_limit, subscription_expires_at, created_at
		FROM users
		WHERE id = $1 AND role = 'company' AND deleted_at IS NULL`
	var company entity.Company
	err := r.db.GetContext(ctx, &company, query, companyID)
	if err == sql.ErrNoRows {
		return entity.Company{}, errors.NotFound("company not found")
	}
	if err != nil {
		return entity.Company{}, errors.InternalServerError("error find company by id")
	}
	return company, nil
}

// UpdateVerification implements Repositories.
func (r *repositories) UpdateVerification(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE users
		SET verification_status = :verification_status,
			is_verified = :is_verified,
			verification_notes = :verification_notes,
			rejection_reason = :rejection_reason,
			updated_at = NOW()
		WHERE id = :id AND role = 'company'`
	if _, err := r.db.NamedExecContext(ctx, query, company); err != nil {
		return errors.InternalServerError("error update company verification")
	}
	return nil
}

// UpdateSubscriptionSnapshot implements Repositories.
func (r *repositories) UpdateSubscriptionSnapshot(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE users
		SET subscription_plan = :subscription_plan,
			package_limit = :package_limit,
			subscription_expires_at = :subscription_expires_at,
			updated_at = NOW()
		WHERE id = :id AND role = 'company'`
	if _, err := r.db.NamedExecContext(ctx, query, company); err != nil {
		return errors.InternalServerError("error update subscription snapshot")
	}
	return nil
}

// InsertSubscription implements Repositories.
func (r *repositories) InsertSubscription(ctx context.Context, subscription *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			company_id, plan, package_limit, status, started_at, expires_at, created_at
		) VALUES (
			:company_id, :plan, :package_limit, :status, :started_at, :expires_at, :created_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, subscription); err != nil {
		return errors.InternalServerError("error insert subscription")
	}
	return nil
}

// FindSubscriptionsByCompanyID implements Repositories.
func (r *repositories) FindSubscriptionsByCompanyID(ctx context.Context, companyID int64) ([]entity.Subscription, error) {
	query := `SELECT * FROM subscriptions WHERE company_id = $1 ORDER BY created_at DESC`
	var subscriptions []entity.Subscription
	if err := r.db.SelectContext(ctx, &subscriptions, query, companyID); err != nil {
		return nil, errors.InternalServerError("error find subscriptions by company id")
	}
	return subscriptions, nil
}

// ExpireSubscriptions marks active rows whose expiry has passed; the
// users snapshot is left alone, reads treat it as inactive on their own.
func (r *repositories) ExpireSubscriptions(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE subscriptions
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at < $1`
	result, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, errors.InternalServerError("error expire subscriptions")
	}
	affected, _ := result.RowsAffected()
	return affected, nil
}
