package repositories

import (
	"context"
	"database/sql"

	"umrah-service/internal/module/user/models/entity"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindUserByEmail(ctx context.Context, email string) (entity.User, error)
	FindUserByID(ctx context.Context, userID int64) (entity.User, error)
	InsertUser(ctx context.Context, user *entity.User) (int64, error)
	UpdateUser(ctx context.Context, user *entity.User) error
	UpdateProfilePicture(ctx context.Context, userID int64, path string) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindUserByEmail implements Repositories.
func (r *repositories) FindUserByEmail(ctx context.Context, email string) (entity.User, error) {
	query := `SELECT * FROM users WHERE email = $1 AND deleted_at IS NULL`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err == sql.ErrNoRows {
		return entity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		return entity.User{}, errors.InternalServerError("error find user by email")
	}
	return user, nil
}

// FindUserByID implements Repositories.
func (r *repositories) FindUserByID(ctx context.Context, userID int64) (entity.User, error) {
	query := `SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err == sql.ErrNoRows {
		return entity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		return entity.User{}, errors.InternalServerError("error find user by id")
	}
	return user, nil
}

// InsertUser implements Repositories.
func (r *repositories) InsertUser(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (
			full_name, email, password_hash, phone, role, company_name,
			company_license, company_address, bank_name, bank_account,
			verification_status, is_verified, created_at
		) VALUES (
			:full_name, :email, :password_hash, :phone, :role, :company_name,
			:company_license, :company_address, :bank_name, :bank_account,
			:verification_status, :is_verified, :created_at
		) RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, user)
	if err != nil {
		return 0, errors.InternalServerError("error insert user")
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, errors.InternalServerError("error scan inserted user id")
		}
	}
	return id, nil
}

// UpdateUser implements Repositories.
func (r *repositories) UpdateUser(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET full_name = :full_name,
			phone = :phone,
			company_name = :company_name,
			company_address = :company_address,
			bank_name = :bank_name,
			bank_account = :bank_account,
			payment_gateway_key = :payment_gateway_key,
			verification_status = :verification_status,
			is_verified = :is_verified,
			verification_notes = :verification_notes,
			rejection_reason = :rejection_reason,
			subscription_plan = :subscription_plan,
			package_limit = :package_limit,
			subscription_expires_at = :subscription_expires_at,
			updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return errors.InternalServerError("error update user")
	}
	return nil
}

// UpdateProfilePicture implements Repositories.
func (r *repositories) UpdateProfilePicture(ctx context.Context, userID int64, path string) error {
	query := `UPDATE users SET profile_picture = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, path, userID)
	if err != nil {
		return errors.InternalServerError("error update profile picture")
	}
	return nil
}
