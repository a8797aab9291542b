package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"umrah-service/internal/module/package/models/entity"
	"umrah-service/internal/module/package/models/request"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
}

type Repositories interface {
	// db
	InsertPackage(ctx context.Context, pkg *entity.Package) (int64, error)
	UpdatePackage(ctx context.Context, pkg *entity.Package) error
	FindPackageByID(ctx context.Context, packageID int64) (entity.Package, error)
	FindPackagesByCompanyID(ctx context.Context, companyID int64) ([]entity.Package, error)
	FindActivePackages(ctx context.Context, filter *request.ListPackages) ([]entity.Package, error)
	SetApprovalStatus(ctx context.Context, packageID int64, approval string) error
	CountLivePackagesByCompanyID(ctx context.Context, companyID int64) (int64, error)
	FindCompanyByID(ctx context.Context, companyID int64) (entity.Company, error)
	InsertTemplate(ctx context.Context, tpl *entity.PackageTemplate) (int64, error)
	FindTemplatesByCompanyID(ctx context.Context, companyID int64) ([]entity.PackageTemplate, error)
	// redis
	SeedPackageStock(ctx context.Context, packageID int64, seats int) error
	GetPackageStock(ctx context.Context, packageID int64) (int64, error)
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
	}
}

func stockKey(packageID int64) string {
	return fmt.Sprintf("package_stock:%d", packageID)
}

// InsertPackage implements Repositories.
func (r *repositories) InsertPackage(ctx context.Context, pkg *entity.Package) (int64, error) {
	query := `
		INSERT INTO packages (
			company_id, name, description, price, child_price, total_seats,
			available_seats, departure_date, return_date, duration_days,
			makkah_hotel, madinah_hotel, itinerary, status, approval_status, created_at
		) VALUES (
			:company_id, :name, :description, :price, :child_price, :total_seats,
			:available_seats, :departure_date, :return_date, :duration_days,
			:makkah_hotel, :madinah_hotel, :itinerary, :status, :approval_status, :created_at
		) RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, pkg)
	if err != nil {
		return 0, errors.InternalServerError("error insert package")
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, errors.InternalServerError("error scan inserted package id")
		}
	}
	return id, nil
}

// UpdatePackage implements Repositories.
func (r *repositories) UpdatePackage(ctx context.Context, pkg *entity.Package) error {
	query := `
		UPDATE packages
		SET name = :name,
			description = :description,
			price = :price,
			child_price = :child_price,
			available_seats = :available_seats,
			makkah_hotel = :makkah_hotel,
			madinah_hotel = :madinah_hotel,
			itinerary = :itinerary,
			status = :status,
			approval_status = :approval_status,
			updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, pkg)
	if err != nil {
		return errors.InternalServerError("error update package")
	}
	return nil
}

// FindPackageByID implements Repositories.
func (r *repositories) FindPackageByID(ctx context.Context, packageID int64) (entity.Package, error) {
	query := `SELECT * FROM packages WHERE id = $1 AND deleted_at IS NULL`
	var pkg entity.Package
	err := r.db.GetContext(ctx, &pkg, query, packageID)
	if err == sql.ErrNoRows {
		return entity.Package{}, errors.NotFound("package not found")
	}
	if err != nil {
		return entity.Package{}, errors.InternalServerError("error find package by id")
	}
	return pkg, nil
}

// FindPackagesByCompanyID implements Repositories.
func (r *repositories) FindPackagesByCompanyID(ctx context.Context, companyID int64) ([]entity.Package, error) {
	query := `SELECT * FROM packages WHERE company_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	var packages []entity.Package
	if err := r.db.SelectContext(ctx, &packages, query, companyID); err != nil {
		return nil, errors.InternalServerError("error find packages by company id")
	}
	return packages, nil
}

// FindActivePackages implements Repositories.
func (r *repositories) FindActivePackages(ctx context.Context, filter *request.ListPackages) ([]entity.Package, error) {
	query := `
		SELECT * FROM packages
		WHERE status = 'active' AND approval_status = 'approved' AND deleted_at IS NULL`
	args := []interface{}{}

	if filter.DepartureAfter != "" {
		args = append(args, filter.DepartureAfter)
		query += fmt.Sprintf(" AND departure_date >= $%d", len(args))
	}
	if filter.DepartureBefore != "" {
		args = append(args, filter.DepartureBefore)
		query += fmt.Sprintf(" AND departure_date <= $%d", len(args))
	}
	if filter.MaxPrice > 0 {
		args = append(args, filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}

	query += " ORDER BY departure_date ASC"

	var packages []entity.Package
	if err := r.db.SelectContext(ctx, &packages, query, args...); err != nil {
		return nil, errors.InternalServerError("error find active packages")
	}
	return packages, nil
}

// SetApprovalStatus implements Repositories.
func (r *repositories) SetApprovalStatus(ctx context.Context, packageID int64, approval string) error {
	query := `UPDATE packages SET approval_status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, approval, packageID)
	if err != nil {
		return errors.InternalServerError("error set package approval status")
	}
	return nil
}

// CountLivePackagesByCompanyID implements Repositories.
func (r *repositories) CountLivePackagesByCompanyID(ctx context.Context, companyID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM packages WHERE company_id = $1 AND deleted_at IS NULL`
	var count int64
	if err := r.db.GetContext(ctx, &count, query, companyID); err != nil {
		return 0, errors.InternalServerError("error count packages by company id")
	}
	return count, nil
}

// FindCompanyByID implements Repositories.
func (r *repositories) FindCompanyByID(ctx context.Context, companyID int64) (entity.Company, error) {
	query := `
		SELECT id, verification_status, is_verified, subscription_plan,
			package_limit, subscription_expires_at
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

// InsertTemplate implements Repositories.
func (r *repositories) InsertTemplate(ctx context.Context, tpl *entity.PackageTemplate) (int64, error) {
	query := `
		INSERT INTO package_templates (company_id, name, template, created_at)
		VALUES (:company_id, :name, :template, :created_at)
		RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, tpl)
	if err != nil {
		return 0, errors.InternalServerError("error insert package template")
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, errors.InternalServerError("error scan inserted template id")
		}
	}
	return id, nil
}

// FindTemplatesByCompanyID implements Repositories.
func (r *repositories) FindTemplatesByCompanyID(ctx context.Context, companyID int64) ([]entity.PackageTemplate, error) {
	query := `SELECT * FROM package_templates WHERE company_id = $1 ORDER BY created_at DESC`
	var templates []entity.PackageTemplate
	if err := r.db.SelectContext(ctx, &templates, query, companyID); err != nil {
		return nil, errors.InternalServerError("error find templates by company id")
	}
	return templates, nil
}

// SeedPackageStock implements Repositories.
func (r *repositories) SeedPackageStock(ctx context.Context, packageID int64, seats int) error {
	if err := r.redisClient.Set(ctx, stockKey(packageID), seats, 0).Err(); err != nil {
		return errors.InternalServerError("error seed package stock")
	}
	return nil
}

// GetPackageStock implements Repositories.
func (r *repositories) GetPackageStock(ctx context.Context, packageID int64) (int64, error) {
	data, err := r.redisClient.Get(ctx, stockKey(packageID)).Result()
	if err != nil {
		return 0, errors.InternalServerError("error get package stock")
	}
	stock, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return 0, errors.InternalServerError("error parse package stock")
	}
	return stock, nil
}
