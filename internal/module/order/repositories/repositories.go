package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"umrah-service/config"
	"umrah-service/internal/module/order/models/entity"
	"umrah-service/internal/module/order/models/response"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"
	"umrah-service/internal/pkg/scheduler"

	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
)

type repositories struct {
	db            *sqlx.DB
	log           log.Logger
	httpClient    *circuit.HTTPClient
	redisClient   *redis.Client
	redsync       *redsync.Redsync
	schedulerCli  *asynq.Client
	inspector     *asynq.Inspector
	cfgGateway    *config.PaymentGatewayConfig
	cfgExtraction *config.DocumentExtractionConfig
}

type Repositories interface {
	// http
	ChargeGateway(ctx context.Context, gatewayKey, orderID, token string, amount float64) (response.GatewayCharge, error)
	RefundGateway(ctx context.Context, gatewayKey, intentID string) error
	ExtractDocument(ctx context.Context, docType, imagePath string) (response.ExtractionResult, error)
	// redis
	CheckStockPackage(ctx context.Context, packageID int64) (int64, error)
	DecrementStockPackage(ctx context.Context, packageID int64, seats int) error
	IncrementStockPackage(ctx context.Context, packageID int64, seats int) error
	WithStockLock(ctx context.Context, packageID int64, fn func() error) error
	// scheduler
	SetTaskScheduler(ctx context.Context, delay time.Duration, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
	// db
	UpsertOrder(ctx context.Context, order *entity.Order) error
	FindOrderByID(ctx context.Context, orderID string) (entity.Order, error)
	FindOrdersByCustomerID(ctx context.Context, customerID int64) ([]entity.Order, error)
	FindOrdersByCompanyID(ctx context.Context, companyID int64) ([]entity.Order, error)
	FindPackageForBooking(ctx context.Context, packageID int64) (entity.BookingPackage, error)
	FindCompanyGatewayKey(ctx context.Context, companyID int64) (string, error)
	InsertPassport(ctx context.Context, passport *entity.Passport) error
	InsertVisa(ctx context.Context, visa *entity.Visa) error
}

func New(
	db *sqlx.DB,
	log log.Logger,
	httpClient *circuit.HTTPClient,
	redisClient *redis.Client,
	rs *redsync.Redsync,
	schedulerCli *asynq.Client,
	inspector *asynq.Inspector,
	cfgGateway *config.PaymentGatewayConfig,
	cfgExtraction *config.DocumentExtractionConfig,
) Repositories {
	return &repositories{
		db:            db,
		log:           log,
		httpClient:    httpClient,
		redisClient:   redisClient,
		redsync:       rs,
		schedulerCli:  schedulerCli,
		inspector:     inspector,
		cfgGateway:    cfgGateway,
		cfgExtraction: cfgExtraction,
	}
}

func stockKey(packageID int64) string {
	return fmt.Sprintf("package_stock:%d", packageID)
}

// ChargeGateway implements Repositories.
func (r *repositories) ChargeGateway(ctx context.Context, gatewayKey, orderID, token string, amount float64) (response.GatewayCharge, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"order_id": orderID,
		"amount":   amount,
		"currency": "USD",
		"source":   token,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/charges", r.cfgGateway.BaseURL), bytes.NewReader(body))
	if err != nil {
		return response.GatewayCharge{}, errors.InternalServerError("error build gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", gatewayKey))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return response.GatewayCharge{}, errors.InternalServerError("error call payment gateway")
	}
	defer resp.Body.Close()

	var charge response.GatewayCharge
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&charge); err != nil {
		return response.GatewayCharge{}, errors.InternalServerError("error decode gateway response")
	}

	if resp.StatusCode != http.StatusOK || !charge.Success {
		r.log.Error(ctx, "payment gateway declined charge", resp.StatusCode, charge.Message)
		return charge, errors.BadRequest("payment was declined by the gateway")
	}

	return charge, nil
}

// RefundGateway implements Repositories.
func (r *repositories) RefundGateway(ctx context.Context, gatewayKey, intentID string) error {
	body, _ := json.Marshal(map[string]interface{}{
		"intent_id": intentID,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/refunds", r.cfgGateway.BaseURL), bytes.NewReader(body))
	if err != nil {
		return errors.InternalServerError("error build refund request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", gatewayKey))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return errors.InternalServerError("error call payment gateway refund")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Error(ctx, "payment gateway refund failed", resp.StatusCode)
		return errors.InternalServerError("error refund payment")
	}

	return nil
}

// ExtractDocument implements Repositories.
func (r *repositories) ExtractDocument(ctx context.Context, docType, imagePath string) (response.ExtractionResult, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"document_type": docType,
		"image_path":    imagePath,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/extract", r.cfgExtraction.BaseURL), bytes.NewReader(body))
	if err != nil {
		return response.ExtractionResult{}, errors.InternalServerError("error build extraction request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return response.ExtractionResult{}, errors.InternalServerError("error call extraction service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Error(ctx, "extraction service failed", resp.StatusCode)
		return response.ExtractionResult{}, errors.InternalServerError("error extract document")
	}

	var result response.ExtractionResult
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&result); err != nil {
		return response.ExtractionResult{}, errors.InternalServerError("error decode extraction response")
	}

	return result, nil
}

// CheckStockPackage implements Repositories.
func (r *repositories) CheckStockPackage(ctx context.Context, packageID int64) (int64, error) {
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

// DecrementStockPackage implements Repositories.
func (r *repositories) DecrementStockPackage(ctx context.Context, packageID int64, seats int) error {
	if _, err := r.redisClient.DecrBy(ctx, stockKey(packageID), int64(seats)).Result(); err != nil {
		return errors.InternalServerError("error decrement package stock")
	}
	return nil
}

// IncrementStockPackage implements Repositories.
func (r *repositories) IncrementStockPackage(ctx context.Context, packageID int64, seats int) error {
	if _, err := r.redisClient.IncrBy(ctx, stockKey(packageID), int64(seats)).Result(); err != nil {
		return errors.InternalServerError("error increment package stock")
	}
	return nil
}

// WithStockLock serializes check-then-decrement across instances.
func (r *repositories) WithStockLock(ctx context.Context, packageID int64, fn func() error) error {
	mutex := r.redsync.NewMutex(
		fmt.Sprintf("lock:%s", stockKey(packageID)),
		redsync.WithExpiry(8*time.Second),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return errors.InternalServerError("error acquire stock lock")
	}
	defer mutex.UnlockContext(ctx)

	return fn()
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, delay time.Duration, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeSetPaymentExpired, payload)
	info, err := r.schedulerCli.EnqueueContext(ctx, task, asynq.ProcessIn(delay))
	if err != nil {
		return "", errors.InternalServerError("error enqueue payment expiration task")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	if err := r.inspector.DeleteTask("default", taskID); err != nil {
		// the task may have already run or been pruned
		r.log.Warn(ctx, "error delete scheduled task", taskID, err)
	}
	return nil
}

// UpsertOrder implements Repositories.
func (r *repositories) UpsertOrder(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	// Lock the row for update
	query := `SELECT * FROM orders WHERE id = $1 FOR UPDATE`
	var existingOrder entity.Order
	err = tx.GetContext(ctx, &existingOrder, query, order.ID)
	if err != nil && err != sql.ErrNoRows {
		tx.Rollback()
		return errors.InternalServerError("error locking order row")
	}

	if err == sql.ErrNoRows {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO orders (
				id, order_number, customer_id, package_id, company_id,
				number_of_adults, number_of_children, travelers, special_requests,
				total_amount, payment_method, payment_status, status,
				receipt_path, payment_intent_id, receipt_verified, task_id, created_at
			) VALUES (
				:id, :order_number, :customer_id, :package_id, :company_id,
				:number_of_adults, :number_of_children, :travelers, :special_requests,
				:total_amount, :payment_method, :payment_status, :status,
				:receipt_path, :payment_intent_id, :receipt_verified, :task_id, :created_at
			)`, order)
	} else {
		_, err = tx.NamedExecContext(ctx, `
			UPDATE orders
			SET travelers = :travelers,
				special_requests = :special_requests,
				total_amount = :total_amount,
				payment_method = :payment_method,
				payment_status = :payment_status,
				status = :status,
				receipt_path = :receipt_path,
				payment_intent_id = :payment_intent_id,
				receipt_verified = :receipt_verified,
				task_id = :task_id,
				updated_at = NOW()
			WHERE id = :id`, order)
	}
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error upserting order")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// FindOrderByID implements Repositories.
func (r *repositories) FindOrderByID(ctx context.Context, orderID string) (entity.Order, error) {
	query := `SELECT * FROM orders WHERE id = $1 AND deleted_at IS NULL`
	var order entity.Order
	err := r.db.GetContext(ctx, &order, query, orderID)
	if err == sql.ErrNoRows {
		return entity.Order{}, errors.NotFound("order not found")
	}
	if err != nil {
		return entity.Order{}, errors.InternalServerError("error find order by id")
	}
	return order, nil
}

// FindOrdersByCustomerID implements Repositories.
func (r *repositories) FindOrdersByCustomerID(ctx context.Context, customerID int64) ([]entity.Order, error) {
	query := `SELECT * FROM orders WHERE customer_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	var orders []entity.Order
	if err := r.db.SelectContext(ctx, &orders, query, customerID); err != nil {
		return nil, errors.InternalServerError("error find orders by customer id")
	}
	return orders, nil
}

// FindOrdersByCompanyID implements Repositories.
func (r *repositories) FindOrdersByCompanyID(ctx context.Context, companyID int64) ([]entity.Order, error) {
	query := `SELECT * FROM orders WHERE company_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	var orders []entity.Order
	if err := r.db.SelectContext(ctx, &orders, query, companyID); err != nil {
		return nil, errors.InternalServerError("error find orders by company id")
	}
	return orders, nil
}

// FindPackageForBooking implements Repositories.
func (r *repositories) FindPackageForBooking(ctx context.Context, packageID int64) (entity.BookingPackage, error) {
	query := `
		SELECT id, company_id, price, child_price, status, approval_status, return_date
		FROM packages
		WHERE id = $1 AND deleted_at IS NULL`
	var pkg entity.BookingPackage
	err := r.db.GetContext(ctx, &pkg, query, packageID)
	if err == sql.ErrNoRows {
		return entity.BookingPackage{}, errors.NotFound("package not found")
	}
	if err != nil {
		return entity.BookingPackage{}, errors.InternalServerError("error find package for booking")
	}
	return pkg, nil
}

// FindCompanyGatewayKey implements Repositories.
func (r *repositories) FindCompanyGatewayKey(ctx context.Context, companyID int64) (string, error) {
	query := `SELECT payment_gateway_key FROM users WHERE id = $1 AND role = 'company' AND deleted_at IS NULL`
	var key sql.NullString
	err := r.db.GetContext(ctx, &key, query, companyID)
	if err == sql.ErrNoRows {
		return "", errors.NotFound("company not found")
	}
	if err != nil {
		return "", errors.InternalServerError("error find company gateway key")
	}
	if !key.Valid || key.String == "" {
		return "", errors.BadRequest("company has no payment gateway key configured")
	}
	return key.String, nil
}

// InsertPassport implements Repositories.
func (r *repositories) InsertPassport(ctx context.Context, passport *entity.Passport) error {
	query := `
		INSERT INTO passports (
			order_id, traveler_index, full_name, passport_number, nationality,
			date_of_birth, expiry_date, image_path, extracted, created_at
		) VALUES (
			:order_id, :traveler_index, :full_name, :passport_number, :nationality,
			:date_of_birth, :expiry_date, :image_path, :extracted, :created_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, passport); err != nil {
		return errors.InternalServerError("error insert passport")
	}
	return nil
}

// InsertVisa implements Repositories.
func (r *repositories) InsertVisa(ctx context.Context, visa *entity.Visa) error {
	query := `
		INSERT INTO visas (
			order_id, traveler_index, full_name, visa_number, nationality,
			expiry_date, image_path, extracted, created_at
		) VALUES (
			:order_id, :traveler_index, :full_name, :visa_number, :nationality,
			:expiry_date, :image_path, :extracted, :created_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, visa); err != nil {
		return errors.InternalServerError("error insert visa")
	}
	return nil
}
