package repositories_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"umrah-service/internal/module/order/models/entity"
	"umrah-service/internal/module/order/repositories"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"
	log_internal "umrah-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock log.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
}

func orderColumns() []string {
	return []string{
		"id", "order_number", "customer_id", "package_id", "company_id",
		"number_of_adults", "number_of_children", "travelers", "special_requests",
		"total_amount", "payment_method", "payment_status", "status",
		"receipt_path", "payment_intent_id", "receipt_verified", "task_id",
		"created_at", "updated_at", "deleted_at",
	}
}

func TestFindOrderByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	orderID := uuid.New()
	createdAt := time.Now()

	t.Run("order found", func(t *testing.T) {
		rows := sqlxmock.NewRows(orderColumns()).AddRow(
			orderID, "UMR-TEST", int64(1), int64(2), int64(10),
			2, 1, []byte("[]"), nil,
			float64(2400), "card", "pending", "pending",
			nil, nil, false, nil,
			createdAt, nil, nil,
		)
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = (.+)").
			WithArgs(orderID.String()).
			WillReturnRows(rows)

		order, err := repo.FindOrderByID(context.Background(), orderID.String())

		assert.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
		assert.Equal(t, "UMR-TEST", order.OrderNumber)
		assert.Equal(t, entity.StatusPending, order.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("order not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = (.+)").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindOrderByID(context.Background(), "missing")

		assert.Equal(t, errors.NotFound("order not found"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = (.+)").
			WithArgs("boom").
			WillReturnError(sql.ErrConnDone)

		_, err := repo.FindOrderByID(context.Background(), "boom")

		assert.Equal(t, errors.InternalServerError("error find order by id"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpsertOrderInsertsWhenMissing(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	order := entity.Order{
		ID:            uuid.New(),
		OrderNumber:   "UMR-TEST",
		CustomerID:    1,
		PackageID:     2,
		CompanyID:     10,
		Travelers:     []byte("[]"),
		TotalAmount:   2400,
		PaymentMethod: entity.PaymentMethodCard,
		PaymentStatus: entity.PaymentStatusPending,
		Status:        entity.StatusPending,
		CreatedAt:     time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = (.+) FOR UPDATE").
		WithArgs(order.ID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlxmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.UpsertOrder(context.Background(), &order)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
