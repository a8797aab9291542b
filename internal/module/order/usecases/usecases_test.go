package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"umrah-service/internal/module/order/mocks"
	"umrah-service/internal/module/order/models/entity"
	"umrah-service/internal/module/order/models/request"
	"umrah-service/internal/module/order/models/response"
	"umrah-service/internal/module/order/usecases"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"
	log_internal "umrah-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
	p        message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = NewMockPublisher()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock, p)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func responseCharge(success bool, intentID string) response.GatewayCharge {
	return response.GatewayCharge{Success: success, IntentID: intentID}
}

func responseExtraction(success bool) response.ExtractionResult {
	if !success {
		return response.ExtractionResult{}
	}
	return response.ExtractionResult{
		Success:        true,
		FullName:       "SITI FULANAH",
		DocumentNumber: "X9999999",
		Nationality:    "ID",
		DateOfBirth:    "1987-05-10",
		ExpiryDate:     "2030-05-10",
	}
}

func travelersPayload() []request.Traveler {
	return []request.Traveler{
		{FullName: "Ahmad Fulan", PassportNumber: "A1111111", DateOfBirth: "1985-01-01"},
		{FullName: "Siti Fulanah", PassportNumber: "A2222222", DateOfBirth: "1987-05-10"},
		{FullName: "Zaid Fulan", PassportNumber: "A3333333", DateOfBirth: "2015-03-20"},
	}
}

func TestCreateOrder(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		// mock data
		mockPayload := request.CreateOrder{
			PackageID:        1,
			NumberOfAdults:   2,
			NumberOfChildren: 1,
			Travelers:        travelersPayload(),
			PaymentMethod:    "card",
		}
		mockPackage := entity.BookingPackage{
			ID:             1,
			CompanyID:      10,
			Price:          1000,
			ChildPrice:     400,
			Status:         "active",
			ApprovalStatus: "approved",
		}

		// mock repo
		repoMock.On("FindPackageForBooking", ctx, int64(1)).Return(mockPackage, nil)
		repoMock.On("CheckStockPackage", ctx, int64(1)).Return(int64(10), nil)

		// test
		resp, err := uc.CreateOrder(ctx, &mockPayload, 1, "test@test.com")

		// assert
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.OrderID)
		assert.Equal(t, float64(2400), resp.TotalAmount)
	})

	t.Run("duplicate passport number rejected before any repo call", func(t *testing.T) {
		repoMock.ExpectedCalls = nil
		repoMock.Calls = nil

		// mock data
		travelers := travelersPayload()
		travelers[2].PassportNumber = travelers[0].PassportNumber
		mockPayload := request.CreateOrder{
			PackageID:        1,
			NumberOfAdults:   2,
			NumberOfChildren: 1,
			Travelers:        travelers,
			PaymentMethod:    "card",
		}

		// test
		_, err := uc.CreateOrder(ctx, &mockPayload, 1, "test@test.com")

		// assert
		assert.Error(t, err)
		assert.Equal(t, 400, errors.StatusCode(err))
		repoMock.AssertNotCalled(t, "FindPackageForBooking", ctx, int64(1))
	})

	t.Run("not enough seats", func(t *testing.T) {
		// mock data
		mockPayload := request.CreateOrder{
			PackageID:        2,
			NumberOfAdults:   2,
			NumberOfChildren: 1,
			Travelers:        travelersPayload(),
			PaymentMethod:    "card",
		}
		mockPackage := entity.BookingPackage{
			ID:             2,
			CompanyID:      10,
			Price:          1000,
			ChildPrice:     400,
			Status:         "active",
			ApprovalStatus: "approved",
		}

		// mock repo
		repoMock.On("FindPackageForBooking", ctx, int64(2)).Return(mockPackage, nil)
		repoMock.On("CheckStockPackage", ctx, int64(2)).Return(int64(2), nil)

		// test
		_, err := uc.CreateOrder(ctx, &mockPayload, 1, "test@test.com")

		// assert
		assert.Error(t, err)
		assert.Equal(t, 409, errors.StatusCode(err))
	})
}

func TestConsumeOrderQueue(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		// mock data
		orderID := uuid.New()
		mockPayload := request.CreateOrderQueue{
			OrderID:        orderID.String(),
			CustomerID:     1,
			EmailRecipient: "test@test.com",
			TotalAmount:    2400,
			CreateOrder: request.CreateOrder{
				PackageID:        1,
				NumberOfAdults:   2,
				NumberOfChildren: 1,
				Travelers:        travelersPayload(),
				PaymentMethod:    "card",
			},
		}
		mockPackage := entity.BookingPackage{
			ID:             1,
			CompanyID:      10,
			Price:          1000,
			ChildPrice:     400,
			Status:         "active",
			ApprovalStatus: "approved",
		}

		// mock repo
		repoMock.On("FindPackageForBooking", ctx, int64(1)).Return(mockPackage, nil)
		repoMock.On("WithStockLock", ctx, int64(1), mock.AnythingOfType("func() error")).
			Run(func(args mock.Arguments) {
				fn := args.Get(2).(func() error)
				assert.NoError(t, fn())
			}).Return(nil)
		repoMock.On("CheckStockPackage", ctx, int64(1)).Return(int64(10), nil)
		repoMock.On("DecrementStockPackage", ctx, int64(1), 3).Return(nil)
		repoMock.On("SetTaskScheduler", ctx, mock.AnythingOfType("time.Duration"), mock.Anything).Return("task-1", nil)
		repoMock.On("UpsertOrder", ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.ID == orderID &&
				order.Status == entity.StatusPending &&
				order.PaymentStatus == entity.PaymentStatusPending &&
				order.CompanyID == int64(10) &&
				order.TotalAmount == float64(2400) &&
				order.TaskID.String == "task-1"
		})).Return(nil)

		// test
		err := uc.ConsumeOrderQueue(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
	})

	t.Run("deferred payment stays draft but still gets an expiry task", func(t *testing.T) {
		repoMock.ExpectedCalls = nil
		repoMock.Calls = nil

		// mock data
		orderID := uuid.New()
		mockPayload := request.CreateOrderQueue{
			OrderID:     orderID.String(),
			CustomerID:  1,
			TotalAmount: 2400,
			CreateOrder: request.CreateOrder{
				PackageID:        3,
				NumberOfAdults:   2,
				NumberOfChildren: 1,
				Travelers:        travelersPayload(),
				PaymentMethod:    "card",
				DeferPayment:     true,
			},
		}
		mockPackage := entity.BookingPackage{
			ID:             3,
			CompanyID:      10,
			Price:          1000,
			ChildPrice:     400,
			Status:         "active",
			ApprovalStatus: "approved",
		}

		// mock repo
		repoMock.On("FindPackageForBooking", ctx, int64(3)).Return(mockPackage, nil)
		repoMock.On("WithStockLock", ctx, int64(3), mock.AnythingOfType("func() error")).Return(nil)
		repoMock.On("SetTaskScheduler", ctx, mock.AnythingOfType("time.Duration"), mock.Anything).Return("task-2", nil)
		// the draft holds seats, so the scheduled task is what frees them
		// if the customer never comes back to pay
		repoMock.On("UpsertOrder", ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.Status == entity.StatusDraft && order.TaskID.String == "task-2"
		})).Return(nil)

		// test
		err := uc.ConsumeOrderQueue(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
	})
}

func TestPayOrder(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	orderID := uuid.New()

	t.Run("success", func(t *testing.T) {
		// mock data
		mockPayload := request.Payment{
			OrderID:      orderID.String(),
			PaymentToken: "tok_visa",
		}
		mockOrder := entity.Order{
			ID:            orderID,
			CustomerID:    1,
			PackageID:     1,
			CompanyID:     10,
			TotalAmount:   2400,
			PaymentMethod: entity.PaymentMethodCard,
			PaymentStatus: entity.PaymentStatusPending,
			Status:        entity.StatusPending,
			TaskID:        sql.NullString{String: "task-1", Valid: true},
		}

		// mock repo
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)
		repoMock.On("FindCompanyGatewayKey", ctx, int64(10)).Return("sk_test", nil)
		repoMock.On("ChargeGateway", ctx, "sk_test", orderID.String(), "tok_visa", float64(2400)).
			Return(responseCharge(true, "pi_123"), nil)
		repoMock.On("DeleteTaskScheduler", ctx, "task-1").Return(nil)
		repoMock.On("UpsertOrder", ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.PaymentStatus == entity.PaymentStatusCompleted &&
				order.Status == entity.StatusPending &&
				order.PaymentIntentID.String == "pi_123" &&
				!order.TaskID.Valid
		})).Return(nil)

		// test
		err := uc.PayOrder(ctx, &mockPayload, 1)

		// assert
		assert.NoError(t, err)
	})

	t.Run("forbidden for another customer", func(t *testing.T) {
		// mock data
		mockPayload := request.Payment{
			OrderID:      orderID.String(),
			PaymentToken: "tok_visa",
		}
		mockOrder := entity.Order{
			ID:            orderID,
			CustomerID:    1,
			PaymentMethod: entity.PaymentMethodCard,
			PaymentStatus: entity.PaymentStatusPending,
			Status:        entity.StatusPending,
		}

		// mock repo
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)

		// test
		err := uc.PayOrder(ctx, &mockPayload, 2)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 403, errors.StatusCode(err))
	})
}

func TestCancelOrder(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	orderID := uuid.New()

	t.Run("paid card order is refunded and stock restored", func(t *testing.T) {
		// mock data
		mockPayload := request.CancelOrder{OrderID: orderID.String()}
		mockOrder := entity.Order{
			ID:               orderID,
			CustomerID:       1,
			PackageID:        1,
			CompanyID:        10,
			NumberOfAdults:   2,
			NumberOfChildren: 1,
			PaymentMethod:    entity.PaymentMethodCard,
			PaymentStatus:    entity.PaymentStatusCompleted,
			PaymentIntentID:  sql.NullString{String: "pi_123", Valid: true},
			Status:           entity.StatusPending,
		}

		// mock repo
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)
		repoMock.On("FindCompanyGatewayKey", ctx, int64(10)).Return("sk_test", nil)
		repoMock.On("RefundGateway", ctx, "sk_test", "pi_123").Return(nil)
		repoMock.On("UpsertOrder", ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.Status == entity.StatusCancelled &&
				order.PaymentStatus == entity.PaymentStatusRefunded
		})).Return(nil)
		repoMock.On("IncrementStockPackage", ctx, int64(1), 3).Return(nil)

		// test
		err := uc.CancelOrder(ctx, &mockPayload, 1)

		// assert
		assert.NoError(t, err)
	})

	t.Run("completed order cannot be cancelled", func(t *testing.T) {
		// mock data
		mockPayload := request.CancelOrder{OrderID: orderID.String()}
		mockOrder := entity.Order{
			ID:         orderID,
			CustomerID: 1,
			Status:     entity.StatusCompleted,
		}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)

		// test
		err := uc.CancelOrder(ctx, &mockPayload, 1)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 409, errors.StatusCode(err))
	})
}

func TestConfirmOrder(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	orderID := uuid.New()

	t.Run("success", func(t *testing.T) {
		// mock data
		mockPayload := request.ConfirmOrder{OrderID: orderID.String()}
		mockOrder := entity.Order{
			ID:            orderID,
			CustomerID:    1,
			CompanyID:     10,
			PaymentStatus: entity.PaymentStatusCompleted,
			Status:        entity.StatusPending,
		}

		// mock repo
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)
		repoMock.On("UpsertOrder", ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.Status == entity.StatusConfirmed
		})).Return(nil)

		// test
		err := uc.ConfirmOrder(ctx, &mockPayload, 10)

		// assert
		assert.NoError(t, err)
	})

	t.Run("unpaid order cannot be confirmed", func(t *testing.T) {
		// mock data
		mockPayload := request.ConfirmOrder{OrderID: orderID.String()}
		mockOrder := entity.Order{
			ID:            orderID,
			CompanyID:     10,
			PaymentStatus: entity.PaymentStatusPending,
			Status:        entity.StatusPending,
		}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)

		// test
		err := uc.ConfirmOrder(ctx, &mockPayload, 10)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 400, errors.StatusCode(err))
	})
}

func TestCompleteOrder(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	orderID := uuid.New()

	t.Run("draft order cannot jump to completed", func(t *testing.T) {
		// mock data
		mockPayload := request.CompleteOrder{OrderID: orderID.String()}
		mockOrder := entity.Order{
			ID:        orderID,
			CompanyID: 10,
			Status:    entity.StatusDraft,
		}

		// mock repo
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)

		// test
		err := uc.CompleteOrder(ctx, &mockPayload, 10)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 409, errors.StatusCode(err))
	})

	t.Run("success after return date", func(t *testing.T) {
		// mock data
		mockPayload := request.CompleteOrder{OrderID: orderID.String()}
		mockOrder := entity.Order{
			ID:        orderID,
			CompanyID: 10,
			PackageID: 1,
			Status:    entity.StatusConfirmed,
		}
		mockPackage := entity.BookingPackage{
			ID:         1,
			CompanyID:  10,
			ReturnDate: time.Now().Add(-48 * time.Hour),
		}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)
		repoMock.On("FindPackageForBooking", ctx, int64(1)).Return(mockPackage, nil)
		repoMock.On("UpsertOrder", ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.Status == entity.StatusCompleted
		})).Return(nil)

		// test
		err := uc.CompleteOrder(ctx, &mockPayload, 10)

		// assert
		assert.NoError(t, err)
	})
}

func TestSetPaymentExpired(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	orderID := uuid.New()

	t.Run("success", func(t *testing.T) {
		// mock data
		mockPayload := request.PaymentExpiration{
			OrderID:   orderID.String(),
			PackageID: 1,
			Seats:     3,
		}
		mockOrder := entity.Order{
			ID:            orderID,
			PackageID:     1,
			PaymentStatus: entity.PaymentStatusPending,
			Status:        entity.StatusPending,
			TaskID:        sql.NullString{String: "task-1", Valid: true},
		}

		// mock repo
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)
		repoMock.On("UpsertOrder", ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.Status == entity.StatusCancelled && !order.TaskID.Valid
		})).Return(nil)
		repoMock.On("IncrementStockPackage", ctx, int64(1), 3).Return(nil)

		// test
		err := uc.SetPaymentExpired(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
	})

	t.Run("paid order is left alone", func(t *testing.T) {
		// mock data
		mockPayload := request.PaymentExpiration{
			OrderID:   orderID.String(),
			PackageID: 1,
			Seats:     3,
		}
		mockOrder := entity.Order{
			ID:            orderID,
			PaymentStatus: entity.PaymentStatusCompleted,
			Status:        entity.StatusPending,
		}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.Calls = nil
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)

		// test
		err := uc.SetPaymentExpired(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "UpsertOrder", ctx, mock.Anything)
	})
}

func TestAttachDocument(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	orderID := uuid.New()
	travelers, _ := json.Marshal(travelersPayload())

	t.Run("extraction failure falls back to manual entry", func(t *testing.T) {
		// mock data
		mockPayload := request.AttachDocument{
			OrderID:       orderID.String(),
			DocumentType:  "passport",
			TravelerIndex: 0,
			ImagePath:     "uploads/documents/p.jpg",
		}
		mockOrder := entity.Order{
			ID:         orderID,
			CustomerID: 1,
			Travelers:  travelers,
		}

		// mock repo
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)
		repoMock.On("ExtractDocument", ctx, "passport", "uploads/documents/p.jpg").
			Return(responseExtraction(false), errors.InternalServerError("error call extraction service"))
		repoMock.On("InsertPassport", ctx, mock.MatchedBy(func(passport *entity.Passport) bool {
			return passport.FullName == "Ahmad Fulan" &&
				passport.PassportNumber == "A1111111" &&
				!passport.Extracted
		})).Return(nil)

		// test
		resp, err := uc.AttachDocument(ctx, &mockPayload, 1)

		// assert
		assert.NoError(t, err)
		assert.False(t, resp.Extracted)
		assert.Equal(t, "Ahmad Fulan", resp.FullName)
	})

	t.Run("extracted fields win over manual entry", func(t *testing.T) {
		// mock data
		mockPayload := request.AttachDocument{
			OrderID:       orderID.String(),
			DocumentType:  "passport",
			TravelerIndex: 1,
			ImagePath:     "uploads/documents/p2.jpg",
		}
		mockOrder := entity.Order{
			ID:         orderID,
			CustomerID: 1,
			Travelers:  travelers,
		}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(mockOrder, nil)
		repoMock.On("ExtractDocument", ctx, "passport", "uploads/documents/p2.jpg").
			Return(responseExtraction(true), nil)
		repoMock.On("InsertPassport", ctx, mock.MatchedBy(func(passport *entity.Passport) bool {
			return passport.FullName == "SITI FULANAH" &&
				passport.PassportNumber == "X9999999" &&
				passport.Extracted
		})).Return(nil)

		// test
		resp, err := uc.AttachDocument(ctx, &mockPayload, 1)

		// assert
		assert.NoError(t, err)
		assert.True(t, resp.Extracted)
		assert.Equal(t, "X9999999", resp.DocumentNumber)
	})
}
