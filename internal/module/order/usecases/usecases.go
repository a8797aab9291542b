package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"umrah-service/internal/module/order/models/entity"
	"umrah-service/internal/module/order/models/request"
	"umrah-service/internal/module/order/models/response"
	"umrah-service/internal/module/order/repositories"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/helpers"
	"umrah-service/internal/pkg/log"
	"umrah-service/internal/pkg/middleware"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	TopicBookOrder = "book_order"

	paymentExpiry = 30 * time.Minute
)

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
}

type Usecase interface {
	// http
	CreateOrder(ctx context.Context, payload *request.CreateOrder, customerID int64, emailUser string) (response.OrderQueued, error)
	PayOrder(ctx context.Context, payload *request.Payment, customerID int64) error
	UploadReceipt(ctx context.Context, orderID string, customerID int64, path string) error
	VerifyReceipt(ctx context.Context, payload *request.VerifyReceipt, actorID int64, role string) error
	CancelOrder(ctx context.Context, payload *request.CancelOrder, customerID int64) error
	ConfirmOrder(ctx context.Context, payload *request.ConfirmOrder, companyID int64) error
	CompleteOrder(ctx context.Context, payload *request.CompleteOrder, companyID int64) error
	ShowCustomerOrders(ctx context.Context, customerID int64) ([]response.OrderDetail, error)
	ShowCompanyOrders(ctx context.Context, companyID int64) ([]response.OrderDetail, error)
	GetOrder(ctx context.Context, orderID string, actorID int64, role string) (response.OrderDetail, error)
	AttachDocument(ctx context.Context, payload *request.AttachDocument, customerID int64) (response.DocumentResult, error)
	// queue
	ConsumeOrderQueue(ctx context.Context, payload *request.CreateOrderQueue) error
	// scheduler
	SetPaymentExpired(ctx context.Context, payload *request.PaymentExpiration) error
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

func (u *usecase) CreateOrder(ctx context.Context, payload *request.CreateOrder, customerID int64, emailUser string) (response.OrderQueued, error) {
	// duplicate passport numbers within one submission are rejected
	// before anything is written
	seen := make(map[string]struct{}, len(payload.Travelers))
	for _, traveler := range payload.Travelers {
		if _, ok := seen[traveler.PassportNumber]; ok {
			return response.OrderQueued{}, errors.BadRequest(fmt.Sprintf("duplicate passport number %s across travelers", traveler.PassportNumber))
		}
		seen[traveler.PassportNumber] = struct{}{}
	}

	if len(payload.Travelers) != payload.NumberOfAdults+payload.NumberOfChildren {
		return response.OrderQueued{}, errors.BadRequest("traveler records must match adult and child counts")
	}

	pkg, err := u.repo.FindPackageForBooking(ctx, payload.PackageID)
	if err != nil {
		return response.OrderQueued{}, err
	}

	if pkg.Status != "active" || pkg.ApprovalStatus != "approved" {
		return response.OrderQueued{}, errors.BadRequest("package is not open for booking")
	}

	seats := payload.NumberOfAdults + payload.NumberOfChildren
	stock, err := u.repo.CheckStockPackage(ctx, payload.PackageID)
	if err != nil {
		return response.OrderQueued{}, err
	}
	if stock < int64(seats) {
		return response.OrderQueued{}, errors.Conflict("not enough seats available")
	}

	totalAmount := float64(payload.NumberOfAdults)*pkg.Price + float64(payload.NumberOfChildren)*pkg.ChildPrice

	orderID := uuid.New()
	queuePayload := request.CreateOrderQueue{
		OrderID:        orderID.String(),
		CustomerID:     customerID,
		EmailRecipient: emailUser,
		TotalAmount:    totalAmount,
		CreateOrder:    *payload,
	}

	jsonPayload, err := json.Marshal(queuePayload)
	if err != nil {
		return response.OrderQueued{}, errors.InternalServerError("error marshal order payload")
	}

	if err := u.publish.Publish(TopicBookOrder, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		return response.OrderQueued{}, errors.InternalServerError("error publish order to queue")
	}

	return response.OrderQueued{
		OrderID:     orderID.String(),
		TotalAmount: totalAmount,
	}, nil
}

func (u *usecase) ConsumeOrderQueue(ctx context.Context, payload *request.CreateOrderQueue) error {
	orderID, err := uuid.Parse(payload.OrderID)
	if err != nil {
		return errors.BadRequest("invalid order id in queue payload")
	}

	pkg, err := u.repo.FindPackageForBooking(ctx, payload.PackageID)
	if err != nil {
		return err
	}

	seats := payload.NumberOfAdults + payload.NumberOfChildren

	// re-check and decrement under the stock lock so concurrent
	// bookings cannot oversell the package
	err = u.repo.WithStockLock(ctx, payload.PackageID, func() error {
		stock, err := u.repo.CheckStockPackage(ctx, payload.PackageID)
		if err != nil {
			return err
		}
		if stock < int64(seats) {
			return errors.Conflict("not enough seats available")
		}
		return u.repo.DecrementStockPackage(ctx, payload.PackageID, seats)
	})
	if err != nil {
		return err
	}

	travelers, err := json.Marshal(payload.Travelers)
	if err != nil {
		return errors.InternalServerError("error marshal travelers")
	}

	status := entity.StatusPending
	if payload.DeferPayment {
		status = entity.StatusDraft
	}

	order := entity.Order{
		ID:               orderID,
		OrderNumber:      orderNumber(orderID),
		CustomerID:       payload.CustomerID,
		PackageID:        payload.PackageID,
		CompanyID:        pkg.CompanyID,
		NumberOfAdults:   payload.NumberOfAdults,
		NumberOfChildren: payload.NumberOfChildren,
		Travelers:        travelers,
		SpecialRequests:  nullString(payload.SpecialRequests),
		TotalAmount:      payload.TotalAmount,
		PaymentMethod:    payload.PaymentMethod,
		PaymentStatus:    entity.PaymentStatusPending,
		Status:           status,
		CreatedAt:        time.Now(),
	}

	// every order holds seats from this point, so drafts get the same
	// payment deadline as pending orders; an abandoned draft releases
	// its seats when the task fires
	expiration := request.PaymentExpiration{
		OrderID:   orderID.String(),
		PackageID: payload.PackageID,
		Seats:     seats,
	}
	jsonExpiration, _ := json.Marshal(expiration)

	expiredAt := helpers.DurationCalculation(time.Now().Add(paymentExpiry))
	taskID, err := u.repo.SetTaskScheduler(ctx, expiredAt, jsonExpiration)
	if err != nil {
		u.repo.IncrementStockPackage(ctx, payload.PackageID, seats)
		return err
	}
	order.TaskID = nullString(taskID)

	if err := u.repo.UpsertOrder(ctx, &order); err != nil {
		u.repo.IncrementStockPackage(ctx, payload.PackageID, seats)
		return err
	}

	return nil
}

func (u *usecase) PayOrder(ctx context.Context, payload *request.Payment, customerID int64) error {
	order, err := u.repo.FindOrderByID(ctx, payload.OrderID)
	if err != nil {
		return err
	}

	if order.CustomerID != customerID {
		return errors.ForbiddenError("order belongs to another customer")
	}

	if order.PaymentMethod != entity.PaymentMethodCard {
		return errors.BadRequest("order is not payable by card")
	}

	if order.PaymentStatus == entity.PaymentStatusCompleted {
		return errors.Conflict("order is already paid")
	}

	if order.Status != entity.StatusDraft && order.Status != entity.StatusPending {
		return errors.Conflict("order can no longer be paid")
	}

	gatewayKey, err := u.repo.FindCompanyGatewayKey(ctx, order.CompanyID)
	if err != nil {
		return err
	}

	charge, err := u.repo.ChargeGateway(ctx, gatewayKey, order.ID.String(), payload.PaymentToken, order.TotalAmount)
	if err != nil {
		// the persisted draft/pending order remains available for retry
		return err
	}

	order.PaymentStatus = entity.PaymentStatusCompleted
	order.Status = entity.StatusPending
	order.PaymentIntentID = nullString(charge.IntentID)

	if order.TaskID.Valid {
		u.repo.DeleteTaskScheduler(ctx, order.TaskID.String)
		order.TaskID = sql.NullString{}
	}

	return u.repo.UpsertOrder(ctx, &order)
}

func (u *usecase) UploadReceipt(ctx context.Context, orderID string, customerID int64, path string) error {
	order, err := u.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.CustomerID != customerID {
		return errors.ForbiddenError("order belongs to another customer")
	}

	if order.PaymentMethod == entity.PaymentMethodCard {
		return errors.BadRequest("card orders do not take receipt uploads")
	}

	if order.Status != entity.StatusDraft && order.Status != entity.StatusPending {
		return errors.Conflict("order can no longer take a receipt")
	}

	order.ReceiptPath = nullString(path)
	order.ReceiptVerified = false
	if order.Status == entity.StatusDraft {
		order.Status = entity.StatusPending
	}

	return u.repo.UpsertOrder(ctx, &order)
}

func (u *usecase) VerifyReceipt(ctx context.Context, payload *request.VerifyReceipt, actorID int64, role string) error {
	order, err := u.repo.FindOrderByID(ctx, payload.OrderID)
	if err != nil {
		return err
	}

	if role == middleware.RoleCompany && order.CompanyID != actorID {
		return errors.ForbiddenError("order belongs to another company")
	}

	if !order.ReceiptPath.Valid {
		return errors.BadRequest("order has no uploaded receipt")
	}

	if order.PaymentStatus == entity.PaymentStatusCompleted {
		return errors.Conflict("order payment is already verified")
	}

	order.ReceiptVerified = true
	order.PaymentStatus = entity.PaymentStatusCompleted

	if order.TaskID.Valid {
		u.repo.DeleteTaskScheduler(ctx, order.TaskID.String)
		order.TaskID = sql.NullString{}
	}

	return u.repo.UpsertOrder(ctx, &order)
}

func (u *usecase) CancelOrder(ctx context.Context, payload *request.CancelOrder, customerID int64) error {
	order, err := u.repo.FindOrderByID(ctx, payload.OrderID)
	if err != nil {
		return err
	}

	if order.CustomerID != customerID {
		return errors.ForbiddenError("order belongs to another customer")
	}

	if !entity.CanTransition(order.Status, entity.StatusCancelled) {
		return errors.Conflict(fmt.Sprintf("order cannot be cancelled from status %s", order.Status))
	}

	if order.PaymentStatus == entity.PaymentStatusCompleted {
		if order.PaymentMethod == entity.PaymentMethodCard && order.PaymentIntentID.Valid {
			gatewayKey, err := u.repo.FindCompanyGatewayKey(ctx, order.CompanyID)
			if err != nil {
				return err
			}
			if err := u.repo.RefundGateway(ctx, gatewayKey, order.PaymentIntentID.String); err != nil {
				return err
			}
		}
		order.PaymentStatus = entity.PaymentStatusRefunded
	}

	if order.TaskID.Valid {
		u.repo.DeleteTaskScheduler(ctx, order.TaskID.String)
		order.TaskID = sql.NullString{}
	}

	order.Status = entity.StatusCancelled

	if err := u.repo.UpsertOrder(ctx, &order); err != nil {
		return err
	}

	return u.repo.IncrementStockPackage(ctx, order.PackageID, order.NumberOfAdults+order.NumberOfChildren)
}

func (u *usecase) ConfirmOrder(ctx context.Context, payload *request.ConfirmOrder, companyID int64) error {
	order, err := u.repo.FindOrderByID(ctx, payload.OrderID)
	if err != nil {
		return err
	}

	if order.CompanyID != companyID {
		return errors.ForbiddenError("order belongs to another company")
	}

	if order.PaymentStatus != entity.PaymentStatusCompleted {
		return errors.BadRequest("order payment is not completed")
	}

	if !entity.CanTransition(order.Status, entity.StatusConfirmed) {
		return errors.Conflict(fmt.Sprintf("order cannot be confirmed from status %s", order.Status))
	}

	order.Status = entity.StatusConfirmed
	return u.repo.UpsertOrder(ctx, &order)
}

func (u *usecase) CompleteOrder(ctx context.Context, payload *request.CompleteOrder, companyID int64) error {
	order, err := u.repo.FindOrderByID(ctx, payload.OrderID)
	if err != nil {
		return err
	}

	if order.CompanyID != companyID {
		return errors.ForbiddenError("order belongs to another company")
	}

	if !entity.CanTransition(order.Status, entity.StatusCompleted) {
		return errors.Conflict(fmt.Sprintf("order cannot be completed from status %s", order.Status))
	}

	pkg, err := u.repo.FindPackageForBooking(ctx, order.PackageID)
	if err != nil {
		return err
	}
	if pkg.ReturnDate.After(time.Now()) {
		return errors.BadRequest("trip has not returned yet")
	}

	order.Status = entity.StatusCompleted
	return u.repo.UpsertOrder(ctx, &order)
}

func (u *usecase) ShowCustomerOrders(ctx context.Context, customerID int64) ([]response.OrderDetail, error) {
	orders, err := u.repo.FindOrdersByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toDetails(orders), nil
}

func (u *usecase) ShowCompanyOrders(ctx context.Context, companyID int64) ([]response.OrderDetail, error) {
	orders, err := u.repo.FindOrdersByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toDetails(orders), nil
}

func (u *usecase) GetOrder(ctx context.Context, orderID string, actorID int64, role string) (response.OrderDetail, error) {
	order, err := u.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return response.OrderDetail{}, err
	}

	switch role {
	case middleware.RoleCustomer:
		if order.CustomerID != actorID {
			return response.OrderDetail{}, errors.ForbiddenError("order belongs to another customer")
		}
	case middleware.RoleCompany:
		if order.CompanyID != actorID {
			return response.OrderDetail{}, errors.ForbiddenError("order belongs to another company")
		}
	}

	return toDetail(&order), nil
}

func (u *usecase) AttachDocument(ctx context.Context, payload *request.AttachDocument, customerID int64) (response.DocumentResult, error) {
	order, err := u.repo.FindOrderByID(ctx, payload.OrderID)
	if err != nil {
		return response.DocumentResult{}, err
	}

	if order.CustomerID != customerID {
		return response.DocumentResult{}, errors.ForbiddenError("order belongs to another customer")
	}

	var travelers []request.Traveler
	if err := json.Unmarshal(order.Travelers, &travelers); err != nil {
		return response.DocumentResult{}, errors.InternalServerError("error unmarshal travelers")
	}
	if payload.TravelerIndex >= len(travelers) {
		return response.DocumentResult{}, errors.BadRequest("traveler index out of range")
	}
	traveler := travelers[payload.TravelerIndex]

	// extraction failure is not fatal, the manually entered traveler
	// record backs the document instead
	extraction, extractErr := u.repo.ExtractDocument(ctx, payload.DocumentType, payload.ImagePath)
	extracted := extractErr == nil && extraction.Success
	if extractErr != nil {
		u.log.Warn(ctx, "document extraction failed, falling back to manual entry", extractErr)
	}

	result := response.DocumentResult{
		DocumentType:  payload.DocumentType,
		TravelerIndex: payload.TravelerIndex,
		Extracted:     extracted,
		ImagePath:     payload.ImagePath,
	}

	if payload.DocumentType == "visa" {
		visa := entity.Visa{
			OrderID:       order.ID,
			TravelerIndex: payload.TravelerIndex,
			FullName:      traveler.FullName,
			ImagePath:     nullString(payload.ImagePath),
			Extracted:     extracted,
			CreatedAt:     time.Now(),
		}
		if extracted {
			visa.FullName = extraction.FullName
			visa.VisaNumber = extraction.DocumentNumber
			visa.Nationality = nullString(extraction.Nationality)
			visa.ExpiryDate = nullString(extraction.ExpiryDate)
		}
		if err := u.repo.InsertVisa(ctx, &visa); err != nil {
			return response.DocumentResult{}, err
		}
		result.FullName = visa.FullName
		result.DocumentNumber = visa.VisaNumber
		result.Nationality = visa.Nationality.String
		result.ExpiryDate = visa.ExpiryDate.String
		return result, nil
	}

	passport := entity.Passport{
		OrderID:        order.ID,
		TravelerIndex:  payload.TravelerIndex,
		FullName:       traveler.FullName,
		PassportNumber: traveler.PassportNumber,
		DateOfBirth:    nullString(traveler.DateOfBirth),
		ImagePath:      nullString(payload.ImagePath),
		Extracted:      extracted,
		CreatedAt:      time.Now(),
	}
	if extracted {
		passport.FullName = extraction.FullName
		passport.PassportNumber = extraction.DocumentNumber
		passport.Nationality = nullString(extraction.Nationality)
		passport.DateOfBirth = nullString(extraction.DateOfBirth)
		passport.ExpiryDate = nullString(extraction.ExpiryDate)
	}
	if err := u.repo.InsertPassport(ctx, &passport); err != nil {
		return response.DocumentResult{}, err
	}

	result.FullName = passport.FullName
	result.DocumentNumber = passport.PassportNumber
	result.Nationality = passport.Nationality.String
	result.DateOfBirth = passport.DateOfBirth.String
	result.ExpiryDate = passport.ExpiryDate.String
	return result, nil
}

func (u *usecase) SetPaymentExpired(ctx context.Context, payload *request.PaymentExpiration) error {
	order, err := u.repo.FindOrderByID(ctx, payload.OrderID)
	if err != nil {
		return err
	}

	// payment arrived before the deadline fired
	if order.PaymentStatus == entity.PaymentStatusCompleted {
		return nil
	}

	if order.Status != entity.StatusDraft && order.Status != entity.StatusPending {
		return nil
	}

	order.Status = entity.StatusCancelled
	order.TaskID = sql.NullString{}

	if err := u.repo.UpsertOrder(ctx, &order); err != nil {
		return err
	}

	return u.repo.IncrementStockPackage(ctx, payload.PackageID, payload.Seats)
}

func orderNumber(orderID uuid.UUID) string {
	return fmt.Sprintf("UMR-%s", strings.ToUpper(strings.SplitN(orderID.String(), "-", 2)[0]))
}

func toDetail(order *entity.Order) response.OrderDetail {
	return response.OrderDetail{
		ID:               order.ID.String(),
		OrderNumber:      order.OrderNumber,
		PackageID:        order.PackageID,
		NumberOfAdults:   order.NumberOfAdults,
		NumberOfChildren: order.NumberOfChildren,
		Travelers:        json.RawMessage(order.Travelers),
		SpecialRequests:  order.SpecialRequests.String,
		TotalAmount:      order.TotalAmount,
		PaymentMethod:    order.PaymentMethod,
		PaymentStatus:    order.PaymentStatus,
		Status:           order.Status,
		ReceiptPath:      order.ReceiptPath.String,
		ReceiptVerified:  order.ReceiptVerified,
		CreatedAt:        order.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func toDetails(orders []entity.Order) []response.OrderDetail {
	resp := make([]response.OrderDetail, 0, len(orders))
	for i := range orders {
		resp = append(resp, toDetail(&orders[i]))
	}
	return resp
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
