package handler

import (
	"context"
	"fmt"
	"strconv"

	"umrah-service/internal/module/order/models/request"
	"umrah-service/internal/module/order/usecases"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type OrderHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
	UploadDir string
}

func (h *OrderHandler) CreateOrder(ctx *fiber.Ctx) error {
	var req request.CreateOrder
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)
	emailUser := ctx.Locals("email_user").(string)

	// call usecase to create order
	resp, err := h.Usecase.CreateOrder(ctx.UserContext(), &req, userID, emailUser)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create order, payment is awaiting")
}

func (h *OrderHandler) ConsumeOrderQueue(msg *message.Message) error {
	msg.Ack() // acknowledge message
	var req request.CreateOrderQueue
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))

		// publish to poison queue
		reqPoisoned := request.PoisonedQueue{
			TopicTarget: usecases.TopicBookOrder,
			ErrorMsg:    err.Error(),
			Payload:     msg.Payload,
		}

		jsonPayload, _ := json.Marshal(reqPoisoned)

		err = h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload))
		if err != nil {
			h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
		}

		return err
	}

	ctx := context.Background()

	// call usecase to consume order queue
	err := h.Usecase.ConsumeOrderQueue(ctx, &req)
	if err != nil {
		// publish to poison queue
		reqPoisoned := request.PoisonedQueue{
			TopicTarget: usecases.TopicBookOrder,
			ErrorMsg:    err.Error(),
			Payload:     msg.Payload,
		}

		jsonPayload, _ := json.Marshal(reqPoisoned)
		err = h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload))
		if err != nil {
			h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
		}

		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume order queue: %v", err))

		return err
	}

	return nil
}

func (h *OrderHandler) Payment(ctx *fiber.Ctx) error {
	var req request.Payment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to pay order
	err := h.Usecase.PayOrder(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success payment")
}

func (h *OrderHandler) UploadReceipt(ctx *fiber.Ctx) error {
	orderID := ctx.FormValue("order_id")
	if orderID == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("order_id is required"))
	}

	file, err := ctx.FormFile("receipt")
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse receipt file: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("receipt file is required"))
	}

	if !helpers.IsImageContentType(file) {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("receipt must be a jpeg, png or webp image"))
	}

	path, err := helpers.SaveUpload(ctx, file, h.UploadDir, "receipts")
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error save receipt: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to upload receipt
	if err := h.Usecase.UploadReceipt(ctx.UserContext(), orderID, userID, path); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error upload receipt: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success upload receipt, waiting for verification")
}

func (h *OrderHandler) VerifyReceipt(ctx *fiber.Ctx) error {
	var req request.VerifyReceipt
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)
	role := ctx.Locals("role").(string)

	// call usecase to verify receipt
	err := h.Usecase.VerifyReceipt(ctx.UserContext(), &req, userID, role)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error verify receipt: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success verify receipt")
}

func (h *OrderHandler) CancelOrder(ctx *fiber.Ctx) error {
	var req request.CancelOrder
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to cancel order
	err := h.Usecase.CancelOrder(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success cancel order")
}

func (h *OrderHandler) ConfirmOrder(ctx *fiber.Ctx) error {
	var req request.ConfirmOrder
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to confirm order
	err := h.Usecase.ConfirmOrder(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error confirm order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success confirm order")
}

func (h *OrderHandler) CompleteOrder(ctx *fiber.Ctx) error {
	var req request.CompleteOrder
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to complete order
	err := h.Usecase.CompleteOrder(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error complete order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success complete order")
}

func (h *OrderHandler) ShowMyOrders(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	// call usecase to show customer orders
	resp, err := h.Usecase.ShowCustomerOrders(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show orders: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show orders")
}

func (h *OrderHandler) ShowCompanyOrders(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	// call usecase to show company orders
	resp, err := h.Usecase.ShowCompanyOrders(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show company orders: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show company orders")
}

func (h *OrderHandler) GetOrder(ctx *fiber.Ctx) error {
	orderID := ctx.Params("id")
	if orderID == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("order id is required"))
	}

	userID := ctx.Locals("user_id").(int64)
	role := ctx.Locals("role").(string)

	// call usecase to get order
	resp, err := h.Usecase.GetOrder(ctx.UserContext(), orderID, userID, role)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get order")
}

func (h *OrderHandler) AttachDocument(ctx *fiber.Ctx) error {
	req := request.AttachDocument{
		OrderID:      ctx.FormValue("order_id"),
		DocumentType: ctx.FormValue("document_type"),
	}

	travelerIndex, err := strconv.Atoi(ctx.FormValue("traveler_index", "0"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse traveler index"))
	}
	req.TravelerIndex = travelerIndex

	file, err := ctx.FormFile("document")
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse document file: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("document file is required"))
	}

	if !helpers.IsImageContentType(file) {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("document must be a jpeg, png or webp image"))
	}

	path, err := helpers.SaveUpload(ctx, file, h.UploadDir, "documents")
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error save document: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}
	req.ImagePath = path

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to attach document
	resp, err := h.Usecase.AttachDocument(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error attach document: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success attach document")
}

func (h *OrderHandler) SetPaymentExpired(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	// call usecase to set payment expired
	err := h.Usecase.SetPaymentExpired(ctx, &req)
	if err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error set payment expired: %v", err))
		return err
	}

	return nil
}
