package handler

import (
	"context"
	"fmt"
	"strconv"

	"umrah-service/internal/module/admin/models/request"
	"umrah-service/internal/module/admin/usecases"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type AdminHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *AdminHandler) ListCompanies(ctx *fiber.Ctx) error {
	// call usecase to list companies
	resp, err := h.Usecase.ListCompanies(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list companies: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list companies")
}

func (h *AdminHandler) SetVerification(ctx *fiber.Ctx) error {
	var req request.SetVerification
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	// call usecase to set verification
	err := h.Usecase.SetVerification(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error set verification: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success set verification")
}

func (h *AdminHandler) ActivateSubscription(ctx *fiber.Ctx) error {
	var req request.ActivateSubscription
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	// call usecase to activate subscription
	err := h.Usecase.ActivateSubscription(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error activate subscription: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success activate subscription")
}

func (h *AdminHandler) ChangePlan(ctx *fiber.Ctx) error {
	var req request.ChangePlan
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	// call usecase to change plan
	err := h.Usecase.ChangePlan(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error change plan: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success change plan")
}

func (h *AdminHandler) CancelSubscription(ctx *fiber.Ctx) error {
	var req request.CancelSubscription
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	// call usecase to cancel subscription
	err := h.Usecase.CancelSubscription(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel subscription: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success cancel subscription")
}

func (h *AdminHandler) ExtendSubscription(ctx *fiber.Ctx) error {
	var req request.ExtendSubscription
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	// call usecase to extend subscription
	err := h.Usecase.ExtendSubscription(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error extend subscription: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success extend subscription")
}

func (h *AdminHandler) ListSubscriptions(ctx *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse company id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse company id"))
	}

	// call usecase to list subscriptions
	resp, err := h.Usecase.ListSubscriptions(ctx.UserContext(), companyID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list subscriptions: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list subscriptions")
}

func (h *AdminHandler) SweepExpiredSubscriptions(ctx context.Context, t *asynq.Task) error {
	// call usecase to sweep expired subscriptions
	err := h.Usecase.SweepExpiredSubscriptions(ctx)
	if err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error sweep expired subscriptions: %v", err))
		return err
	}

	return nil
}
