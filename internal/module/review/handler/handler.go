package handler

import (
	"fmt"
	"strconv"

	"umrah-service/internal/module/review/models/request"
	"umrah-service/internal/module/review/usecases"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ReviewHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *ReviewHandler) CreateReview(ctx *fiber.Ctx) error {
	var req request.CreateReview
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to create review
	err := h.Usecase.CreateReview(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create review: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success create review")
}

func (h *ReviewHandler) ListReviewsByPackage(ctx *fiber.Ctx) error {
	packageID, err := strconv.ParseInt(ctx.Params("package_id"), 10, 64)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse package id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse package id"))
	}

	// call usecase to list reviews by package
	resp, err := h.Usecase.ListReviewsByPackage(ctx.UserContext(), packageID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list reviews: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list reviews")
}
