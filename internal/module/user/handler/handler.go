package handler

import (
	"fmt"

	"umrah-service/internal/module/user/models/request"
	"umrah-service/internal/module/user/usecases"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type UserHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	UploadDir string
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var req request.Register
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.Register(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error register: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success register")
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.Login(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error login: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success login")
}

func (h *UserHandler) GetProfile(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.GetProfile(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get profile: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get profile")
}

func (h *UserHandler) UpdateProfile(ctx *fiber.Ctx) error {
	var req request.UpdateProfile
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.UpdateProfile(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update profile: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update profile")
}

func (h *UserHandler) UploadProfilePicture(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("profile_picture")
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get uploaded file: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error get uploaded file"))
	}

	if !helpers.IsImageContentType(file) {
		h.Log.Ctx(ctx.UserContext()).Error("error validate uploaded file: not an image")
		return helpers.RespError(ctx, h.Log, errors.BadRequest("profile picture must be an image"))
	}

	path, err := helpers.SaveUpload(ctx, file, h.UploadDir, "profile-pictures")
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error save uploaded file: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	userID := ctx.Locals("user_id").(int64)

	if err := h.Usecase.SetProfilePicture(ctx.UserContext(), userID, path); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error set profile picture: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	resp := map[string]interface{}{
		"profile_picture": path,
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success upload profile picture")
}
