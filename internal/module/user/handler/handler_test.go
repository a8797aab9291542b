package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"umrah-service/internal/module/user/handler"
	"umrah-service/internal/module/user/mocks"
	"umrah-service/internal/module/user/models/request"
	"umrah-service/internal/module/user/models/response"
	log_internal "umrah-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.UserHandler
	ucm           *mocks.Usecase
	logMock       *otelzap.Logger
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup(uploadDir string) {
	ucm = &mocks.Usecase{}
	logMock := log_internal.Setup()
	validatorTest = validator.New()
	h = &handler.UserHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
		UploadDir: uploadDir,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	logMock = nil
	validatorTest = nil
	h = nil
	app = nil
}

func TestRegister(t *testing.T) {
	setup(t.TempDir())
	defer teardown()

	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.Register{
			FullName: "Test Customer",
			Email:    "test@test.com",
			Password: "supersecret",
			Phone:    "+62811111111",
			Role:     "customer",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/register")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		// mock usecase
		ucm.On("Register", ctx.Context(), &payload).Return(response.Profile{Email: payload.Email}, nil)

		// test
		err := h.Register(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("company without license fails validation", func(t *testing.T) {
		// mock data
		payload := request.Register{
			FullName: "Test Travel",
			Email:    "travel@test.com",
			Password: "supersecret",
			Phone:    "+62822222222",
			Role:     "company",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/register")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		// test
		err := h.Register(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "Register", ctx.Context(), &payload)
	})
}

func TestLogin(t *testing.T) {
	setup(t.TempDir())
	defer teardown()

	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.Login{
			Email:    "test@test.com",
			Password: "supersecret",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/login")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		// mock usecase
		ucm.On("Login", ctx.Context(), &payload).Return(response.Login{Token: "token", Role: "customer"}, nil)

		// test
		err := h.Login(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestUploadProfilePicture(t *testing.T) {
	setup(t.TempDir())
	defer teardown()

	t.Run("non-image upload is rejected", func(t *testing.T) {
		// mock data
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("profile_picture", "notes.txt")
		part.Write([]byte("definitely not an image"))
		writer.Close()

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/profile/picture")
		ctx.Request().Header.SetContentType(writer.FormDataContentType())
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(body.Bytes())
		ctx.Locals("user_id", int64(1))

		// test
		err := h.UploadProfilePicture(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "SetProfilePicture", ctx.Context(), int64(1), mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		// mock data
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="profile_picture"; filename="avatar.png"`)
		header.Set("Content-Type", "image/png")
		part, _ := writer.CreatePart(header)
		part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
		writer.Close()

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/profile/picture")
		ctx.Request().Header.SetContentType(writer.FormDataContentType())
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(body.Bytes())
		ctx.Locals("user_id", int64(1))

		// mock usecase
		ucm.On("SetProfilePicture", ctx.Context(), int64(1), mock.AnythingOfType("string")).Return(nil)

		// test
		err := h.UploadProfilePicture(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}
