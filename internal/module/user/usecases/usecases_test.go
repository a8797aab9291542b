package usecases_test

import (
	"context"
	"testing"
	"time"

	"umrah-service/config"
	"umrah-service/internal/module/user/mocks"
	"umrah-service/internal/module/user/models/entity"
	"umrah-service/internal/module/user/models/request"
	"umrah-service/internal/module/user/usecases"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/jwt"
	"umrah-service/internal/pkg/log"
	log_internal "umrah-service/internal/pkg/log"
	"umrah-service/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
)

func setup() {
	repoMock = new(mocks.Repositories)
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	jwtMaker := jwt.NewMaker(&config.JWTConfig{SecretKey: "test-secret", TokenTTL: time.Hour})
	uc = usecases.New(repoMock, logMock, jwtMaker)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestRegister(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("company registration keeps verification pending", func(t *testing.T) {
		// mock data
		mockPayload := request.Register{
			FullName:       "Test Travel",
			Email:          "travel@test.com",
			Password:       "supersecret",
			Phone:          "+62822222222",
			Role:           "company",
			CompanyName:    "Test Travel Co",
			CompanyLicense: "LIC-123",
		}

		// mock repo
		repoMock.On("FindUserByEmail", ctx, "travel@test.com").Return(entity.User{}, errors.NotFound("user not found"))
		repoMock.On("InsertUser", ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == "company" &&
				user.CompanyName.String == "Test Travel Co" &&
				user.VerificationStatus.String == "pending" &&
				!user.IsVerified
		})).Return(int64(10), nil)

		// test
		resp, err := uc.Register(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "pending", resp.VerificationStatus)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		// mock data
		mockPayload := request.Register{
			FullName: "Test Customer",
			Email:    "taken@test.com",
			Password: "supersecret",
			Phone:    "+62811111111",
			Role:     "customer",
		}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.Calls = nil
		repoMock.On("FindUserByEmail", ctx, "taken@test.com").Return(entity.User{ID: 1, Email: "taken@test.com"}, nil)

		// test
		_, err := uc.Register(ctx, &mockPayload)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 409, errors.StatusCode(err))
		repoMock.AssertNotCalled(t, "InsertUser", ctx, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	hashed, _ := password.Hash("supersecret")

	t.Run("success", func(t *testing.T) {
		// mock data
		mockPayload := request.Login{
			Email:    "test@test.com",
			Password: "supersecret",
		}
		mockUser := entity.User{
			ID:           1,
			Email:        "test@test.com",
			PasswordHash: hashed,
			Role:         "customer",
		}

		// mock repo
		repoMock.On("FindUserByEmail", ctx, "test@test.com").Return(mockUser, nil)

		// test
		resp, err := uc.Login(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "customer", resp.Role)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		// mock data
		mockPayload := request.Login{
			Email:    "test@test.com",
			Password: "wrongpassword",
		}
		mockUser := entity.User{
			ID:           1,
			Email:        "test@test.com",
			PasswordHash: hashed,
			Role:         "customer",
		}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindUserByEmail", ctx, "test@test.com").Return(mockUser, nil)

		// test
		_, err := uc.Login(ctx, &mockPayload)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 401, errors.StatusCode(err))
	})
}

func TestUpdateProfile(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("company fields ignored for customers", func(t *testing.T) {
		// mock data
		mockPayload := request.UpdateProfile{
			FullName:    "Renamed Customer",
			Phone:       "+62833333333",
			CompanyName: "Sneaky Co",
		}
		mockUser := entity.User{
			ID:       1,
			FullName: "Test Customer",
			Role:     "customer",
		}

		// mock repo
		repoMock.On("FindUserByID", ctx, int64(1)).Return(mockUser, nil)
		repoMock.On("UpdateUser", ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.FullName == "Renamed Customer" &&
				!user.CompanyName.Valid
		})).Return(nil)

		// test
		resp, err := uc.UpdateProfile(ctx, &mockPayload, 1)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "Renamed Customer", resp.FullName)
		assert.Empty(t, resp.CompanyName)
	})
}
