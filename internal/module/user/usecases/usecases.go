package usecases

import (
	"context"
	"database/sql"
	"time"

	"umrah-service/internal/module/user/models/entity"
	"umrah-service/internal/module/user/models/request"
	"umrah-service/internal/module/user/models/response"
	"umrah-service/internal/module/user/repositories"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/jwt"
	"umrah-service/internal/pkg/log"
	"umrah-service/internal/pkg/middleware"
	"umrah-service/internal/pkg/password"
)

type usecase struct {
	repo     repositories.Repositories
	log      log.Logger
	jwtMaker jwt.Maker
}

type Usecase interface {
	Register(ctx context.Context, payload *request.Register) (response.Profile, error)
	Login(ctx context.Context, payload *request.Login) (response.Login, error)
	GetProfile(ctx context.Context, userID int64) (response.Profile, error)
	UpdateProfile(ctx context.Context, payload *request.UpdateProfile, userID int64) (response.Profile, error)
	SetProfilePicture(ctx context.Context, userID int64, path string) error
}

func New(repo repositories.Repositories, log log.Logger, jwtMaker jwt.Maker) Usecase {
	return &usecase{
		repo:     repo,
		log:      log,
		jwtMaker: jwtMaker,
	}
}

func (u *usecase) Register(ctx context.Context, payload *request.Register) (response.Profile, error) {
	// email must be unique among live users
	if _, err := u.repo.FindUserByEmail(ctx, payload.Email); err == nil {
		return response.Profile{}, errors.Conflict("email already registered")
	}

	hashed, err := password.Hash(payload.Password)
	if err != nil {
		return response.Profile{}, err
	}

	user := entity.User{
		FullName:     payload.FullName,
		Email:        payload.Email,
		PasswordHash: hashed,
		Phone:        payload.Phone,
		Role:         payload.Role,
		CreatedAt:    time.Now(),
	}

	if payload.Role == middleware.RoleCompany {
		user.CompanyName = nullString(payload.CompanyName)
		user.CompanyLicense = nullString(payload.CompanyLicense)
		user.CompanyAddress = nullString(payload.CompanyAddress)
		user.BankName = nullString(payload.BankName)
		user.BankAccount = nullString(payload.BankAccount)
		user.VerificationStatus = nullString("pending")
	}

	id, err := u.repo.InsertUser(ctx, &user)
	if err != nil {
		return response.Profile{}, err
	}
	user.ID = id

	return toProfile(&user), nil
}

func (u *usecase) Login(ctx context.Context, payload *request.Login) (response.Login, error) {
	user, err := u.repo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return response.Login{}, errors.UnauthorizedError("invalid email or password")
	}

	if err := password.Compare(user.PasswordHash, payload.Password); err != nil {
		return response.Login{}, err
	}

	token, err := u.jwtMaker.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return response.Login{}, errors.InternalServerError("error generate token")
	}

	return response.Login{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (u *usecase) GetProfile(ctx context.Context, userID int64) (response.Profile, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.Profile{}, err
	}
	return toProfile(&user), nil
}

func (u *usecase) UpdateProfile(ctx context.Context, payload *request.UpdateProfile, userID int64) (response.Profile, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.Profile{}, err
	}

	user.FullName = payload.FullName
	user.Phone = payload.Phone

	// role itself is immutable, company fields only apply to companies
	if user.Role == middleware.RoleCompany {
		if payload.CompanyName != "" {
			user.CompanyName = nullString(payload.CompanyName)
		}
		if payload.CompanyAddress != "" {
			user.CompanyAddress = nullString(payload.CompanyAddress)
		}
		if payload.BankName != "" {
			user.BankName = nullString(payload.BankName)
		}
		if payload.BankAccount != "" {
			user.BankAccount = nullString(payload.BankAccount)
		}
		if payload.PaymentGatewayKey != "" {
			user.PaymentGatewayKey = nullString(payload.PaymentGatewayKey)
		}
	}

	if err := u.repo.UpdateUser(ctx, &user); err != nil {
		return response.Profile{}, err
	}

	return toProfile(&user), nil
}

func (u *usecase) SetProfilePicture(ctx context.Context, userID int64, path string) error {
	if _, err := u.repo.FindUserByID(ctx, userID); err != nil {
		return err
	}
	return u.repo.UpdateProfilePicture(ctx, userID, path)
}

func toProfile(user *entity.User) response.Profile {
	return response.Profile{
		ID:                 user.ID,
		FullName:           user.FullName,
		Email:              user.Email,
		Phone:              user.Phone,
		Role:               user.Role,
		ProfilePicture:     user.ProfilePicture.String,
		CompanyName:        user.CompanyName.String,
		CompanyLicense:     user.CompanyLicense.String,
		CompanyAddress:     user.CompanyAddress.String,
		BankName:           user.BankName.String,
		BankAccount:        user.BankAccount.String,
		VerificationStatus: user.VerificationStatus.String,
		IsVerified:         user.IsVerified,
		SubscriptionPlan:   user.SubscriptionPlan.String,
		PackageLimit:       user.PackageLimit.Int64,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
