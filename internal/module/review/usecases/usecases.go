package usecases

import (
	"context"
	"database/sql"
	"time"

	"umrah-service/internal/module/review/models/entity"
	"umrah-service/internal/module/review/models/request"
	"umrah-service/internal/module/review/models/response"
	"umrah-service/internal/module/review/repositories"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	CreateReview(ctx context.Context, payload *request.CreateReview, customerID int64) error
	ListReviewsByPackage(ctx context.Context, packageID int64) ([]response.ReviewItem, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) CreateReview(ctx context.Context, payload *request.CreateReview, customerID int64) error {
	order, err := u.repo.FindOrderForReview(ctx, payload.OrderID)
	if err != nil {
		return err
	}

	if order.CustomerID != customerID {
		return errors.ForbiddenError("order belongs to another customer")
	}

	if order.Status != "completed" {
		return errors.Conflict("only completed orders can be reviewed")
	}

	review := entity.Review{
		OrderID:    order.ID,
		CustomerID: customerID,
		PackageID:  order.PackageID,
		Rating:     payload.Rating,
		Comment:    sql.NullString{String: payload.Comment, Valid: payload.Comment != ""},
		CreatedAt:  time.Now(),
	}

	return u.repo.InsertReview(ctx, &review)
}

func (u *usecase) ListReviewsByPackage(ctx context.Context, packageID int64) ([]response.ReviewItem, error) {
	reviews, err := u.repo.FindReviewsByPackageID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.ReviewItem, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, response.ReviewItem{
			ID:        review.ID,
			OrderID:   review.OrderID.String(),
			PackageID: review.PackageID,
			Rating:    review.Rating,
			Comment:   review.Comment.String,
			CreatedAt: review.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}
