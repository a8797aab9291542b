package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"umrah-service/internal/module/admin/models/entity"
	"umrah-service/internal/module/admin/models/request"
	"umrah-service/internal/module/admin/models/response"
	"umrah-service/internal/module/admin/repositories"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	ListCompanies(ctx context.Context) ([]response.CompanyOverview, error)
	SetVerification(ctx context.Context, payload *request.SetVerification) error
	ActivateSubscription(ctx context.Context, payload *request.ActivateSubscription) error
	ChangePlan(ctx context.Context, payload *request.ChangePlan) error
	CancelSubscription(ctx context.Context, payload *request.CancelSubscription) error
	ExtendSubscription(ctx context.Context, payload *request.ExtendSubscription) error
	ListSubscriptions(ctx context.Context, companyID int64) ([]response.SubscriptionHistory, error)
	SweepExpiredSubscriptions(ctx context.Context) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) ListCompanies(ctx context.Context) ([]response.CompanyOverview, error) {
	companies, err := u.repo.FindCompanies(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.CompanyOverview, 0, len(companies))
	for i := range companies {
		resp = append(resp, toOverview(&companies[i]))
	}
	return resp, nil
}

func (u *usecase) SetVerification(ctx context.Context, payload *request.SetVerification) error {
	company, err := u.repo.FindCompanyByID(ctx, payload.CompanyID)
	if err != nil {
		return err
	}

	switch payload.Approval {
	case "approved":
		company.VerificationStatus = nullString("approved")
		company.IsVerified = true
		company.VerificationNotes = nullString(payload.Notes)
		company.RejectionReason = sql.NullString{}
	case "rejected":
		company.VerificationStatus = nullString("rejected")
		company.IsVerified = false
		company.VerificationNotes = nullString(payload.Notes)
		company.RejectionReason = nullString(payload.RejectionReason)
	}

	return u.repo.UpdateVerification(ctx, &company)
}

func (u *usecase) ActivateSubscription(ctx context.Context, payload *request.ActivateSubscription) error {
	company, err := u.repo.FindCompanyByID(ctx, payload.CompanyID)
	if err != nil {
		return err
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(payload.DurationDays) * 24 * time.Hour)

	subscription := entity.Subscription{
		CompanyID:    company.ID,
		Plan:         payload.Plan,
		PackageLimit: payload.PackageLimit,
		Status:       entity.SubscriptionActive,
		StartedAt:    now,
		ExpiresAt:    sql.NullTime{Time: expiresAt, Valid: true},
		CreatedAt:    now,
	}
	if err := u.repo.InsertSubscription(ctx, &subscription); err != nil {
		return err
	}

	company.SubscriptionPlan = nullString(payload.Plan)
	company.PackageLimit = sql.NullInt64{Int64: payload.PackageLimit, Valid: true}
	company.SubscriptionExpiresAt = sql.NullTime{Time: expiresAt, Valid: true}
	return u.repo.UpdateSubscriptionSnapshot(ctx, &company)
}

func (u *usecase) ChangePlan(ctx context.Context, payload *request.ChangePlan) error {
	company, err := u.repo.FindCompanyByID(ctx, payload.CompanyID)
	if err != nil {
		return err
	}

	if !subscriptionActive(&company) {
		return errors.BadRequest("company has no active subscription to change")
	}

	now := time.Now()
	subscription := entity.Subscription{
		CompanyID:    company.ID,
		Plan:         payload.Plan,
		PackageLimit: payload.PackageLimit,
		Status:       entity.SubscriptionActive,
		StartedAt:    now,
		ExpiresAt:    company.SubscriptionExpiresAt,
		CreatedAt:    now,
	}
	if err := u.repo.InsertSubscription(ctx, &subscription); err != nil {
		return err
	}

	company.SubscriptionPlan = nullString(payload.Plan)
	company.PackageLimit = sql.NullInt64{Int64: payload.PackageLimit, Valid: true}
	return u.repo.UpdateSubscriptionSnapshot(ctx, &company)
}

func (u *usecase) CancelSubscription(ctx context.Context, payload *request.CancelSubscription) error {
	company, err := u.repo.FindCompanyByID(ctx, payload.CompanyID)
	if err != nil {
		return err
	}

	if !company.SubscriptionPlan.Valid {
		return errors.BadRequest("company has no subscription to cancel")
	}

	now := time.Now()
	subscription := entity.Subscription{
		CompanyID:    company.ID,
		Plan:         company.SubscriptionPlan.String,
		PackageLimit: company.PackageLimit.Int64,
		Status:       entity.SubscriptionCancelled,
		StartedAt:    now,
		ExpiresAt:    company.SubscriptionExpiresAt,
		CreatedAt:    now,
	}
	if err := u.repo.InsertSubscription(ctx, &subscription); err != nil {
		return err
	}

	company.SubscriptionPlan = sql.NullString{}
	company.PackageLimit = sql.NullInt64{}
	company.SubscriptionExpiresAt = sql.NullTime{}
	return u.repo.UpdateSubscriptionSnapshot(ctx, &company)
}

func (u *usecase) ExtendSubscription(ctx context.Context, payload *request.ExtendSubscription) error {
	company, err := u.repo.FindCompanyByID(ctx, payload.CompanyID)
	if err != nil {
		return err
	}

	if !company.SubscriptionPlan.Valid || !company.SubscriptionExpiresAt.Valid {
		return errors.BadRequest("company has no subscription to extend")
	}

	now := time.Now()
	newExpiry := company.SubscriptionExpiresAt.Time.Add(time.Duration(payload.Days) * 24 * time.Hour)

	subscription := entity.Subscription{
		CompanyID:    company.ID,
		Plan:         company.SubscriptionPlan.String,
		PackageLimit: company.PackageLimit.Int64,
		Status:       entity.SubscriptionActive,
		StartedAt:    now,
		ExpiresAt:    sql.NullTime{Time: newExpiry, Valid: true},
		CreatedAt:    now,
	}
	if err := u.repo.InsertSubscription(ctx, &subscription); err != nil {
		return err
	}

	company.SubscriptionExpiresAt = sql.NullTime{Time: newExpiry, Valid: true}
	return u.repo.UpdateSubscriptionSnapshot(ctx, &company)
}

func (u *usecase) ListSubscriptions(ctx context.Context, companyID int64) ([]response.SubscriptionHistory, error) {
	if _, err := u.repo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, err
	}

	subscriptions, err := u.repo.FindSubscriptionsByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.SubscriptionHistory, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		item := response.SubscriptionHistory{
			ID:           subscription.ID,
			Plan:         subscription.Plan,
			PackageLimit: subscription.PackageLimit,
			Status:       subscription.Status,
			StartedAt:    subscription.StartedAt.Format("2006-01-02 15:04:05"),
		}
		if subscription.ExpiresAt.Valid {
			item.ExpiresAt = subscription.ExpiresAt.Time.Format("2006-01-02 15:04:05")
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (u *usecase) SweepExpiredSubscriptions(ctx context.Context) error {
	expired, err := u.repo.ExpireSubscriptions(ctx, time.Now())
	if err != nil {
		return err
	}
	u.log.Info(ctx, fmt.Sprintf("expired %d subscriptions", expired))
	return nil
}

// subscriptionActive evaluates expiry at read time, an expired snapshot
// counts as inactive even before the sweep runs.
func subscriptionActive(company *entity.Company) bool {
	return company.SubscriptionPlan.Valid &&
		company.PackageLimit.Valid &&
		company.SubscriptionExpiresAt.Valid &&
		company.SubscriptionExpiresAt.Time.After(time.Now())
}

func toOverview(company *entity.Company) response.CompanyOverview {
	overview := response.CompanyOverview{
		ID:                 company.ID,
		Email:              company.Email,
		FullName:           company.FullName,
		CompanyName:        company.CompanyName.String,
		CompanyLicense:     company.CompanyLicense.String,
		VerificationStatus: company.VerificationStatus.String,
		IsVerified:         company.IsVerified,
		VerificationNotes:  company.VerificationNotes.String,
		RejectionReason:    company.RejectionReason.String,
		SubscriptionPlan:   company.SubscriptionPlan.String,
		PackageLimit:       company.PackageLimit.Int64,
		SubscriptionActive: subscriptionActive(company),
	}
	if company.SubscriptionExpiresAt.Valid {
		overview.SubscriptionExpiresAt = company.SubscriptionExpiresAt.Time.Format("2006-01-02 15:04:05")
	}
	return overview
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
