package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"umrah-service/internal/module/admin/mocks"
	"umrah-service/internal/module/admin/models/entity"
	"umrah-service/internal/module/admin/models/request"
	"umrah-service/internal/module/admin/usecases"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"
	log_internal "umrah-service/internal/pkg/log"

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
	uc = usecases.New(repoMock, logMock)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestSetVerification(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("approve sets is_verified and clears rejection reason", func(t *testing.T) {
		// mock data
		mockPayload := request.SetVerification{
			CompanyID: 10,
			Approval:  "approved",
			Notes:     "license checked",
		}
		mockCompany := entity.Company{
			ID:                 10,
			Email:              "travel@test.com",
			VerificationStatus: sql.NullString{String: "rejected", Valid: true},
			RejectionReason:    sql.NullString{String: "blurry license scan", Valid: true},
		}

		// mock repo
		repoMock.On("FindCompanyByID", ctx, int64(10)).Return(mockCompany, nil)
		repoMock.On("UpdateVerification", ctx, mock.MatchedBy(func(company *entity.Company) bool {
			return company.VerificationStatus.String == "approved" &&
				company.IsVerified &&
				company.VerificationNotes.String == "license checked" &&
				!company.RejectionReason.Valid
		})).Return(nil)

		// test
		err := uc.SetVerification(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
	})

	t.Run("reject records reason and clears is_verified", func(t *testing.T) {
		// mock data
		mockPayload := request.SetVerification{
			CompanyID:       10,
			Approval:        "rejected",
			RejectionReason: "license expired",
		}
		mockCompany := entity.Company{
			ID:                 10,
			Email:              "travel@test.com",
			VerificationStatus: sql.NullString{String: "approved", Valid: true},
			IsVerified:         true,
		}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindCompanyByID", ctx, int64(10)).Return(mockCompany, nil)
		repoMock.On("UpdateVerification", ctx, mock.MatchedBy(func(company *entity.Company) bool {
			return company.VerificationStatus.String == "rejected" &&
				!company.IsVerified &&
				company.RejectionReason.String == "license expired"
		})).Return(nil)

		// test
		err := uc.SetVerification(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
	})
}

func TestSubscriptionLifecycle(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("activate records history and snapshot", func(t *testing.T) {
		// mock data
		mockPayload := request.ActivateSubscription{
			CompanyID:    10,
			Plan:         "standard",
			PackageLimit: 20,
			DurationDays: 30,
		}
		mockCompany := entity.Company{ID: 10, Email: "travel@test.com"}

		// mock repo
		repoMock.On("FindCompanyByID", ctx, int64(10)).Return(mockCompany, nil)
		repoMock.On("InsertSubscription", ctx, mock.MatchedBy(func(subscription *entity.Subscription) bool {
			return subscription.Plan == "standard" &&
				subscription.PackageLimit == int64(20) &&
				subscription.Status == entity.SubscriptionActive &&
				subscription.ExpiresAt.Valid
		})).Return(nil)
		repoMock.On("UpdateSubscriptionSnapshot", ctx, mock.MatchedBy(func(company *entity.Company) bool {
			return company.SubscriptionPlan.String == "standard" &&
				company.PackageLimit.Int64 == int64(20) &&
				company.SubscriptionExpiresAt.Valid
		})).Return(nil)

		// test
		err := uc.ActivateSubscription(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
	})

	t.Run("change plan requires an active subscription", func(t *testing.T) {
		// mock data
		mockPayload := request.ChangePlan{
			CompanyID:    11,
			Plan:         "premium",
			PackageLimit: 100,
		}
		mockCompany := entity.Company{
			ID:                    11,
			SubscriptionPlan:      sql.NullString{String: "standard", Valid: true},
			PackageLimit:          sql.NullInt64{Int64: 20, Valid: true},
			SubscriptionExpiresAt: sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true},
		}

		// mock repo
		repoMock.On("FindCompanyByID", ctx, int64(11)).Return(mockCompany, nil)

		// test
		err := uc.ChangePlan(ctx, &mockPayload)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 400, errors.StatusCode(err))
	})

	t.Run("extend pushes the expiry forward", func(t *testing.T) {
		// mock data
		expiresAt := time.Now().Add(72 * time.Hour).Round(time.Second)
		mockPayload := request.ExtendSubscription{
			CompanyID: 12,
			Days:      10,
		}
		mockCompany := entity.Company{
			ID:                    12,
			SubscriptionPlan:      sql.NullString{String: "standard", Valid: true},
			PackageLimit:          sql.NullInt64{Int64: 20, Valid: true},
			SubscriptionExpiresAt: sql.NullTime{Time: expiresAt, Valid: true},
		}
		wantExpiry := expiresAt.Add(10 * 24 * time.Hour)

		// mock repo
		repoMock.On("FindCompanyByID", ctx, int64(12)).Return(mockCompany, nil)
		repoMock.On("InsertSubscription", ctx, mock.MatchedBy(func(subscription *entity.Subscription) bool {
			return subscription.ExpiresAt.Time.Equal(wantExpiry)
		})).Return(nil)
		repoMock.On("UpdateSubscriptionSnapshot", ctx, mock.MatchedBy(func(company *entity.Company) bool {
			return company.SubscriptionExpiresAt.Time.Equal(wantExpiry)
		})).Return(nil)

		// test
		err := uc.ExtendSubscription(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
	})

	t.Run("cancel clears the snapshot", func(t *testing.T) {
		// mock data
		mockPayload := request.CancelSubscription{CompanyID: 13}
		mockCompany := entity.Company{
			ID:                    13,
			SubscriptionPlan:      sql.NullString{String: "standard", Valid: true},
			PackageLimit:          sql.NullInt64{Int64: 20, Valid: true},
			SubscriptionExpiresAt: sql.NullTime{Time: time.Now().Add(time.Hour), Valid: true},
		}

		// mock repo
		repoMock.On("FindCompanyByID", ctx, int64(13)).Return(mockCompany, nil)
		repoMock.On("InsertSubscription", ctx, mock.MatchedBy(func(subscription *entity.Subscription) bool {
			return subscription.Status == entity.SubscriptionCancelled
		})).Return(nil)
		repoMock.On("UpdateSubscriptionSnapshot", ctx, mock.MatchedBy(func(company *entity.Company) bool {
			return !company.SubscriptionPlan.Valid && !company.SubscriptionExpiresAt.Valid
		})).Return(nil)

		// test
		err := uc.CancelSubscription(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
	})
}

func TestListCompanies(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("expired subscription reads as inactive", func(t *testing.T) {
		// mock data
		mockCompanies := []entity.Company{
			{
				ID:                    10,
				Email:                 "travel@test.com",
				SubscriptionPlan:      sql.NullString{String: "standard", Valid: true},
				PackageLimit:          sql.NullInt64{Int64: 20, Valid: true},
				SubscriptionExpiresAt: sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true},
			},
		}

		// mock repo
		repoMock.On("FindCompanies", ctx).Return(mockCompanies, nil)

		// test
		resp, err := uc.ListCompanies(ctx)

		// assert
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.False(t, resp[0].SubscriptionActive)
	})
}

func TestSweepExpiredSubscriptions(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		// mock repo
		repoMock.On("ExpireSubscriptions", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil)

		// test
		err := uc.SweepExpiredSubscriptions(ctx)

		// assert
		assert.NoError(t, err)
	})
}
