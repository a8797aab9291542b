package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"umrah-service/internal/module/package/mocks"
	"umrah-service/internal/module/package/models/entity"
	"umrah-service/internal/module/package/models/request"
	"umrah-service/internal/module/package/usecases"
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

func verifiedCompany() entity.Company {
	return entity.Company{
		ID:                    10,
		IsVerified:            true,
		VerificationStatus:    sql.NullString{String: "approved", Valid: true},
		SubscriptionPlan:      sql.NullString{String: "standard", Valid: true},
		PackageLimit:          sql.NullInt64{Int64: 20, Valid: true},
		SubscriptionExpiresAt: sql.NullTime{Time: time.Now().Add(30 * 24 * time.Hour), Valid: true},
	}
}

func createPayload() request.CreatePackage {
	return request.CreatePackage{
		Name:          "Ramadhan Umrah 12 Days",
		Price:         1000,
		ChildPrice:    400,
		TotalSeats:    45,
		DepartureDate: "2026-11-01",
		ReturnDate:    "2026-11-12",
		DurationDays:  12,
	}
}

func TestCreatePackage(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		// mock data
		mockPayload := createPayload()

		// mock repo
		repoMock.On("FindCompanyByID", ctx, int64(10)).Return(verifiedCompany(), nil)
		repoMock.On("CountLivePackagesByCompanyID", ctx, int64(10)).Return(int64(3), nil)
		repoMock.On("InsertPackage", ctx, mock.MatchedBy(func(pkg *entity.Package) bool {
			return pkg.Status == "draft" &&
				pkg.ApprovalStatus == "pending" &&
				pkg.AvailableSeats == 45
		})).Return(int64(1), nil)

		// test
		resp, err := uc.CreatePackage(ctx, &mockPayload, 10)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "pending", resp.ApprovalStatus)
	})

	t.Run("unverified company is forbidden", func(t *testing.T) {
		// mock data
		mockPayload := createPayload()
		mockCompany := verifiedCompany()
		mockCompany.IsVerified = false
		mockCompany.VerificationStatus = sql.NullString{String: "rejected", Valid: true}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindCompanyByID", ctx, int64(10)).Return(mockCompany, nil)

		// test
		_, err := uc.CreatePackage(ctx, &mockPayload, 10)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 403, errors.StatusCode(err))
	})

	t.Run("expired subscription is forbidden", func(t *testing.T) {
		// mock data
		mockPayload := createPayload()
		mockCompany := verifiedCompany()
		mockCompany.SubscriptionExpiresAt = sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindCompanyByID", ctx, int64(10)).Return(mockCompany, nil)

		// test
		_, err := uc.CreatePackage(ctx, &mockPayload, 10)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 403, errors.StatusCode(err))
	})

	t.Run("package limit reached", func(t *testing.T) {
		// mock data
		mockPayload := createPayload()

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindCompanyByID", ctx, int64(10)).Return(verifiedCompany(), nil)
		repoMock.On("CountLivePackagesByCompanyID", ctx, int64(10)).Return(int64(20), nil)

		// test
		_, err := uc.CreatePackage(ctx, &mockPayload, 10)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 403, errors.StatusCode(err))
	})

	t.Run("return date before departure", func(t *testing.T) {
		// mock data
		mockPayload := createPayload()
		mockPayload.ReturnDate = "2026-10-30"

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindCompanyByID", ctx, int64(10)).Return(verifiedCompany(), nil)
		repoMock.On("CountLivePackagesByCompanyID", ctx, int64(10)).Return(int64(3), nil)

		// test
		_, err := uc.CreatePackage(ctx, &mockPayload, 10)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 400, errors.StatusCode(err))
	})
}

func TestUpdatePackage(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("another company cannot update", func(t *testing.T) {
		// mock data
		mockPayload := request.UpdatePackage{
			PackageID: 1,
			Name:      "Renamed",
			Price:     1200,
			Status:    "active",
		}
		mockPackage := entity.Package{ID: 1, CompanyID: 10}

		// mock repo
		repoMock.On("FindPackageByID", ctx, int64(1)).Return(mockPackage, nil)

		// test
		_, err := uc.UpdatePackage(ctx, &mockPayload, 11)

		// assert
		assert.Error(t, err)
		assert.Equal(t, 403, errors.StatusCode(err))
	})
}

func TestGetPackage(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("approved package reports live stock", func(t *testing.T) {
		// mock data
		mockPackage := entity.Package{
			ID:             1,
			CompanyID:      10,
			AvailableSeats: 45,
			ApprovalStatus: "approved",
		}

		// mock repo
		repoMock.On("FindPackageByID", ctx, int64(1)).Return(mockPackage, nil)
		repoMock.On("GetPackageStock", ctx, int64(1)).Return(int64(12), nil)

		// test
		resp, err := uc.GetPackage(ctx, int64(1))

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 12, resp.AvailableSeats)
	})

	t.Run("stock read failure falls back to the stored seats", func(t *testing.T) {
		// mock data
		mockPackage := entity.Package{
			ID:             2,
			CompanyID:      10,
			AvailableSeats: 45,
			ApprovalStatus: "approved",
		}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.On("FindPackageByID", ctx, int64(2)).Return(mockPackage, nil)
		repoMock.On("GetPackageStock", ctx, int64(2)).Return(int64(0), errors.InternalServerError("error get package stock"))

		// test
		resp, err := uc.GetPackage(ctx, int64(2))

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 45, resp.AvailableSeats)
	})

	t.Run("pending package never touches the counter", func(t *testing.T) {
		// mock data
		mockPackage := entity.Package{
			ID:             3,
			CompanyID:      10,
			AvailableSeats: 45,
			ApprovalStatus: "pending",
		}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.Calls = nil
		repoMock.On("FindPackageByID", ctx, int64(3)).Return(mockPackage, nil)

		// test
		resp, err := uc.GetPackage(ctx, int64(3))

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 45, resp.AvailableSeats)
		repoMock.AssertNotCalled(t, "GetPackageStock", ctx, int64(3))
	})
}

func TestReviewPackage(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("approval seeds the seat counter", func(t *testing.T) {
		// mock data
		mockPayload := request.ReviewPackage{PackageID: 1, Approval: "approved"}
		mockPackage := entity.Package{ID: 1, CompanyID: 10, AvailableSeats: 45}

		// mock repo
		repoMock.On("FindPackageByID", ctx, int64(1)).Return(mockPackage, nil)
		repoMock.On("SetApprovalStatus", ctx, int64(1), "approved").Return(nil)
		repoMock.On("SeedPackageStock", ctx, int64(1), 45).Return(nil)

		// test
		err := uc.ReviewPackage(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
	})

	t.Run("rejection does not seed stock", func(t *testing.T) {
		// mock data
		mockPayload := request.ReviewPackage{PackageID: 2, Approval: "rejected"}
		mockPackage := entity.Package{ID: 2, CompanyID: 10, AvailableSeats: 45}

		// mock repo
		repoMock.ExpectedCalls = nil
		repoMock.Calls = nil
		repoMock.On("FindPackageByID", ctx, int64(2)).Return(mockPackage, nil)
		repoMock.On("SetApprovalStatus", ctx, int64(2), "rejected").Return(nil)

		// test
		err := uc.ReviewPackage(ctx, &mockPayload)

		// assert
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "SeedPackageStock", ctx, int64(2), 45)
	})
}
