package usecases

import (
	"context"
	"time"

	"umrah-service/internal/module/package/models/entity"
	"umrah-service/internal/module/package/models/request"
	"umrah-service/internal/module/package/models/response"
	"umrah-service/internal/module/package/repositories"
	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/log"

	"github.com/goccy/go-json"
)

const dateLayout = "2006-01-02"

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	CreatePackage(ctx context.Context, payload *request.CreatePackage, companyID int64) (response.PackageDetail, error)
	UpdatePackage(ctx context.Context, payload *request.UpdatePackage, companyID int64) (response.PackageDetail, error)
	ListCompanyPackages(ctx context.Context, companyID int64) ([]response.PackageDetail, error)
	ListPublicPackages(ctx context.Context, filter *request.ListPackages) ([]response.PackageDetail, error)
	GetPackage(ctx context.Context, packageID int64) (response.PackageDetail, error)
	ReviewPackage(ctx context.Context, payload *request.ReviewPackage) error
	CreateTemplate(ctx context.Context, payload *request.CreateTemplate, companyID int64) (response.Template, error)
	ListTemplates(ctx context.Context, companyID int64) ([]response.Template, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) CreatePackage(ctx context.Context, payload *request.CreatePackage, companyID int64) (response.PackageDetail, error) {
	company, err := u.repo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return response.PackageDetail{}, err
	}

	if !company.IsVerified || company.VerificationStatus.String != "approved" {
		return response.PackageDetail{}, errors.ForbiddenError("company is not verified")
	}

	if !subscriptionActive(&company) {
		return response.PackageDetail{}, errors.ForbiddenError("company has no active subscription")
	}

	count, err := u.repo.CountLivePackagesByCompanyID(ctx, companyID)
	if err != nil {
		return response.PackageDetail{}, err
	}
	if count >= company.PackageLimit.Int64 {
		return response.PackageDetail{}, errors.ForbiddenError("package limit reached for subscription plan")
	}

	departure, err := time.Parse(dateLayout, payload.DepartureDate)
	if err != nil {
		return response.PackageDetail{}, errors.BadRequest("invalid departure date")
	}
	returnDate, err := time.Parse(dateLayout, payload.ReturnDate)
	if err != nil {
		return response.PackageDetail{}, errors.BadRequest("invalid return date")
	}
	if !returnDate.After(departure) {
		return response.PackageDetail{}, errors.BadRequest("return date must be after departure date")
	}

	pkg := entity.Package{
		CompanyID:      companyID,
		Name:           payload.Name,
		Description:    payload.Description,
		Price:          payload.Price,
		ChildPrice:     payload.ChildPrice,
		TotalSeats:     payload.TotalSeats,
		AvailableSeats: payload.TotalSeats,
		DepartureDate:  departure,
		ReturnDate:     returnDate,
		DurationDays:   payload.DurationDays,
		MakkahHotel:    []byte(payload.MakkahHotel),
		MadinahHotel:   []byte(payload.MadinahHotel),
		Itinerary:      []byte(payload.Itinerary),
		Status:         "draft",
		ApprovalStatus: "pending",
		CreatedAt:      time.Now(),
	}

	id, err := u.repo.InsertPackage(ctx, &pkg)
	if err != nil {
		return response.PackageDetail{}, err
	}
	pkg.ID = id

	return toDetail(&pkg), nil
}

func (u *usecase) UpdatePackage(ctx context.Context, payload *request.UpdatePackage, companyID int64) (response.PackageDetail, error) {
	pkg, err := u.repo.FindPackageByID(ctx, payload.PackageID)
	if err != nil {
		return response.PackageDetail{}, err
	}

	if pkg.CompanyID != companyID {
		return response.PackageDetail{}, errors.ForbiddenError("package belongs to another company")
	}

	pkg.Name = payload.Name
	pkg.Description = payload.Description
	pkg.Price = payload.Price
	pkg.ChildPrice = payload.ChildPrice
	pkg.Status = payload.Status
	if len(payload.MakkahHotel) > 0 {
		pkg.MakkahHotel = []byte(payload.MakkahHotel)
	}
	if len(payload.MadinahHotel) > 0 {
		pkg.MadinahHotel = []byte(payload.MadinahHotel)
	}
	if len(payload.Itinerary) > 0 {
		pkg.Itinerary = []byte(payload.Itinerary)
	}

	if err := u.repo.UpdatePackage(ctx, &pkg); err != nil {
		return response.PackageDetail{}, err
	}

	return toDetail(&pkg), nil
}

func (u *usecase) ListCompanyPackages(ctx context.Context, companyID int64) ([]response.PackageDetail, error) {
	packages, err := u.repo.FindPackagesByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toDetails(packages), nil
}

func (u *usecase) ListPublicPackages(ctx context.Context, filter *request.ListPackages) ([]response.PackageDetail, error) {
	packages, err := u.repo.FindActivePackages(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toDetails(packages), nil
}

func (u *usecase) GetPackage(ctx context.Context, packageID int64) (response.PackageDetail, error) {
	pkg, err := u.repo.FindPackageByID(ctx, packageID)
	if err != nil {
		return response.PackageDetail{}, err
	}

	detail := toDetail(&pkg)

	// once booking has opened the redis counter is the live seat count,
	// the row only holds the seeded value
	if pkg.ApprovalStatus == "approved" {
		stock, err := u.repo.GetPackageStock(ctx, packageID)
		if err != nil {
			u.log.Warn(ctx, "error read live package stock", packageID, err)
		} else {
			detail.AvailableSeats = int(stock)
		}
	}

	return detail, nil
}

func (u *usecase) ReviewPackage(ctx context.Context, payload *request.ReviewPackage) error {
	pkg, err := u.repo.FindPackageByID(ctx, payload.PackageID)
	if err != nil {
		return err
	}

	if err := u.repo.SetApprovalStatus(ctx, pkg.ID, payload.Approval); err != nil {
		return err
	}

	// approval opens the package for booking, seed its seat counter
	if payload.Approval == "approved" {
		if err := u.repo.SeedPackageStock(ctx, pkg.ID, pkg.AvailableSeats); err != nil {
			return err
		}
	}

	return nil
}

func (u *usecase) CreateTemplate(ctx context.Context, payload *request.CreateTemplate, companyID int64) (response.Template, error) {
	tpl := entity.PackageTemplate{
		CompanyID: companyID,
		Name:      payload.Name,
		Template:  []byte(payload.Template),
		CreatedAt: time.Now(),
	}

	id, err := u.repo.InsertTemplate(ctx, &tpl)
	if err != nil {
		return response.Template{}, err
	}
	tpl.ID = id

	return response.Template{
		ID:       tpl.ID,
		Name:     tpl.Name,
		Template: json.RawMessage(tpl.Template),
	}, nil
}

func (u *usecase) ListTemplates(ctx context.Context, companyID int64) ([]response.Template, error) {
	templates, err := u.repo.FindTemplatesByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Template, 0, len(templates))
	for _, tpl := range templates {
		resp = append(resp, response.Template{
			ID:       tpl.ID,
			Name:     tpl.Name,
			Template: json.RawMessage(tpl.Template),
		})
	}
	return resp, nil
}

func subscriptionActive(company *entity.Company) bool {
	if !company.SubscriptionPlan.Valid || !company.PackageLimit.Valid {
		return false
	}
	if !company.SubscriptionExpiresAt.Valid {
		return false
	}
	return company.SubscriptionExpiresAt.Time.After(time.Now())
}

func toDetail(pkg *entity.Package) response.PackageDetail {
	return response.PackageDetail{
		ID:             pkg.ID,
		CompanyID:      pkg.CompanyID,
		Name:           pkg.Name,
		Description:    pkg.Description,
		Price:          pkg.Price,
		ChildPrice:     pkg.ChildPrice,
		TotalSeats:     pkg.TotalSeats,
		AvailableSeats: pkg.AvailableSeats,
		DepartureDate:  pkg.DepartureDate.Format(dateLayout),
		ReturnDate:     pkg.ReturnDate.Format(dateLayout),
		DurationDays:   pkg.DurationDays,
		MakkahHotel:    json.RawMessage(pkg.MakkahHotel),
		MadinahHotel:   json.RawMessage(pkg.MadinahHotel),
		Itinerary:      json.RawMessage(pkg.Itinerary),
		Status:         pkg.Status,
		ApprovalStatus: pkg.ApprovalStatus,
	}
}

func toDetails(packages []entity.Package) []response.PackageDetail {
	resp := make([]response.PackageDetail, 0, len(packages))
	for i := range packages {
		resp = append(resp, toDetail(&packages[i]))
	}
	return resp
}
