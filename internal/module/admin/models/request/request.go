package request

type SetVerification struct {
	CompanyID       int64  `json:"company_id" validate:"required"`
	Approval        string `json:"approval" validate:"required,oneof=approved rejected"`
	Notes           string `json:"notes"`
	RejectionReason string `json:"rejection_reason" validate:"required_if=Approval rejected"`
}

type ActivateSubscription struct {
	CompanyID    int64  `json:"company_id" validate:"required"`
	Plan         string `json:"plan" validate:"required"`
	PackageLimit int64  `json:"package_limit" validate:"required,gt=0"`
	DurationDays int    `json:"duration_days" validate:"required,gt=0"`
}

type ChangePlan struct {
	CompanyID    int64  `json:"company_id" validate:"required"`
	Plan         string `json:"plan" validate:"required"`
	PackageLimit int64  `json:"package_limit" validate:"required,gt=0"`
}

type CancelSubscription struct {
	CompanyID int64 `json:"company_id" validate:"required"`
}

type ExtendSubscription struct {
	CompanyID int64 `json:"company_id" validate:"required"`
	Days      int   `json:"days" validate:"required,gt=0"`
}
