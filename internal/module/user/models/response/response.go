package response

type Login struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type Profile struct {
	ID             int64  `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture,omitempty"`

	CompanyName        string `json:"company_name,omitempty"`
	CompanyLicense     string `json:"company_license,omitempty"`
	CompanyAddress     string `json:"company_address,omitempty"`
	BankName           string `json:"bank_name,omitempty"`
	BankAccount        string `json:"bank_account,omitempty"`
	VerificationStatus string `json:"verification_status,omitempty"`
	IsVerified         bool   `json:"is_verified"`
	SubscriptionPlan   string `json:"subscription_plan,omitempty"`
	PackageLimit       int64  `json:"package_limit,omitempty"`
}
