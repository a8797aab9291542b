package request

type Register struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=customer company"`

	// required when role is company
	CompanyName    string `json:"company_name" validate:"required_if=Role company"`
	CompanyLicense string `json:"company_license" validate:"required_if=Role company"`
	CompanyAddress string `json:"company_address" validate:"required_if=Role company"`
	BankName       string `json:"bank_name"`
	BankAccount    string `json:"bank_account"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfile struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`

	CompanyName       string `json:"company_name"`
	CompanyAddress    string `json:"company_address"`
	BankName          string `json:"bank_name"`
	BankAccount       string `json:"bank_account"`
	PaymentGatewayKey string `json:"payment_gateway_key"`
}
