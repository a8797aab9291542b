package response

type CompanyOverview struct {
	ID                    int64  `json:"id"`
	Email                 string `json:"email"`
	FullName              string `json:"full_name"`
	CompanyName           string `json:"company_name"`
	CompanyLicense        string `json:"company_license,omitempty"`
	VerificationStatus    string `json:"verification_status"`
	IsVerified            bool   `json:"is_verified"`
	VerificationNotes     string `json:"verification_notes,omitempty"`
	RejectionReason       string `json:"rejection_reason,omitempty"`
	SubscriptionPlan      string `json:"subscription_plan,omitempty"`
	PackageLimit          int64  `json:"package_limit,omitempty"`
	SubscriptionExpiresAt string `json:"subscription_expires_at,omitempty"`
	SubscriptionActive    bool   `json:"subscription_active"`
}

type SubscriptionHistory struct {
	ID           int64  `json:"id"`
	Plan         string `json:"plan"`
	PackageLimit int64  `json:"package_limit"`
	Status       string `json:"status"`
	StartedAt    string `json:"started_at"`
	ExpiresAt    string `json:"expires_at,omitempty"`
}
