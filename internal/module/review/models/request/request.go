package request

type CreateReview struct {
	OrderID string `json:"order_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

type ListReviews struct {
	PackageID int64 `params:"package_id" validate:"required"`
}
