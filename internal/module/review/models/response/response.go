package response

type ReviewItem struct {
	ID        int64  `json:"id"`
	OrderID   string `json:"order_id"`
	PackageID int64  `json:"package_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}
