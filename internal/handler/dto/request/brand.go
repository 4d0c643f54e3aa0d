package request

type CreateBrandsRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}
