package request

import "time"

type BatchPayload struct {
	Name    string    `json:"name" binding:"required"`
	ExpDate time.Time `json:"exp_date" binding:"required"`
	Amount  int       `json:"amount" binding:"required,min=1"`
	Price   *float64  `json:"price,omitempty"`
}

type CreateBatchesRequest struct {
	Batches []BatchPayload `json:"batches" binding:"required,min=1,dive"`
}

// TempPrice of null clears an existing discount.
type SetDiscountRequest struct {
	TempPrice *float64 `json:"temp_price"`
}
