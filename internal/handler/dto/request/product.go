package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name    string     `json:"name" binding:"required"`
	Code    *string    `json:"code,omitempty"`
	BrandID *uuid.UUID `json:"brand_id,omitempty"`
	StoreID *uuid.UUID `json:"store_id,omitempty"`
}

// GetCode normalizes the optional barcode: missing and blank collapse to
// nil so downstream duplicate checks see one shape of "no code".
func (r CreateProductRequest) GetCode() *string {
	if r.Code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
