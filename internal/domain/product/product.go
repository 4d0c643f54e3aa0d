package product

import (
	"time"

	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errs.E(errs.KindNotFound, "product not found")
	ErrDuplicateProduct = errs.E(errs.KindConflict, "this product already exists, try adding a new batch")
	ErrEmptyName        = errs.E(errs.KindValidation, "product name cannot be empty")
)

type Product struct {
	ID        uuid.UUID
	TeamID    uuid.UUID
	Name      string
	Code      *string
	BrandID   *uuid.UUID
	StoreID   *uuid.UUID
	CreatedAt time.Time
}

type Brand struct {
	ID     uuid.UUID
	TeamID uuid.UUID
	Name   string
}

type Store struct {
	ID     uuid.UUID
	TeamID uuid.UUID
	Name   string
}

type DuplicateCheck struct {
	Code    *string
	TeamID  uuid.UUID
	StoreID *uuid.UUID
}

type DuplicateResult struct {
	IsDuplicate bool
	ProductID   *uuid.UUID
}

// FindDuplicate applies the per-team uniqueness rule for (code, store) to a
// set of candidate products that already share the checked code. A product
// without a code can never be a duplicate. When a store is given, only a
// product assigned to that exact store collides; without one, only storeless
// products collide.
func FindDuplicate(check DuplicateCheck, withSameCode []Product) DuplicateResult {
	if check.Code == nil || *check.Code == "" {
		return DuplicateResult{}
	}

	if check.StoreID != nil {
		for _, prod := range withSameCode {
			if prod.StoreID != nil && *prod.StoreID == *check.StoreID {
				id := prod.ID
				return DuplicateResult{IsDuplicate: true, ProductID: &id}
			}
		}
		return DuplicateResult{}
	}

	for _, prod := range withSameCode {
		if prod.StoreID == nil {
			id := prod.ID
			return DuplicateResult{IsDuplicate: true, ProductID: &id}
		}
	}
	return DuplicateResult{}
}
