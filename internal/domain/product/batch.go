package product

import (
	"sort"
	"time"

	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBatchNotFound = errs.E(errs.KindNotFound, "batch not found")

// Batch is one stock lot of a product with its own expiry date and an
// optional temporary price override.
type Batch struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	ExpDate   time.Time
	Amount    int
	Price     *float64
	TempPrice *float64
}

// SortBatchesByExpDate orders batches ascending by expiry so soon-to-expire
// stock surfaces first. The sort is stable: batches sharing an expiry date
// keep their original relative order.
func SortBatchesByExpDate(batches []Batch) []Batch {
	sorted := make([]Batch, len(batches))
	copy(sorted, batches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpDate.Before(sorted[j].ExpDate)
	})
	return sorted
}
