package product_test

import (
	"testing"

	"shelflife/internal/domain/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestFindDuplicate(t *testing.T) {
	teamID := uuid.New()
	storeID := uuid.New()
	otherStoreID := uuid.New()

	storeless := product.Product{ID: uuid.New(), TeamID: teamID, Code: strptr("X123")}
	inStore := product.Product{ID: uuid.New(), TeamID: teamID, Code: strptr("X123"), StoreID: &storeID}

	t.Run("no code means no duplicate", func(t *testing.T) {
		res := product.FindDuplicate(
			product.DuplicateCheck{TeamID: teamID},
			[]product.Product{storeless, inStore},
		)
		assert.False(t, res.IsDuplicate)
		assert.Nil(t, res.ProductID)
	})

	t.Run("storeless check matches existing storeless product", func(t *testing.T) {
		res := product.FindDuplicate(
			product.DuplicateCheck{Code: strptr("X123"), TeamID: teamID},
			[]product.Product{inStore, storeless},
		)
		require.True(t, res.IsDuplicate)
		require.NotNil(t, res.ProductID)
		assert.Equal(t, storeless.ID, *res.ProductID)
	})

	t.Run("storeless check ignores products assigned to a store", func(t *testing.T) {
		res := product.FindDuplicate(
			product.DuplicateCheck{Code: strptr("X123"), TeamID: teamID},
			[]product.Product{inStore},
		)
		assert.False(t, res.IsDuplicate)
	})

	t.Run("store check matches only the exact store", func(t *testing.T) {
		res := product.FindDuplicate(
			product.DuplicateCheck{Code: strptr("X123"), TeamID: teamID, StoreID: &storeID},
			[]product.Product{storeless, inStore},
		)
		require.True(t, res.IsDuplicate)
		assert.Equal(t, inStore.ID, *res.ProductID)

		res = product.FindDuplicate(
			product.DuplicateCheck{Code: strptr("X123"), TeamID: teamID, StoreID: &otherStoreID},
			[]product.Product{storeless, inStore},
		)
		assert.False(t, res.IsDuplicate)
	})

	t.Run("no candidates at all", func(t *testing.T) {
		res := product.FindDuplicate(
			product.DuplicateCheck{Code: strptr("X123"), TeamID: teamID},
			nil,
		)
		assert.False(t, res.IsDuplicate)
	})
}
