package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore
// implementation adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	key := ResultKey(8, []string{"contract", time.Now().Format("20060102150405.000000000")})

	t.Run("Save and Load", func(t *testing.T) {
		answer := domain.Answer{Day: 8, PartOne: 2, PartTwo: 6}

		err := store.Save(ctx, key, answer)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, answer, loaded)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, domain.Answer{Day: 8, PartOne: 1}))
		require.NoError(t, store.Save(ctx, key, domain.Answer{Day: 8, PartOne: 3}))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), loaded.PartOne)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, domain.Answer{Day: 8}))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		_ = store.Save(ctx, id1, domain.Answer{Day: 2})
		_ = store.Save(ctx, id2, domain.Answer{Day: 4})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}
