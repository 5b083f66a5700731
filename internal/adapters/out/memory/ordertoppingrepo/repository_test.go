package ordertoppingrepo_test

import (
	"context"
	"testing"

	"tubertreats/internal/adapters/out/memory/ordertoppingrepo"
	"tubertreats/internal/adapters/out/memory/table"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/ordertopping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryOrderToppingRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("should allow the same topping twice on one order", func(t *testing.T) {
		rows := table.New[*ordertopping.OrderTopping]()
		repo := ordertoppingrepo.NewMemoryOrderToppingRepository(rows)

		for range 2 {
			id, err := repo.NextID(ctx)
			require.NoError(t, err)
			ot, err := ordertopping.NewOrderTopping(id, 1, 1)
			require.NoError(t, err)
			require.NoError(t, repo.Add(ctx, ot))
		}

		all := rows.All()
		require.Len(t, all, 2)
		assert.Equal(t, kernel.ID(1), all[0].ID())
		assert.Equal(t, kernel.ID(2), all[1].ID())
	})

	t.Run("should tolerate removing a missing association", func(t *testing.T) {
		rows := table.New[*ordertopping.OrderTopping]()
		repo := ordertoppingrepo.NewMemoryOrderToppingRepository(rows)

		assert.NoError(t, repo.Remove(ctx, 42))
		assert.Empty(t, rows.All())
	})
}
