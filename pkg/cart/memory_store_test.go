package cart_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/cart"
)

// storeContract runs the behaviour every Store implementation must share.
func storeContract(t *testing.T, store cart.Store, cartID string) {
	t.Helper()
	ctx := context.Background()

	items, err := store.Items(ctx, cartID)
	require.NoError(t, err)
	assert.Empty(t, items)

	total, err := store.TotalPrice(ctx, cartID)
	require.NoError(t, err)
	assert.Equal(t, cart.Money(0), total)

	phone := cart.NewItem("Gamepad", cart.MustParseMoney("10.00"))
	monitor := cart.NewItem("Monitor", cart.MustParseMoney("15.50"))
	require.NoError(t, store.Add(ctx, cartID, phone))
	require.NoError(t, store.Add(ctx, cartID, monitor))

	items, err = store.Items(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Gamepad", items[0].Name)
	assert.Equal(t, "Monitor", items[1].Name)

	total, err = store.TotalPrice(ctx, cartID)
	require.NoError(t, err)
	assert.Equal(t, "25.50", total.Decimal())

	phone.Price = cart.MustParseMoney("12.00")
	require.NoError(t, store.Add(ctx, cartID, phone))
	items, err = store.Items(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, items, 2, "adding an existing id replaces it")
	assert.Equal(t, cart.MustParseMoney("12.00"), items[0].Price)

	require.NoError(t, store.Remove(ctx, cartID, phone.ID))
	assert.ErrorIs(t, store.Remove(ctx, cartID, phone.ID), cart.ErrItemNotFound)

	items, err = store.Items(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, monitor.ID, items[0].ID)

	require.NoError(t, store.Clear(ctx, cartID))
	items, err = store.Items(ctx, cartID)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, store.Add(ctx, cartID, cart.Item{Name: "no id"}), cart.ErrInvalidItem)
	assert.ErrorIs(t, store.Add(ctx, cartID, cart.Item{ID: uuid.New()}), cart.ErrInvalidItem)
	assert.ErrorIs(t, store.Add(ctx, cartID, cart.Item{ID: uuid.New(), Name: "x", Price: -1}), cart.ErrInvalidItem)
	assert.ErrorIs(t, store.Add(ctx, cartID, cart.Item{ID: uuid.New(), Name: "x", Price: cart.MaxMoney + 1}), cart.ErrInvalidItem)

	_, err = store.Items(ctx, " ")
	assert.ErrorIs(t, err, cart.ErrInvalidCartID)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	storeContract(t, cart.NewMemoryStore(), "cart-1")
}

func TestMemoryStore_ItemsReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := cart.NewMemoryStore()
	require.NoError(t, store.Add(ctx, "c", cart.NewItem("Keyboard", 1000)))

	items, err := store.Items(ctx, "c")
	require.NoError(t, err)
	items[0].Name = "changed"

	again, err := store.Items(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", again[0].Name)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := cart.NewMemoryStore()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Add(ctx, "c", cart.NewItem("Mouse", 100))
		}()
	}
	wg.Wait()

	total, err := store.TotalPrice(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, cart.Money(5000), total)
	assert.NoError(t, store.Healthcheck(ctx))
}

func TestTotal(t *testing.T) {
	t.Parallel()
	items := []cart.Item{
		cart.NewItem("a", cart.MustParseMoney("10.00")),
		cart.NewItem("b", cart.MustParseMoney("15.50")),
	}
	assert.Equal(t, "$25.50", cart.Total(items).String())
	assert.Equal(t, cart.Money(0), cart.Total(nil))
}
