package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Item is a single cart line.
type Item struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price Money     `json:"price"`
}

// NewItem creates an item with a fresh ID.
func NewItem(name string, price Money) Item {
	return Item{ID: uuid.New(), Name: name, Price: price}
}

func (i Item) validate() error {
	if i.ID == uuid.Nil {
		return fmt.Errorf("%w: missing id", ErrInvalidItem)
	}
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidItem)
	}
	if i.Price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidItem)
	}
	if i.Price > MaxMoney {
		return fmt.Errorf("%w: price exceeds %s", ErrInvalidItem, MaxMoney.Decimal())
	}
	return nil
}

// Reader is the read side of a cart store, all checkout depends on.
type Reader interface {
	// Items returns the cart lines in the order they were added.
	Items(ctx context.Context, cartID string) ([]Item, error)
	// TotalPrice returns the sum of all item prices.
	TotalPrice(ctx context.Context, cartID string) (Money, error)
}

// Writer mutates carts.
type Writer interface {
	// Add appends item, or replaces the item with the same ID in place.
	Add(ctx context.Context, cartID string, item Item) error
	Remove(ctx context.Context, cartID string, itemID uuid.UUID) error
	Clear(ctx context.Context, cartID string) error
}

// Store is a full cart store.
type Store interface {
	Reader
	Writer
}

// Total sums item prices.
func Total(items []Item) Money {
	var total Money
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}

func validateCartID(cartID string) error {
	if strings.TrimSpace(cartID) == "" {
		return ErrInvalidCartID
	}
	return nil
}

func upsert(items []Item, item Item) []Item {
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func without(items []Item, itemID uuid.UUID) ([]Item, bool) {
	for i := range items {
		if items[i].ID == itemID {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}
