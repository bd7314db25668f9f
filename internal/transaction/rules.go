package transaction

import (
	"errors"
	"math"
)

var (
	ErrUnknownProduct    = errors.New("product not found")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidPrice      = errors.New("cost price must be greater than zero")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrQuantityCap       = errors.New("restock quantity above limit")
	ErrAmountTooLarge    = errors.New("amount too large")
)

// Rules holds the shop's pricing and stock limits.
type Rules struct {
	Markup        int // selling price = cost price × Markup
	FreeEvery     int // one free unit per FreeEvery paid units; 0 disables the promotion
	MaxRestockQty int
}

// DefaultRules is "sell at twice cost, buy 3 get 1 free, restock at most 999 per line".
var DefaultRules = Rules{Markup: 2, FreeEvery: 3, MaxRestockQty: 999}

// FreeItems returns the promotional units earned by paid units: paid div FreeEvery.
func (r Rules) FreeItems(paid int) int {
	if r.FreeEvery <= 0 || paid <= 0 {
		return 0
	}
	return paid / r.FreeEvery
}

// TotalRemoved returns the units leaving stock for a paid quantity, free units included.
// The sum can overflow for very large paid; Cart.Add checks stock before adding.
func (r Rules) TotalRemoved(paid int) int {
	return paid + r.FreeItems(paid)
}

// mulFits reports whether a*b fits in an int, for non-negative a and b.
func mulFits(a, b int) bool {
	return a == 0 || b <= math.MaxInt/a
}

// addFits reports whether a+b fits in an int, for non-negative a and b.
func addFits(a, b int) bool {
	return b <= math.MaxInt-a
}
