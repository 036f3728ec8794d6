package orderbook

import "github.com/shopspring/decimal"

// Key is the ordering coordinate of a resting order.
// Times are assumed unique within one book.
type Key struct {
	Time  int64
	Price decimal.Decimal
}

func NewKey(time int64, price decimal.Decimal) *Key {
	return &Key{Time: time, Price: price}
}

// Compare returns the natural ordering of keys: price ascending, then time ascending.
func (k Key) Compare(other Key) int {
	if c := k.Price.Cmp(other.Price); c != 0 {
		return c
	}
	return cmpTime(k.Time, other.Time)
}

func (k Key) Equal(other Key) bool {
	return k.Time == other.Time && k.Price.Equal(other.Price)
}

// Comparator orders two keys. A negative result means a has priority over b.
type Comparator func(a, b Key) int

// SellPriority puts the lowest price first, earliest time breaking ties.
func SellPriority(a, b Key) int {
	return a.Compare(b)
}

// BuyPriority puts the highest price first, earliest time breaking ties.
func BuyPriority(a, b Key) int {
	if c := b.Price.Cmp(a.Price); c != 0 {
		return c
	}
	return cmpTime(a.Time, b.Time)
}

func cmpTime(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
