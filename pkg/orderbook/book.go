package orderbook

import (
	"fmt"
	"strings"

	"github.com/gammazero/deque"
	"github.com/shopspring/decimal"
)

// Book is one side of the market. Orders live in a priority queue for best
// order lookup and in a sequential registry for lookup by trader name.
type Book struct {
	side     Side
	queue    *PriorityQueue[*Order]
	registry *deque.Deque[*Entry[*Order]]
}

func NewBook(side Side) *Book {
	cmp := SellPriority
	if side == BUY {
		cmp = BuyPriority
	}

	return &Book{
		side:     side,
		queue:    NewPriorityQueue[*Order](cmp),
		registry: &deque.Deque[*Entry[*Order]]{},
	}
}

func (b *Book) Side() Side {
	return b.side
}

func (b *Book) Len() int {
	return b.registry.Len()
}

func (b *Book) IsEmpty() bool {
	return b.queue.IsEmpty()
}

// Submit rests a new order. A trader may hold one live order per side.
func (b *Book) Submit(trader string, time int64, price decimal.Decimal, qty int64) error {
	if b.registry.Index(byTrader(trader)) >= 0 {
		return ErrDuplicateTrader
	}

	key := NewKey(time, price)
	entry := b.queue.Insert(key, &Order{Key: key, Trader: trader, Quantity: qty})
	b.registry.PushBack(entry)
	return nil
}

// Amend overwrites the trader's time, price and quantity in place and
// rebuilds the queue. A zero quantity cancels the order.
func (b *Book) Amend(trader string, time int64, price decimal.Decimal, qty int64) error {
	i := b.registry.Index(byTrader(trader))
	if i < 0 {
		return ErrTraderNotFound
	}
	if qty == 0 {
		return b.removeAt(i)
	}

	entry := b.registry.At(i)
	if err := b.queue.ReplaceKey(entry, Key{Time: time, Price: price}); err != nil {
		return fmt.Errorf("amend %s: %w", trader, err)
	}
	entry.Value().Quantity = qty

	b.queue.Heapify()
	return nil
}

// Cancel removes the trader's order. The last match in registry order wins.
func (b *Book) Cancel(trader string) error {
	i := b.registry.RIndex(byTrader(trader))
	if i < 0 {
		return ErrTraderNotFound
	}
	return b.removeAt(i)
}

// Best returns the highest priority order: the highest bid or the lowest ask.
func (b *Book) Best() (*Order, bool) {
	entry, ok := b.queue.Min()
	if !ok {
		return nil, false
	}
	return entry.Value(), true
}

func (b *Book) Lookup(trader string) (*Order, bool) {
	i := b.registry.Index(byTrader(trader))
	if i < 0 {
		return nil, false
	}
	return b.registry.At(i).Value(), true
}

// Prune drops the best order if it has been fully filled.
func (b *Book) Prune() bool {
	best, ok := b.Best()
	if !ok || best.Quantity != 0 {
		return false
	}

	entry, _ := b.queue.RemoveMin()
	if i := b.registry.Index(func(e *Entry[*Order]) bool { return e == entry }); i >= 0 {
		b.registry.Remove(i)
	}
	return true
}

// Orders returns the live orders in registry (arrival) order.
func (b *Book) Orders() []*Order {
	orders := make([]*Order, 0, b.registry.Len())
	for i := 0; i < b.registry.Len(); i++ {
		orders = append(orders, b.registry.At(i).Value())
	}
	return orders
}

func (b *Book) removeAt(i int) error {
	entry := b.registry.Remove(i)
	if err := b.queue.Remove(entry); err != nil {
		return fmt.Errorf("remove %s: %w", entry.Value().Trader, err)
	}
	return nil
}

func byTrader(trader string) func(*Entry[*Order]) bool {
	return func(e *Entry[*Order]) bool {
		return strings.EqualFold(e.Value().Trader, trader)
	}
}
