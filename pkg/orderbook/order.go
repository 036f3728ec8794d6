package orderbook

import (
	"fmt"
	"strings"
)

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

// Order is one resting intent to buy or sell. Key is shared with the queue
// entry holding the order, so rekeying the entry is visible here.
type Order struct {
	Key      *Key
	Trader   string
	Quantity int64
}

func (o *Order) Equal(other *Order) bool {
	return o.Key.Equal(*other.Key) &&
		strings.EqualFold(o.Trader, other.Trader) &&
		o.Quantity == other.Quantity
}

func (o *Order) String() string {
	return fmt.Sprintf("trader=%s time=%d price=%s qty=%d", o.Trader, o.Key.Time, o.Key.Price, o.Quantity)
}
