package journal

import (
	"fmt"

	"github.com/littlen101/SingleStock/pkg/orderbook"
	"github.com/shopspring/decimal"
)

type ExecType string

const (
	ExecTypeNew      ExecType = "New"
	ExecTypeReplaced ExecType = "Replaced"
	ExecTypeCanceled ExecType = "Canceled"
	ExecTypeRejected ExecType = "Rejected"
	ExecTypeTrade    ExecType = "Trade"
)

// OrderEvent is one step in the life of an order. For trades Price and Qty
// are the fill, Remaining is what the order has left.
type OrderEvent struct {
	EventID      string
	Seq          uint64
	Side         orderbook.Side
	Trader       string
	ExecType     ExecType
	Time         int64
	Price        decimal.Decimal
	Qty          int64
	Remaining    int64
	Counterparty string
}

func NewEventID(side orderbook.Side, trader string, seq uint64) string {
	return fmt.Sprintf("%s-%s-%d", side, trader, seq)
}

func NewOrderEventTrade(r orderbook.MatchResult, side orderbook.Side) *OrderEvent {
	ev := &OrderEvent{
		Side:     side,
		ExecType: ExecTypeTrade,
		Price:    r.Price,
		Qty:      r.Qty,
	}
	if side == orderbook.BUY {
		ev.Trader, ev.Remaining, ev.Counterparty = r.Buyer, r.BuyerRemaining, r.Seller
	} else {
		ev.Trader, ev.Remaining, ev.Counterparty = r.Seller, r.SellerRemaining, r.Buyer
	}
	return ev
}
