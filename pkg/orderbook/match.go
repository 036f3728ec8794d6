package orderbook

import "github.com/shopspring/decimal"

// DefaultPricePlaces is the number of decimals a trade price is rounded to.
const DefaultPricePlaces int32 = 2

var two = decimal.NewFromInt(2)

// MatchResult describes one executed trade. Remaining quantities are read
// after the fill and before the books are pruned.
type MatchResult struct {
	Price           decimal.Decimal
	Qty             int64
	Buyer           string
	BuyerRemaining  int64
	Seller          string
	SellerRemaining int64
}

// NoTrade is returned by AttemptTrade when the books do not cross.
var NoTrade = MatchResult{Price: decimal.NewFromInt(-1), Qty: -1}

func (r MatchResult) IsTrade() bool {
	return r.Qty != NoTrade.Qty
}

// CanCross reports whether the best bid is at or above the best ask.
func CanCross(sells, buys *Book) bool {
	seller, ok := sells.Best()
	if !ok {
		return false
	}
	buyer, ok := buys.Best()
	if !ok {
		return false
	}
	return buyer.Key.Price.GreaterThanOrEqual(seller.Key.Price)
}

// AttemptTrade fills the best bid against the best ask if they cross. Both
// orders stay in their books; callers prune afterwards.
func AttemptTrade(sells, buys *Book) MatchResult {
	return attemptTrade(sells, buys, DefaultPricePlaces)
}

func attemptTrade(sells, buys *Book, places int32) MatchResult {
	if !CanCross(sells, buys) {
		return NoTrade
	}

	seller, _ := sells.Best()
	buyer, _ := buys.Best()

	price := seller.Key.Price.Add(buyer.Key.Price).Div(two).Round(places)
	qty := min(seller.Quantity, buyer.Quantity)
	seller.Quantity -= qty
	buyer.Quantity -= qty

	return MatchResult{
		Price:           price,
		Qty:             qty,
		Buyer:           buyer.Trader,
		BuyerRemaining:  buyer.Quantity,
		Seller:          seller.Trader,
		SellerRemaining: seller.Quantity,
	}
}
