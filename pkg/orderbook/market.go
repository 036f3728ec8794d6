package orderbook

type MarketConfig struct {
	PricePlaces int32
}

// Market holds the buy and sell books of a single instrument.
type Market struct {
	Buys  *Book
	Sells *Book

	pricePlaces int32
	callbacks   []func(MatchResult)
}

func NewMarket(cfg *MarketConfig) *Market {
	places := DefaultPricePlaces
	if cfg != nil && cfg.PricePlaces > 0 {
		places = cfg.PricePlaces
	}

	return &Market{
		Buys:        NewBook(BUY),
		Sells:       NewBook(SELL),
		pricePlaces: places,
	}
}

func (m *Market) Book(side Side) *Book {
	if side == BUY {
		return m.Buys
	}
	return m.Sells
}

func (m *Market) RegisterTradeCallback(fn func(MatchResult)) {
	m.callbacks = append(m.callbacks, fn)
}

// Match runs one trade attempt and prunes filled orders. At most one trade
// is executed per call.
func (m *Market) Match() (MatchResult, bool) {
	result := attemptTrade(m.Sells, m.Buys, m.pricePlaces)
	if !result.IsTrade() {
		return result, false
	}

	for _, cb := range m.callbacks {
		cb(result)
	}

	m.Sells.Prune()
	m.Buys.Prune()
	return result, true
}
