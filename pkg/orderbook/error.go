package orderbook

import "errors"

var (
	ErrDuplicateTrader = errors.New("trader already has a live order")
	ErrTraderNotFound  = errors.New("trader not found")
	ErrEntryNotLive    = errors.New("entry is not live in this queue")
)
