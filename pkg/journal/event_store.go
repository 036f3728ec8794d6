package journal

import (
	"strings"

	"github.com/littlen101/SingleStock/pkg/orderbook"
)

type EventStore interface {
	AddEvent(ev *OrderEvent)
	Events() []*OrderEvent
	History(side orderbook.Side, trader string) []*OrderEvent
}

// InMemoryEventStore keeps the events of one run. It is not safe for
// concurrent use.
type InMemoryEventStore struct {
	seq      uint64
	events   []*OrderEvent
	byTrader map[string][]*OrderEvent // side/lower(trader) -> events
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		byTrader: make(map[string][]*OrderEvent),
	}
}

// AddEvent assigns the next sequence number and event id, then stores ev.
func (s *InMemoryEventStore) AddEvent(ev *OrderEvent) {
	s.seq++
	ev.Seq = s.seq
	ev.EventID = NewEventID(ev.Side, ev.Trader, ev.Seq)

	s.events = append(s.events, ev)
	k := traderKey(ev.Side, ev.Trader)
	s.byTrader[k] = append(s.byTrader[k], ev)
}

func (s *InMemoryEventStore) Events() []*OrderEvent {
	return s.events
}

// History returns the events of a trader on one side, oldest first. Trader
// names match case-insensitively.
func (s *InMemoryEventStore) History(side orderbook.Side, trader string) []*OrderEvent {
	return s.byTrader[traderKey(side, trader)]
}

func traderKey(side orderbook.Side, trader string) string {
	return string(side) + "/" + strings.ToLower(trader)
}
