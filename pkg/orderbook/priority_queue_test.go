package orderbook

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
)

func key(time int64, price string) *Key {
	return NewKey(time, decimal.RequireFromString(price))
}

func drain(q *PriorityQueue[string]) []string {
	var out []string
	for {
		e, ok := q.RemoveMin()
		if !ok {
			return out
		}
		out = append(out, e.Value())
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPriorityQueueSellOrder(t *testing.T) {
	q := NewPriorityQueue[string](SellPriority)
	q.Insert(key(3, "10.50"), "c")
	q.Insert(key(1, "11.00"), "a")
	q.Insert(key(2, "10.50"), "b")
	q.Insert(key(4, "9.99"), "d")

	got := drain(q)
	want := []string{"d", "b", "c", "a"}
	if !equalStrings(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPriorityQueueBuyOrder(t *testing.T) {
	q := NewPriorityQueue[string](BuyPriority)
	q.Insert(key(3, "10.50"), "c")
	q.Insert(key(1, "11.00"), "a")
	q.Insert(key(2, "10.50"), "b")
	q.Insert(key(4, "9.99"), "d")

	got := drain(q)
	want := []string{"a", "b", "c", "d"}
	if !equalStrings(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPriorityQueueEmpty(t *testing.T) {
	q := NewPriorityQueue[string](SellPriority)
	if !q.IsEmpty() {
		t.Fatalf("expected empty queue")
	}
	if _, ok := q.Min(); ok {
		t.Fatalf("expected no min on empty queue")
	}
	if _, ok := q.RemoveMin(); ok {
		t.Fatalf("expected no removeMin on empty queue")
	}
}

func TestPriorityQueueMinDoesNotRemove(t *testing.T) {
	q := NewPriorityQueue[string](SellPriority)
	q.Insert(key(1, "5"), "a")

	e, ok := q.Min()
	if !ok || e.Value() != "a" {
		t.Fatalf("expected min a, got %+v", e)
	}
	if q.Len() != 1 {
		t.Fatalf("expected len 1, got %d", q.Len())
	}
}

func TestPriorityQueueRemoveArbitrary(t *testing.T) {
	q := NewPriorityQueue[string](SellPriority)
	handles := map[string]*Entry[string]{}
	for i, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		handles[name] = q.Insert(key(int64(i), "10"), name)
	}

	for _, name := range []string{"d", "a", "g"} {
		if err := q.Remove(handles[name]); err != nil {
			t.Fatalf("remove %s: %v", name, err)
		}
	}

	// handles of the survivors still resolve after the heap moved them around
	for _, name := range []string{"b", "c", "e", "f"} {
		if handles[name].Value() != name {
			t.Fatalf("handle for %s resolves to %s", name, handles[name].Value())
		}
	}

	got := drain(q)
	want := []string{"b", "c", "e", "f"}
	if !equalStrings(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPriorityQueueRemoveNotLive(t *testing.T) {
	q := NewPriorityQueue[string](SellPriority)
	e := q.Insert(key(1, "1"), "a")
	if err := q.Remove(e); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := q.Remove(e); !errors.Is(err, ErrEntryNotLive) {
		t.Fatalf("expected ErrEntryNotLive, got %v", err)
	}
	if err := q.ReplaceKey(e, Key{Time: 2}); !errors.Is(err, ErrEntryNotLive) {
		t.Fatalf("expected ErrEntryNotLive, got %v", err)
	}

	other := NewPriorityQueue[string](SellPriority)
	foreign := other.Insert(key(1, "1"), "x")
	if err := q.Remove(foreign); !errors.Is(err, ErrEntryNotLive) {
		t.Fatalf("expected ErrEntryNotLive for foreign entry, got %v", err)
	}
}

func TestPriorityQueueReplaceKeyThenHeapify(t *testing.T) {
	q := NewPriorityQueue[string](SellPriority)
	q.Insert(key(1, "10"), "a")
	b := q.Insert(key(2, "11"), "b")
	q.Insert(key(3, "12"), "c")

	if err := q.ReplaceKey(b, Key{Time: 4, Price: decimal.RequireFromString("9")}); err != nil {
		t.Fatalf("replace key: %v", err)
	}
	if b.Key().Time != 4 {
		t.Fatalf("expected key overwritten in place, got %+v", b.Key())
	}
	q.Heapify()

	got := drain(q)
	want := []string{"b", "a", "c"}
	if !equalStrings(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPriorityQueueRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := NewPriorityQueue[int64](SellPriority)
	live := map[int64]*Entry[int64]{}

	for step := int64(0); step < 2000; step++ {
		switch op := rng.Intn(3); {
		case op < 2 || len(live) == 0:
			price := decimal.NewFromInt(rng.Int63n(50))
			live[step] = q.Insert(NewKey(step, price), step)
		default:
			for id, e := range live {
				if err := q.Remove(e); err != nil {
					t.Fatalf("remove %d: %v", id, err)
				}
				delete(live, id)
				break
			}
		}
	}

	keys := make([]Key, 0, len(live))
	for _, e := range live {
		keys = append(keys, e.Key())
	}
	sort.Slice(keys, func(i, j int) bool { return SellPriority(keys[i], keys[j]) < 0 })

	for i, want := range keys {
		e, ok := q.RemoveMin()
		if !ok {
			t.Fatalf("queue drained early at %d", i)
		}
		if !e.Key().Equal(want) {
			t.Fatalf("pop %d: expected %+v, got %+v", i, want, e.Key())
		}
	}
	if !q.IsEmpty() {
		t.Fatalf("expected empty queue, %d left", q.Len())
	}
}
