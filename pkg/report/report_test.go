package report

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/littlen101/SingleStock/pkg/orderbook"
	"github.com/shopspring/decimal"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "10.0"},
		{"10.00", "10.0"},
		{"10.50", "10.5"},
		{"10.25", "10.25"},
		{"0.05", "0.05"},
		{"-1", "-1.0"},
	}

	for _, tt := range tests {
		if got := FormatPrice(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatPrice(%s) = %s; want %s", tt.in, got, tt.want)
		}
	}
}

func TestToken(t *testing.T) {
	tests := []struct {
		side orderbook.Side
		err  error
		want string
	}{
		{orderbook.BUY, nil, ""},
		{orderbook.BUY, orderbook.ErrDuplicateTrader, "ExistingBuyerError"},
		{orderbook.SELL, orderbook.ErrDuplicateTrader, "ExistingSellerError"},
		{orderbook.BUY, orderbook.ErrTraderNotFound, "noBuyerError"},
		{orderbook.SELL, fmt.Errorf("wrapped: %w", orderbook.ErrTraderNotFound), "noSellerError"},
	}

	for _, tt := range tests {
		if got := Token(tt.side, tt.err); got != tt.want {
			t.Errorf("Token(%s, %v) = %q; want %q", tt.side, tt.err, got, tt.want)
		}
	}
}

func TestWriterEchoAndTrade(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Echo([]string{"EnterBuyOrder", "2", "B1", "10.00", "3"}, "")
	w.Trade(orderbook.MatchResult{
		Price:           decimal.RequireFromString("10.00"),
		Qty:             3,
		Buyer:           "B1",
		BuyerRemaining:  0,
		Seller:          "S1",
		SellerRemaining: 2,
	})
	w.Echo([]string{"CancelBuyOrder", "3", "X"}, "noBuyerError")
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	want := "EnterBuyOrder 2 B1 10.00 3 \n" +
		"ExecuteBuySellOrders 10.0 3 \n" +
		"Buyer: B1 0\n" +
		"Seller: S1 2\n" +
		"CancelBuyOrder 3 X noBuyerError\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestDescribeOrder(t *testing.T) {
	o := &orderbook.Order{
		Key:      orderbook.NewKey(7, decimal.RequireFromString("12.30")),
		Trader:   "carol",
		Quantity: 15,
	}
	if got := DescribeOrder(o); got != "carol 7 12.3 15" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := DescribeOrder(nil); got != "" {
		t.Fatalf("expected empty description for nil order, got %q", got)
	}
}
