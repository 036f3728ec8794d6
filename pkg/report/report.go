package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/littlen101/SingleStock/pkg/orderbook"
	"github.com/shopspring/decimal"
)

const executeKeyword = "ExecuteBuySellOrders"

// Writer renders command outcomes in the console report format. Output is
// buffered; call Flush when done.
type Writer struct {
	w   *bufio.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Echo prints every field followed by a space, then the trailing token.
func (w *Writer) Echo(fields []string, token string) {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(f)
		sb.WriteByte(' ')
	}
	sb.WriteString(token)
	w.println(sb.String())
}

func (w *Writer) Trade(r orderbook.MatchResult) {
	w.Echo([]string{executeKeyword, FormatPrice(r.Price), fmt.Sprint(r.Qty)}, "")
	w.println(fmt.Sprintf("Buyer: %s %d", r.Buyer, r.BuyerRemaining))
	w.println(fmt.Sprintf("Seller: %s %d", r.Seller, r.SellerRemaining))
}

func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) println(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s + "\n")
}

// FormatPrice prints the shortest decimal form with at least one fractional
// digit, e.g. 10.0, 10.5, 10.25.
func FormatPrice(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// DescribeOrder renders an order as "trader time price quantity".
func DescribeOrder(o *orderbook.Order) string {
	if o == nil {
		return ""
	}
	return fmt.Sprintf("%s %d %s %d", o.Trader, o.Key.Time, FormatPrice(o.Key.Price), o.Quantity)
}

// Token maps a book error to the trailing token of the echoed command.
// Unrecognised errors render as an empty token.
func Token(side orderbook.Side, err error) string {
	party := "Seller"
	if side == orderbook.BUY {
		party = "Buyer"
	}

	switch {
	case err == nil:
		return ""
	case errors.Is(err, orderbook.ErrDuplicateTrader):
		return "Existing" + party + "Error"
	case errors.Is(err, orderbook.ErrTraderNotFound):
		return "no" + party + "Error"
	}
	return ""
}
