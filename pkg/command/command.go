package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/littlen101/SingleStock/pkg/orderbook"
	"github.com/shopspring/decimal"
)

type Action int

const (
	UNKNOWN Action = iota
	SUBMIT
	AMEND
	CANCEL
	DISPLAY
)

func (a Action) String() string {
	switch a {
	case SUBMIT:
		return "submit"
	case AMEND:
		return "amend"
	case CANCEL:
		return "cancel"
	case DISPLAY:
		return "display"
	}
	return "unknown"
}

// Field positions shared by every keyword.
const (
	fieldKeyword = iota
	fieldTime
	fieldTrader
	fieldPrice
	fieldQuantity
)

type keyword struct {
	action Action
	side   orderbook.Side
}

// keywords are matched case-insensitively.
var keywords = map[string]keyword{
	"enterbuyorder":          {SUBMIT, orderbook.BUY},
	"entersellorder":         {SUBMIT, orderbook.SELL},
	"changebuyorder":         {AMEND, orderbook.BUY},
	"changesellorder":        {AMEND, orderbook.SELL},
	"cancelbuyorder":         {CANCEL, orderbook.BUY},
	"cancelsellorder":        {CANCEL, orderbook.SELL},
	"displayhighestbuyorder": {DISPLAY, orderbook.BUY},
	"displaylowestsellorder": {DISPLAY, orderbook.SELL},
}

type Command struct {
	Fields []string
	Action Action
	Side   orderbook.Side
	Time   int64
	Trader string
	Price  decimal.Decimal
	Qty    int64
}

func (c *Command) Keyword() string {
	if len(c.Fields) == 0 {
		return ""
	}
	return c.Fields[fieldKeyword]
}

// Mutating reports whether the command is followed by a match check.
func (c *Command) Mutating() bool {
	return c.Action != DISPLAY
}

// Parse splits a line on whitespace and decodes the fields its keyword
// needs. Unknown keywords parse without error. A blank line yields nil.
func Parse(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}

	cmd := &Command{Fields: fields}
	kw, ok := keywords[strings.ToLower(fields[fieldKeyword])]
	if !ok {
		return cmd, nil
	}
	cmd.Action, cmd.Side = kw.action, kw.side

	var err error
	switch cmd.Action {
	case SUBMIT, AMEND:
		if err = require(fields, fieldQuantity); err != nil {
			return nil, err
		}
		if cmd.Time, err = parseInt(fields, fieldTime, "time"); err != nil {
			return nil, err
		}
		cmd.Trader = fields[fieldTrader]
		if cmd.Price, err = decimal.NewFromString(fields[fieldPrice]); err != nil {
			return nil, fmt.Errorf("%w: price %q", ErrMalformedLine, fields[fieldPrice])
		}
		if cmd.Qty, err = parseInt(fields, fieldQuantity, "quantity"); err != nil {
			return nil, err
		}
	case CANCEL:
		if err = require(fields, fieldTrader); err != nil {
			return nil, err
		}
		cmd.Trader = fields[fieldTrader]
	}

	return cmd, nil
}

func require(fields []string, last int) error {
	if len(fields) <= last {
		return fmt.Errorf("%w: %s expects %d fields, got %d", ErrMalformedLine, fields[fieldKeyword], last+1, len(fields))
	}
	return nil
}

func parseInt(fields []string, i int, name string) (int64, error) {
	v, err := strconv.ParseInt(fields[i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedLine, name, fields[i])
	}
	return v, nil
}
