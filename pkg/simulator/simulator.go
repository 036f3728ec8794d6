package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/littlen101/SingleStock/config"
	"github.com/littlen101/SingleStock/pkg/command"
	"github.com/littlen101/SingleStock/pkg/journal"
	"github.com/littlen101/SingleStock/pkg/logging"
	"github.com/littlen101/SingleStock/pkg/orderbook"
	"github.com/littlen101/SingleStock/pkg/report"
	"go.uber.org/zap"
)

type Stats struct {
	Commands int
	Rejected int
	Skipped  int
	Trades   int
	Volume   int64
}

// Simulator feeds commands to a market one at a time and reports each
// outcome. Every command runs to completion before the next is read.
type Simulator struct {
	market          *orderbook.Market
	out             *report.Writer
	logger          *logging.Logger
	journal         journal.EventStore
	failOnMalformed bool

	stats Stats
}

func New(cfg *config.AppConfig, out io.Writer, logger *logging.Logger) *Simulator {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Wrap(zap.NewNop())
	}

	s := &Simulator{
		market:          orderbook.NewMarket(&orderbook.MarketConfig{PricePlaces: cfg.PricePlaces}),
		out:             report.NewWriter(out),
		logger:          logger,
		journal:         journal.NewInMemoryEventStore(),
		failOnMalformed: cfg.OnMalformedLine == config.MalformedFail,
	}
	s.market.RegisterTradeCallback(func(r orderbook.MatchResult) {
		s.stats.Trades++
		s.stats.Volume += r.Qty
		s.journal.AddEvent(journal.NewOrderEventTrade(r, orderbook.BUY))
		s.journal.AddEvent(journal.NewOrderEventTrade(r, orderbook.SELL))
	})

	return s
}

func (s *Simulator) Market() *orderbook.Market {
	return s.market
}

func (s *Simulator) Journal() journal.EventStore {
	return s.journal
}

func (s *Simulator) Stats() Stats {
	return s.stats
}

// Run processes every line of r. It stops early when ctx is done; a command
// already started always completes.
func (s *Simulator) Run(ctx context.Context, r io.Reader) error {
	src := command.NewLineSource(r)
	for {
		if err := ctx.Err(); err != nil {
			return errors.Join(err, s.out.Flush())
		}

		line, ok := src.Next()
		if !ok {
			break
		}

		err := s.HandleLine(ctx, line)
		if err == nil {
			continue
		}
		if errors.Is(err, command.ErrMalformedLine) && !s.failOnMalformed {
			s.stats.Skipped++
			s.logger.Warn(ctx, "skip malformed line", zap.Int("line", src.LineNo()), zap.Error(err))
			continue
		}
		return errors.Join(fmt.Errorf("line %d: %w", src.LineNo(), err), s.out.Flush())
	}

	if err := src.Err(); err != nil {
		return errors.Join(fmt.Errorf("read commands: %w", err), s.out.Flush())
	}

	s.logger.Info(ctx, "run finished",
		zap.Int("commands", s.stats.Commands),
		zap.Int("rejected", s.stats.Rejected),
		zap.Int("skipped", s.stats.Skipped),
		zap.Int("trades", s.stats.Trades),
		zap.Int64("volume", s.stats.Volume),
	)
	return s.out.Flush()
}

// HandleLine parses and handles one input line. Blank lines are ignored.
func (s *Simulator) HandleLine(ctx context.Context, line string) error {
	cmd, err := command.Parse(line)
	if err != nil {
		return err
	}
	if cmd == nil {
		return nil
	}
	return s.Handle(ctx, cmd)
}

// Handle applies one command: mutate a book, report, then run a single
// match check. Display commands only report.
func (s *Simulator) Handle(ctx context.Context, cmd *command.Command) error {
	s.stats.Commands++

	if cmd.Action == command.DISPLAY {
		best, _ := s.market.Book(cmd.Side).Best()
		s.out.Echo(cmd.Fields, report.DescribeOrder(best))
		return s.out.Err()
	}

	err := s.apply(cmd)
	switch {
	case err == nil:
	case errors.Is(err, orderbook.ErrDuplicateTrader), errors.Is(err, orderbook.ErrTraderNotFound):
		s.stats.Rejected++
		s.logger.Debug(ctx, "command rejected",
			zap.String("keyword", cmd.Keyword()),
			zap.String("trader", cmd.Trader),
			zap.Error(err),
		)
	default:
		return fmt.Errorf("%s %s: %w", cmd.Action, cmd.Trader, err)
	}
	s.record(cmd, err)
	s.out.Echo(cmd.Fields, report.Token(cmd.Side, err))

	if r, ok := s.market.Match(); ok {
		s.logger.Debug(ctx, "trade executed",
			zap.String("price", r.Price.String()),
			zap.Int64("qty", r.Qty),
			zap.String("buyer", r.Buyer),
			zap.String("seller", r.Seller),
		)
		s.out.Trade(r)
	}
	return s.out.Err()
}

func (s *Simulator) apply(cmd *command.Command) error {
	book := s.market.Book(cmd.Side)

	switch cmd.Action {
	case command.SUBMIT:
		return book.Submit(cmd.Trader, cmd.Time, cmd.Price, cmd.Qty)
	case command.AMEND:
		return book.Amend(cmd.Trader, cmd.Time, cmd.Price, cmd.Qty)
	case command.CANCEL:
		return book.Cancel(cmd.Trader)
	}
	return nil
}

var execTypes = map[command.Action]journal.ExecType{
	command.SUBMIT: journal.ExecTypeNew,
	command.AMEND:  journal.ExecTypeReplaced,
	command.CANCEL: journal.ExecTypeCanceled,
}

func (s *Simulator) record(cmd *command.Command, err error) {
	execType, ok := execTypes[cmd.Action]
	if !ok {
		return
	}
	if err != nil {
		execType = journal.ExecTypeRejected
	}

	s.journal.AddEvent(&journal.OrderEvent{
		Side:     cmd.Side,
		Trader:   cmd.Trader,
		ExecType: execType,
		Time:     cmd.Time,
		Price:    cmd.Price,
		Qty:      cmd.Qty,
	})
}
