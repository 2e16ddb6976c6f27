// Package shop runs a producer/consumer simulation over a blockingqueue.Queue:
// one owner stocks numbered items onto a bounded shelf while customers buy
// them concurrently.
package shop

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/xyhelper/boundedqueue/blockingqueue"
)

// ErrAlreadyRun is returned by Run on a Shop that has already been run.
var ErrAlreadyRun = errors.New("shop: already run")

const ownerName = "owner"

// Shop owns one shelf and runs it once.
type Shop struct {
	cfg   Config
	log   zerolog.Logger
	shelf *blockingqueue.Queue[string]
	ran   atomic.Bool
}

// New validates cfg, applies defaults and opens the shelf. Pass zerolog.Nop()
// to disable logging.
func New(cfg Config, logger zerolog.Logger) (*Shop, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	shelf, err := blockingqueue.New[string](cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("shop: %w", err)
	}
	return &Shop{
		cfg:   cfg,
		log:   logger,
		shelf: shelf,
	}, nil
}

// Config returns the effective configuration, defaults applied.
func (s *Shop) Config() Config { return s.cfg }

// Run starts the owner and the customers and blocks until the run ends: every
// item sold (when Config.Items is set), Config.Duration elapsed, or ctx done.
// The shelf is closed when the run ends, which wakes every parked goroutine.
//
// Closure and cancellation are normal endings and are not reported as errors.
// A Shop may only be run once.
func (s *Shop) Run(ctx context.Context) (*Report, error) {
	if s.ran.Swap(true) {
		return nil, ErrAlreadyRun
	}
	start := time.Now()

	if s.cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Duration)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, func() { s.shelf.Close() })
	defer stop()

	s.log.Info().
		Int("capacity", s.cfg.Capacity).
		Int("customers", s.cfg.Customers).
		Int("items", s.cfg.Items).
		Dur("duration", s.cfg.Duration).
		Msg("shop open")

	var (
		produced atomic.Int64
		sold     atomic.Int64
		names    = make([]string, s.cfg.Customers)
		sales    = make([][]string, s.cfg.Customers)
	)

	g.Go(func() error {
		return s.stock(gctx, &produced)
	})
	for i := range names {
		names[i] = "customer-" + strconv.Itoa(i+1)
		i := i
		g.Go(func() error {
			return s.buy(gctx, names[i], &sales[i], &sold)
		})
	}

	err := g.Wait()
	s.shelf.Close()

	r := &Report{
		Produced: int(produced.Load()),
		Sold:     make(map[string][]string, len(sales)),
		Leftover: s.shelf.Drain(),
		Stats:    s.shelf.Stats(),
		Elapsed:  time.Since(start),
	}
	for i, name := range names {
		r.Sold[name] = sales[i]
	}

	s.log.Info().
		Int("produced", r.Produced).
		Int("sold", r.SoldCount()).
		Int("leftover", len(r.Leftover)).
		Int("high_water", r.Stats.HighWater).
		Dur("elapsed", r.Elapsed).
		Msg("shop closed")

	return r, err
}

// stock is the owner loop.
func (s *Shop) stock(ctx context.Context, produced *atomic.Int64) error {
	log := s.log.With().Str("role", ownerName).Logger()
	for n := 1; s.cfg.Items == 0 || n <= s.cfg.Items; n++ {
		if !pause(ctx, s.cfg.ProduceDelay) {
			log.Debug().Err(ctx.Err()).Msg("stop requested")
			return nil
		}
		item := s.cfg.ItemPrefix + strconv.Itoa(n)
		if err := s.shelf.Put(ctx, item); err != nil {
			if blockingqueue.IsTerminal(err) {
				log.Debug().Err(err).Msg("stopped")
				return nil
			}
			return fmt.Errorf("shop: stock %s: %w", item, err)
		}
		produced.Add(1)
		depth := s.shelf.Len()
		log.Debug().Str("item", item).Int("depth", depth).Msg("stocked")
		s.observe(Event{Kind: Stocked, Who: ownerName, Item: item, Depth: depth})
	}
	log.Debug().Int("items", s.cfg.Items).Msg("sold out of stock")
	return nil
}

// buy is a customer loop. Only this goroutine appends to *bought.
func (s *Shop) buy(ctx context.Context, name string, bought *[]string, sold *atomic.Int64) error {
	log := s.log.With().Str("role", "customer").Str("customer", name).Logger()
	for {
		if !pause(ctx, s.cfg.ConsumeDelay) {
			log.Debug().Err(ctx.Err()).Msg("stop requested")
			return nil
		}
		item, err := s.shelf.Take(ctx)
		if err != nil {
			if blockingqueue.IsTerminal(err) {
				log.Debug().Err(err).Msg("stopped")
				return nil
			}
			return fmt.Errorf("shop: %s: %w", name, err)
		}
		*bought = append(*bought, item)
		depth := s.shelf.Len()
		log.Debug().Str("item", item).Int("depth", depth).Msg("sold")
		s.observe(Event{Kind: Sold, Who: name, Item: item, Depth: depth})
		if s.cfg.Items > 0 && sold.Add(1) == int64(s.cfg.Items) {
			log.Debug().Msg("last item sold, closing shelf")
			s.shelf.Close()
		}
	}
}

func (s *Shop) observe(e Event) {
	if s.cfg.Observe != nil {
		s.cfg.Observe(e)
	}
}

// pause waits for d, or returns false early if ctx ends. It is the loop-top
// cancellation check, so it also returns false for an already ended ctx.
func pause(ctx context.Context, d time.Duration) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
