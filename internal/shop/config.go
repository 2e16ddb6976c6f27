package shop

import (
	"errors"
	"fmt"
	"time"
)

// Defaults applied by New to zero-valued Config fields.
const (
	DefaultCapacity   = 20
	DefaultCustomers  = 2
	DefaultItemPrefix = "SHOPPING-NO."
)

// ErrInvalidConfig is returned by New when a Config field is out of range.
var ErrInvalidConfig = errors.New("shop: invalid config")

// Config models the shop run. The zero value is usable: it opens a shelf of
// DefaultCapacity with DefaultCustomers customers, stocks items without limit,
// and runs until the context passed to Run ends.
type Config struct {
	// Capacity is the number of items the shelf holds.
	//
	// Defaults to DefaultCapacity, if 0.
	Capacity int

	// Customers is the number of consumer goroutines.
	//
	// Defaults to DefaultCustomers, if 0.
	Customers int

	// Items is the total number of items the owner stocks. Once every item
	// has been sold the shelf is closed and Run returns. 0 means no limit.
	Items int

	// Duration bounds the run. 0 means no bound beyond the context.
	Duration time.Duration

	// ProduceDelay and ConsumeDelay pause the owner and each customer at the
	// top of every iteration. 0 means no pause.
	ProduceDelay, ConsumeDelay time.Duration

	// ItemPrefix prefixes the item sequence number, starting from 1.
	//
	// Defaults to DefaultItemPrefix, if empty.
	ItemPrefix string

	// Observe, if non-nil, is called after every successful stock or sale. It
	// is called concurrently from the owner and customer goroutines.
	Observe func(Event)
}

func (c Config) withDefaults() Config {
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.Customers == 0 {
		c.Customers = DefaultCustomers
	}
	if c.ItemPrefix == "" {
		c.ItemPrefix = DefaultItemPrefix
	}
	return c
}

func (c Config) validate() error {
	switch {
	case c.Capacity < 0:
		return fmt.Errorf("%w: capacity %d", ErrInvalidConfig, c.Capacity)
	case c.Customers < 0:
		return fmt.Errorf("%w: customers %d", ErrInvalidConfig, c.Customers)
	case c.Items < 0:
		return fmt.Errorf("%w: items %d", ErrInvalidConfig, c.Items)
	case c.Duration < 0:
		return fmt.Errorf("%w: duration %s", ErrInvalidConfig, c.Duration)
	case c.ProduceDelay < 0:
		return fmt.Errorf("%w: produce delay %s", ErrInvalidConfig, c.ProduceDelay)
	case c.ConsumeDelay < 0:
		return fmt.Errorf("%w: consume delay %s", ErrInvalidConfig, c.ConsumeDelay)
	}
	return nil
}
