package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/xyhelper/boundedqueue/internal/shop"
)

// options is the resolved command line configuration.
type options struct {
	shop     shop.Config
	logLevel zerolog.Level
	json     bool
}

// fileConfig is the TOML config file layout. Durations are Go duration
// strings, e.g. "20s".
type fileConfig struct {
	Capacity     int    `toml:"capacity"`
	Customers    int    `toml:"customers"`
	Items        int    `toml:"items"`
	Duration     string `toml:"duration"`
	ProduceDelay string `toml:"produce_delay"`
	ConsumeDelay string `toml:"consume_delay"`
	ItemPrefix   string `toml:"item_prefix"`
	LogLevel     string `toml:"log_level"`
	JSON         bool   `toml:"json"`
}

// parseOptions resolves options from defaults, then the optional -config
// file, then any explicitly set flags. Returns flag.ErrHelp for -h.
func parseOptions(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("shop", flag.ContinueOnError)
	fs.SetOutput(output)
	var (
		configPath   = fs.String("config", "", "path to a TOML config file")
		capacity     = fs.Int("capacity", shop.DefaultCapacity, "shelf capacity")
		customers    = fs.Int("customers", shop.DefaultCustomers, "number of customers")
		items        = fs.Int("items", 0, "total items to stock, 0 for no limit")
		duration     = fs.Duration("duration", 20*time.Second, "run duration, 0 for no limit")
		produceDelay = fs.Duration("produce-delay", 0, "owner pause between items")
		consumeDelay = fs.Duration("consume-delay", 200*time.Millisecond, "customer pause between purchases")
		itemPrefix   = fs.String("item-prefix", shop.DefaultItemPrefix, "item name prefix")
		logLevel     = fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
		jsonLogs     = fs.Bool("json", false, "log JSON instead of console output")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	o := &options{
		shop: shop.Config{
			Capacity:     *capacity,
			Customers:    *customers,
			Items:        *items,
			Duration:     *duration,
			ProduceDelay: *produceDelay,
			ConsumeDelay: *consumeDelay,
			ItemPrefix:   *itemPrefix,
		},
		json: *jsonLogs,
	}
	level := *logLevel

	if *configPath != "" {
		var fc fileConfig
		md, err := toml.DecodeFile(*configPath, &fc)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", *configPath, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) != 0 {
			return nil, fmt.Errorf("config %s: unknown keys %v", *configPath, undecoded)
		}
		apply := func(flagName, key string, fn func() error) error {
			if set[flagName] || !md.IsDefined(key) {
				return nil
			}
			if err := fn(); err != nil {
				return fmt.Errorf("config %s: %s: %w", *configPath, key, err)
			}
			return nil
		}
		err = errors.Join(
			apply("capacity", "capacity", func() error { o.shop.Capacity = fc.Capacity; return nil }),
			apply("customers", "customers", func() error { o.shop.Customers = fc.Customers; return nil }),
			apply("items", "items", func() error { o.shop.Items = fc.Items; return nil }),
			apply("duration", "duration", func() (err error) { o.shop.Duration, err = time.ParseDuration(fc.Duration); return }),
			apply("produce-delay", "produce_delay", func() (err error) { o.shop.ProduceDelay, err = time.ParseDuration(fc.ProduceDelay); return }),
			apply("consume-delay", "consume_delay", func() (err error) { o.shop.ConsumeDelay, err = time.ParseDuration(fc.ConsumeDelay); return }),
			apply("item-prefix", "item_prefix", func() error { o.shop.ItemPrefix = fc.ItemPrefix; return nil }),
			apply("log-level", "log_level", func() error { level = fc.LogLevel; return nil }),
			apply("json", "json", func() error { o.json = fc.JSON; return nil }),
		)
		if err != nil {
			return nil, err
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	o.logLevel = lvl
	return o, nil
}
