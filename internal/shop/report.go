package shop

import (
	"sort"
	"time"

	"github.com/xyhelper/boundedqueue/blockingqueue"
)

// EventKind distinguishes stock and sale events.
type EventKind int

const (
	Stocked EventKind = iota
	Sold
)

func (k EventKind) String() string {
	switch k {
	case Stocked:
		return "stocked"
	case Sold:
		return "sold"
	default:
		return "unknown"
	}
}

// Event describes one successful shelf operation.
type Event struct {
	Kind EventKind
	// Who is "owner" or the customer name.
	Who  string
	Item string
	// Depth is the shelf depth observed just after the operation. It is a
	// snapshot and other goroutines may already have changed it.
	Depth int
}

// Report summarises a finished run.
type Report struct {
	// Produced is the number of items successfully placed on the shelf.
	Produced int
	// Sold maps each customer name to the items it bought, in the order it
	// bought them.
	Sold map[string][]string
	// Leftover holds the items still on the shelf when the run ended.
	Leftover []string
	Stats    blockingqueue.Stats
	Elapsed  time.Duration
}

// Customers returns the customer names in sorted order.
func (r *Report) Customers() []string {
	names := make([]string, 0, len(r.Sold))
	for name := range r.Sold {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sales returns every sold item, grouped by customer in Customers order.
func (r *Report) Sales() []string {
	var out []string
	for _, name := range r.Customers() {
		out = append(out, r.Sold[name]...)
	}
	return out
}

// SoldCount returns the total number of items sold.
func (r *Report) SoldCount() int {
	n := 0
	for _, items := range r.Sold {
		n += len(items)
	}
	return n
}
