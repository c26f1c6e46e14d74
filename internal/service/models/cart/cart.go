package cart

import (
	"fmt"
	"strings"

	"github.com/chokun100/coffeeshop/internal/service/models/variant"
)

// Cart prices are integer units on the whole-baht scale: an extra shot
// costs 10, a base latte 85. This is NOT the satang scale used by
// menu.Item.PriceCents (Latte 8500); divide a menu price by 100 before
// using it as Line.BasePriceCents.
const (
	ExtraShotPriceCents = 10
	MaxExtraShots       = 3
)

// SugarFromPercent maps a 0-100 sweetness slider value to a sugar bucket.
func SugarFromPercent(pct int) variant.SugarLevel {
	switch {
	case pct <= 0:
		return variant.SugarNone
	case pct <= 25:
		return variant.SugarLess
	case pct <= 50:
		return variant.SugarNormal
	default:
		return variant.SugarExtra
	}
}

// PercentFromSugar maps a sugar bucket back to its representative slider value.
func PercentFromSugar(l variant.SugarLevel) int {
	switch l {
	case variant.SugarNone:
		return 0
	case variant.SugarLess:
		return 25
	case variant.SugarNormal:
		return 50
	default:
		return 75
	}
}

// clampShots bounds the extra-shot count to [0, MaxExtraShots]. Out-of-range
// values are clamped rather than rejected: the count comes from a UI stepper,
// not an API contract.
func clampShots(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxExtraShots {
		return MaxExtraShots
	}

	return n
}

// Line is one configured product entry in a cart.
type Line struct {
	ItemID         int64
	Name           string
	BasePriceCents int64
	SweetPct       int
	ExtraShots     int
	Notes          string
	Quantity       int

	// Salt keeps a line distinct from otherwise identical configurations,
	// e.g. when re-editing one specific cart entry. Empty means merge.
	Salt string
}

// Key builds the variant identity key used for merging duplicate
// configurations. Two lines with equal keys must merge. The sweetness
// component is the bucket's representative percent, not the raw slider
// value, so any two percents in the same bucket produce the same key.
func (l Line) Key() string {
	key := fmt.Sprintf("%d|s:%d|x:%d|n:%s",
		l.ItemID,
		PercentFromSugar(SugarFromPercent(l.SweetPct)),
		clampShots(l.ExtraShots),
		strings.TrimSpace(l.Notes),
	)
	if l.Salt != "" {
		key += "|u:" + l.Salt
	}

	return key
}

// SugarLevel returns the sugar bucket for the line's sweetness percent.
func (l Line) SugarLevel() variant.SugarLevel {
	return SugarFromPercent(l.SweetPct)
}

// UnitPriceCents computes the per-unit price: base price plus extra shots.
func (l Line) UnitPriceCents() int64 {
	return l.BasePriceCents + int64(clampShots(l.ExtraShots))*ExtraShotPriceCents
}

// TotalCents is the line total.
func (l Line) TotalCents() int64 {
	return l.UnitPriceCents() * int64(l.Quantity)
}

// Cart accumulates lines, merging configurations with identical variant keys.
type Cart struct {
	lines []Line
	index map[string]int
}

func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add merges the line into the cart by variant key. Quantities of equal
// configurations are summed; a non-positive quantity defaults to 1.
func (c *Cart) Add(l Line) {
	if l.Quantity <= 0 {
		l.Quantity = 1
	}
	l.ExtraShots = clampShots(l.ExtraShots)

	key := l.Key()
	if i, ok := c.index[key]; ok {
		c.lines[i].Quantity += l.Quantity

		return
	}

	c.index[key] = len(c.lines)
	c.lines = append(c.lines, l)
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)

	return out
}

// TotalCents sums all line totals.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.TotalCents()
	}

	return total
}
