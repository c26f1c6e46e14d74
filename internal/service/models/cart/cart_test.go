package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chokun100/coffeeshop/internal/service/models/variant"
)

func TestSugarFromPercent(t *testing.T) {
	tests := []struct {
		pct  int
		want variant.SugarLevel
	}{
		{0, variant.SugarNone},
		{-10, variant.SugarNone},
		{1, variant.SugarLess},
		{25, variant.SugarLess},
		{26, variant.SugarNormal},
		{50, variant.SugarNormal},
		{51, variant.SugarExtra},
		{75, variant.SugarExtra},
		{100, variant.SugarExtra},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SugarFromPercent(tt.pct), "pct %d", tt.pct)
	}
}

func TestPercentFromSugar_RoundTripsToSameBucket(t *testing.T) {
	for _, level := range []variant.SugarLevel{
		variant.SugarNone, variant.SugarLess, variant.SugarNormal, variant.SugarExtra,
	} {
		assert.Equal(t, level, SugarFromPercent(PercentFromSugar(level)))
	}
}

func TestLine_UnitPriceCents(t *testing.T) {
	line := Line{BasePriceCents: 85, ExtraShots: 2}
	assert.Equal(t, int64(105), line.UnitPriceCents())

	line.Quantity = 3
	assert.Equal(t, int64(315), line.TotalCents())
}

func TestLine_UnitPriceCents_ClampsShots(t *testing.T) {
	tooMany := Line{BasePriceCents: 85, ExtraShots: 10}
	assert.Equal(t, int64(85+MaxExtraShots*ExtraShotPriceCents), tooMany.UnitPriceCents())

	negative := Line{BasePriceCents: 85, ExtraShots: -1}
	assert.Equal(t, int64(85), negative.UnitPriceCents())
}

func TestLine_Key(t *testing.T) {
	line := Line{ItemID: 7, SweetPct: 50, ExtraShots: 1, Notes: "  oat milk  "}
	assert.Equal(t, "7|s:50|x:1|n:oat milk", line.Key())

	salted := line
	salted.Salt = "edit-3"
	assert.Equal(t, "7|s:50|x:1|n:oat milk|u:edit-3", salted.Key())
	assert.NotEqual(t, line.Key(), salted.Key())
}

func TestCart_Add_MergesIdenticalConfigurations(t *testing.T) {
	c := New()
	latte := Line{ItemID: 1, Name: "Latte", BasePriceCents: 85, SweetPct: 50}

	c.Add(latte)
	c.Add(latte)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(170), c.TotalCents())
}

func TestCart_Add_KeepsDistinctConfigurationsSeparate(t *testing.T) {
	c := New()
	c.Add(Line{ItemID: 1, BasePriceCents: 85, SweetPct: 50})
	c.Add(Line{ItemID: 1, BasePriceCents: 85, SweetPct: 0})
	c.Add(Line{ItemID: 1, BasePriceCents: 85, SweetPct: 50, ExtraShots: 1})

	assert.Len(t, c.Lines(), 3)
}

func TestLine_Key_NormalizesSweetnessToBucket(t *testing.T) {
	sweeter := Line{ItemID: 1, SweetPct: 75}
	sweetest := Line{ItemID: 1, SweetPct: 100}

	require.Equal(t, sweeter.SugarLevel(), sweetest.SugarLevel())
	assert.Equal(t, sweeter.Key(), sweetest.Key())

	less := Line{ItemID: 1, SweetPct: 10}
	assert.Equal(t, "1|s:25|x:0|n:", less.Key())
}

func TestCart_Add_MergesSameSugarBucket(t *testing.T) {
	c := New()
	c.Add(Line{ItemID: 1, BasePriceCents: 85, SweetPct: 75})
	c.Add(Line{ItemID: 1, BasePriceCents: 85, SweetPct: 100})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_Add_SaltPreventsMerge(t *testing.T) {
	c := New()
	c.Add(Line{ItemID: 1, BasePriceCents: 85})
	c.Add(Line{ItemID: 1, BasePriceCents: 85, Salt: "a"})

	assert.Len(t, c.Lines(), 2)
}

func TestCart_TotalCents(t *testing.T) {
	c := New()
	c.Add(Line{ItemID: 1, BasePriceCents: 85, ExtraShots: 2, Quantity: 3})
	c.Add(Line{ItemID: 2, BasePriceCents: 100, Quantity: 1})

	assert.Equal(t, int64(315+100), c.TotalCents())
}
