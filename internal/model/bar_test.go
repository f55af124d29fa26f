package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func bar(d int, close float64) PriceBar {
	return PriceBar{Date: day(d), Open: close, High: close + 1, Low: close - 1, Close: close, Volume: 1000}
}

func TestNormalize_SortsAndDeduplicates(t *testing.T) {
	s := PriceSeries{Bars: []PriceBar{bar(26, 103), bar(24, 101), bar(25, 102), bar(25, 102.5)}}
	s.Normalize()

	require.Equal(t, 3, s.Len())
	assert.Equal(t, day(24), s.Bars[0].Date)
	assert.InDelta(t, 102.5, s.Bars[1].Close, 1e-9, "restated day keeps the later row")
	assert.Equal(t, day(26), s.Bars[2].Date)
	assert.NoError(t, s.Validate())
}

func TestValidate(t *testing.T) {
	good := PriceSeries{Bars: []PriceBar{bar(24, 101), bar(25, 102)}}
	assert.NoError(t, good.Validate())

	unsorted := PriceSeries{Bars: []PriceBar{bar(25, 102), bar(24, 101)}}
	assert.Error(t, unsorted.Validate())

	duplicate := PriceSeries{Bars: []PriceBar{bar(24, 101), bar(24, 102)}}
	assert.Error(t, duplicate.Validate())

	nonPositive := PriceSeries{Bars: []PriceBar{{Date: day(24), Open: 0, High: 1, Low: 0.5, Close: 1, Volume: 10}}}
	assert.Error(t, nonPositive.Validate())

	outsideRange := PriceSeries{Bars: []PriceBar{{Date: day(24), Open: 100, High: 102, Low: 101, Close: 101.5, Volume: 10}}}
	assert.Error(t, outsideRange.Validate())

	negativeVolume := PriceSeries{Bars: []PriceBar{{Date: day(24), Open: 100, High: 102, Low: 99, Close: 101, Volume: -1}}}
	assert.Error(t, negativeVolume.Validate())
}

func TestLatestAndColumns(t *testing.T) {
	empty := PriceSeries{}
	_, ok := empty.Latest()
	assert.False(t, ok)

	s := PriceSeries{Bars: []PriceBar{bar(24, 101), bar(25, 102)}}
	latest, ok := s.Latest()
	require.True(t, ok)
	assert.InDelta(t, 102.0, latest.Close, 1e-9)
	assert.Equal(t, []float64{101, 102}, s.Closes())
	assert.Equal(t, []float64{1000, 1000}, s.Volumes())
}
