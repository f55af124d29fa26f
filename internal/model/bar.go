package model

import (
	"fmt"
	"sort"
	"time"
)

// PriceBar represents a single daily OHLCV bar.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the ordered daily history for one ticker, strictly
// ascending by date. Calendar gaps (weekends, holidays) are fine; duplicate
// dates are not.
type PriceSeries struct {
	Ticker string
	Bars   []PriceBar
}

// Len returns the number of bars in the series.
func (s PriceSeries) Len() int { return len(s.Bars) }

// Latest returns the most recent bar, or false if the series is empty.
func (s PriceSeries) Latest() (PriceBar, bool) {
	if len(s.Bars) == 0 {
		return PriceBar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}

// Closes returns the close column.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes returns the volume column.
func (s PriceSeries) Volumes() []float64 {
	vols := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		vols[i] = b.Volume
	}
	return vols
}

// Normalize sorts the bars by date and collapses duplicate dates,
// keeping the later entry (last write wins).
func (s *PriceSeries) Normalize() {
	sort.SliceStable(s.Bars, func(i, j int) bool {
		return s.Bars[i].Date.Before(s.Bars[j].Date)
	})
	out := s.Bars[:0]
	for _, b := range s.Bars {
		if n := len(out); n > 0 && sameDay(out[n-1].Date, b.Date) {
			out[n-1] = b
			continue
		}
		out = append(out, b)
	}
	s.Bars = out
}

// Validate checks ordering and basic price sanity of the series.
func (s PriceSeries) Validate() error {
	for i, b := range s.Bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("bar %d (%s): non-positive price", i, b.Date.Format("2006-01-02"))
		}
		if b.Low > b.Open || b.Low > b.Close || b.High < b.Open || b.High < b.Close {
			return fmt.Errorf("bar %d (%s): open/close outside low/high range", i, b.Date.Format("2006-01-02"))
		}
		if b.Volume < 0 {
			return fmt.Errorf("bar %d (%s): negative volume", i, b.Date.Format("2006-01-02"))
		}
		if i > 0 && !s.Bars[i-1].Date.Before(b.Date) {
			return fmt.Errorf("bar %d (%s): dates not strictly ascending", i, b.Date.Format("2006-01-02"))
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
