package marketdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"VolatilityHunter/internal/model"
)

// FileProvider reads per-ticker CSV files from a data directory. Expected
// columns: date,Open,High,Low,Close,Volume with an ISO date. Duplicate dates
// collapse last-write-wins and rows are sorted before return.
type FileProvider struct {
	dir string
}

// NewFileProvider creates a provider reading <dir>/<ticker>.csv.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{dir: dir}
}

func (p *FileProvider) Name() string { return "file:" + p.dir }

// Load reads and normalizes the series for one ticker.
func (p *FileProvider) Load(ticker string) (model.PriceSeries, error) {
	path := filepath.Join(p.dir, ticker+".csv")
	f, err := os.Open(path)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 6
	rows, err := r.ReadAll()
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return model.PriceSeries{}, fmt.Errorf("%s: empty file", path)
	}

	series := model.PriceSeries{Ticker: ticker}
	for i, row := range rows {
		if i == 0 && strings.EqualFold(row[0], "date") {
			continue // header
		}
		bar, err := parseBar(row)
		if err != nil {
			return model.PriceSeries{}, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		series.Bars = append(series.Bars, bar)
	}

	series.Normalize()
	if err := series.Validate(); err != nil {
		return model.PriceSeries{}, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

func parseBar(row []string) (model.PriceBar, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(row[0]))
	if err != nil {
		return model.PriceBar{}, fmt.Errorf("parse date %q: %w", row[0], err)
	}
	vals := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
		if err != nil {
			return model.PriceBar{}, fmt.Errorf("parse column %d %q: %w", i+1, row[i+1], err)
		}
		vals[i] = v
	}
	return model.PriceBar{
		Date:   date,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}
