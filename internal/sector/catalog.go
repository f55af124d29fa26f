package sector

// Unknown is the sector reported for tickers missing from the catalog.
// Unknown-sector tickers are exempt from diversification caps.
const Unknown = "Unknown"

// Catalog maps tickers to sectors. It is injected wherever sector
// information is needed rather than kept as package-level state.
type Catalog struct {
	m map[string]string
}

// NewCatalog builds a catalog from an explicit mapping.
func NewCatalog(m map[string]string) *Catalog {
	c := &Catalog{m: make(map[string]string, len(m))}
	for ticker, s := range m {
		c.m[ticker] = s
	}
	return c
}

// Lookup returns the sector for a ticker, or Unknown.
func (c *Catalog) Lookup(ticker string) string {
	if s, ok := c.m[ticker]; ok {
		return s
	}
	return Unknown
}

// Known reports whether the ticker has a curated sector entry.
func (c *Catalog) Known(ticker string) bool {
	_, ok := c.m[ticker]
	return ok
}

// DefaultCatalog returns the hand-curated catalog of major US equities.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultSectors)
}

var defaultSectors = map[string]string{
	// Technology
	"AAPL": "Technology", "MSFT": "Technology", "GOOGL": "Technology", "GOOG": "Technology",
	"META": "Technology", "NVDA": "Technology", "AMD": "Technology", "INTC": "Technology",
	"CRM": "Technology", "ADBE": "Technology", "ORCL": "Technology", "CSCO": "Technology",
	"PYPL": "Technology", "SQ": "Technology", "SHOP": "Technology", "SNOW": "Technology",
	"CRWD": "Technology", "ZS": "Technology", "OKTA": "Technology", "PANW": "Technology",
	"NET": "Technology", "DDOG": "Technology", "FTNT": "Technology", "CYBR": "Technology",
	"PLTR": "Technology", "RBLX": "Technology", "U": "Technology", "SPOT": "Technology",

	// Healthcare
	"JNJ": "Healthcare", "UNH": "Healthcare", "PFE": "Healthcare", "ABBV": "Healthcare",
	"LLY": "Healthcare", "MRK": "Healthcare", "TMO": "Healthcare", "ABT": "Healthcare",
	"DHR": "Healthcare", "BMY": "Healthcare", "AMGN": "Healthcare", "GILD": "Healthcare",
	"REGN": "Healthcare", "VRTX": "Healthcare", "BIIB": "Healthcare", "MDT": "Healthcare",
	"ISRG": "Healthcare", "SYK": "Healthcare", "BSX": "Healthcare", "ZTS": "Healthcare",

	// Finance
	"BRK.B": "Finance", "JPM": "Finance", "V": "Finance", "MA": "Finance", "BAC": "Finance",
	"WFC": "Finance", "GS": "Finance", "MS": "Finance", "C": "Finance", "AXP": "Finance",
	"BLK": "Finance", "SPGI": "Finance", "ICE": "Finance", "CME": "Finance", "CB": "Finance",
	"AON": "Finance", "AFL": "Finance", "MMC": "Finance", "AJG": "Finance", "TRV": "Finance",
	"ALL": "Finance", "MET": "Finance", "PRU": "Finance", "LNC": "Finance", "HIG": "Finance",

	// Consumer
	"AMZN": "Consumer", "TSLA": "Consumer", "HD": "Consumer", "MCD": "Consumer",
	"NKE": "Consumer", "LOW": "Consumer", "TJX": "Consumer", "TGT": "Consumer",
	"COST": "Consumer", "WMT": "Consumer", "BKNG": "Consumer", "EXPE": "Consumer",
	"DECK": "Consumer", "LULU": "Consumer", "PTON": "Consumer", "EL": "Consumer",

	// Energy
	"XOM": "Energy", "CVX": "Energy", "COP": "Energy", "EOG": "Energy", "SLB": "Energy",
	"HAL": "Energy", "OXY": "Energy", "BP": "Energy", "SHEL": "Energy",
	"ENB": "Energy", "KMI": "Energy", "WMB": "Energy", "ET": "Energy", "MPC": "Energy",

	// Industrials
	"BA": "Industrial", "CAT": "Industrial", "GE": "Industrial", "HON": "Industrial",
	"UPS": "Industrial", "RTX": "Industrial", "LMT": "Industrial", "NOC": "Industrial",
	"GD": "Industrial", "DE": "Industrial", "MMM": "Industrial",
	"PH": "Industrial", "ITW": "Industrial", "ETN": "Industrial", "EMR": "Industrial",
	"CARR": "Industrial", "OTIS": "Industrial", "GEV": "Industrial", "TXT": "Industrial",

	// Materials
	"LIN": "Materials", "APD": "Materials", "ECL": "Materials", "DD": "Materials",
	"DOW": "Materials", "NEM": "Materials", "FCX": "Materials", "BHP": "Materials",
	"RIO": "Materials", "VALE": "Materials", "AA": "Materials", "ALB": "Materials",

	// Utilities
	"NEE": "Utilities", "DUK": "Utilities", "SO": "Utilities", "AEP": "Utilities",
	"XEL": "Utilities", "ED": "Utilities", "PEG": "Utilities", "WEC": "Utilities",
	"EIX": "Utilities", "SRE": "Utilities", "CNP": "Utilities", "AWK": "Utilities",

	// Real estate
	"AMT": "Real Estate", "PLD": "Real Estate", "CCI": "Real Estate", "EQIX": "Real Estate",
	"PSA": "Real Estate", "SPG": "Real Estate", "VTR": "Real Estate", "WELL": "Real Estate",
	"DLR": "Real Estate", "EXR": "Real Estate", "AVB": "Real Estate", "EQR": "Real Estate",

	// Communication services
	"VZ": "Communications", "T": "Communications", "TMUS": "Communications",
	"CHTR": "Communications", "CMCSA": "Communications", "DIS": "Communications",
	"NFLX": "Communications", "FOXA": "Communications", "WBD": "Communications",
	"PARA": "Communications", "ROKU": "Communications",
}
