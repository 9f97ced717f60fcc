package catalog

// Shared parameter definitions.
var (
	symbolParam = Param{
		Name:        "symbol",
		Description: "Stock symbol or company name, eg- INFY or Infosys",
		Required:    true,
	}
	stockNameParam = Param{
		Name:        "stock_name",
		Description: "Name of the stock, eg- Reliance",
		Required:    true,
	}
)

var tools = []Descriptor{
	{
		Name:        "get_ipo_data",
		Path:        "/ipo",
		Description: "Fetches Initial Public Offering (IPO) data from stock.indianapi.in.",
	},
	{
		Name:        "get_news_data",
		Path:        "/news",
		Description: "Fetches latest news data from stock.indianapi.in. Optionally filter by query or symbol.",
		Params: []Param{
			{Name: "query", Query: "q", Description: "Free text search query"},
			{Name: "symbol", Description: "Restrict news to a stock symbol"},
		},
	},
	{
		Name:        "get_stock_details",
		Path:        "/stock",
		Description: "Fetches details for a specific stock from stock.indianapi.in.",
		Params: []Param{
			{Name: "name", Description: "Company or stock name, eg- Tata Steel", Required: true},
		},
	},
	{
		Name:        "get_trending_stocks",
		Path:        "/trending",
		Description: "Fetches currently trending stocks from stock.indianapi.in.",
	},
	{
		Name:        "get_financial_statement",
		Path:        "/statement",
		Description: "Fetches financial statements for a specific stock from stock.indianapi.in.",
		Params: []Param{
			stockNameParam,
			{Name: "stats", Description: "Statistic to fetch, eg- quarter_results", Required: true},
			{Name: "statement_type", Query: "type", Description: "Statement type", Default: "income"},
			{Name: "period", Description: "Reporting period", Default: "annual"},
		},
	},
	{
		Name:        "get_commodities_data",
		Path:        "/commodities",
		Description: "Fetches current data for various commodities from stock.indianapi.in.",
		Params: []Param{
			{Name: "commodity_name", Query: "name", Description: "Restrict to a single commodity, eg- GOLD"},
		},
	},
	{
		Name:        "get_mutual_funds_data",
		Path:        "/mutual_funds",
		Description: "Fetches data on mutual funds from stock.indianapi.in.",
		Params: []Param{
			{Name: "category", Description: "Mutual fund category"},
		},
	},
	{
		Name:        "get_price_shockers_data",
		Path:        "/price_shockers",
		Description: "Fetches data on stocks with significant price changes from stock.indianapi.in.",
	},
	{
		Name:        "get_bse_most_active_stocks",
		Path:        "/BSE_most_active",
		Description: "Fetches the most active stocks on the BSE from stock.indianapi.in.",
	},
	{
		Name:        "get_nse_most_active_stocks",
		Path:        "/NSE_most_active",
		Description: "Fetches the most active stocks on the NSE from stock.indianapi.in.",
	},
	{
		Name:        "get_historical_stock_data",
		Path:        "/historical_data",
		Description: "Fetches historical price data for a stock from stock.indianapi.in.",
		Params: []Param{
			symbolParam,
			{Name: "from_date", Query: "from", Description: "Start of the range, eg- 2024-01-01", Required: true},
			{Name: "to_date", Query: "to", Description: "End of the range, eg- 2024-06-30", Required: true},
			{Name: "interval", Description: "Candle interval", Default: "1d"},
		},
	},
	{
		Name:        "search_by_industry",
		Path:        "/industry_search",
		Description: "Searches for companies or stocks within a specific industry from stock.indianapi.in.",
		Params: []Param{
			{Name: "industry_query", Query: "query", Description: "Industry to search for, eg- banking", Required: true},
		},
	},
	{
		Name:        "get_stock_forecasts",
		Path:        "/stock_forecasts",
		Description: "Fetches analyst stock forecasts or price targets for a specific stock from stock.indianapi.in.",
		Params:      []Param{symbolParam},
	},
	{
		Name:        "get_historical_stats",
		Path:        "/historical_stats",
		Description: "Fetches historical statistical data for a stock from stock.indianapi.in.",
		Params: []Param{
			stockNameParam,
			{Name: "stats", Description: "Statistic to fetch", Default: "volatility"},
		},
	},
	{
		Name:        "get_corporate_actions",
		Path:        "/corporate_actions",
		Description: "Fetches corporate actions data for a stock from stock.indianapi.in.",
		Params: []Param{
			symbolParam,
			{Name: "action_type", Query: "type", Description: "Restrict to one kind of action, eg- dividend"},
		},
	},
	{
		Name:        "search_mutual_funds",
		Path:        "/mutual_fund_search",
		Description: "Searches for mutual funds based on a query from stock.indianapi.in.",
		Params: []Param{
			{Name: "query", Query: "q", Description: "Fund name or keyword", Required: true},
			{Name: "category", Description: "Mutual fund category"},
		},
	},
	{
		Name:        "get_stock_target_price",
		Path:        "/stock_target_price",
		Description: "Fetches the target price for a specific stock from stock.indianapi.in.",
		Params:      []Param{symbolParam},
	},
	{
		Name:        "get_mutual_fund_details",
		Path:        "/mutual_funds_details",
		Description: "Fetches detailed information for a specific mutual fund from stock.indianapi.in.",
		Params: []Param{
			{Name: "scheme_code", Description: "Scheme code of the fund", Required: true},
		},
	},
	{
		Name:        "get_recent_announcements",
		Path:        "/recent_announcements",
		Description: "Fetches recent announcements for a stock or the market from stock.indianapi.in.",
		Params: []Param{
			{Name: "symbol", Description: "Restrict announcements to a stock symbol"},
		},
	},
	{
		Name:        "fetch_52_week_high_low_data",
		Path:        "/fetch_52_week_high_low_data",
		Description: "Fetches stocks near their 52-week high or low from stock.indianapi.in.",
		Params: []Param{
			{Name: "range_type", Query: "type", Description: "Either high or low", Default: "high"},
			{Name: "exchange", Description: "Restrict to an exchange, eg- NSE or BSE"},
		},
	},
}
