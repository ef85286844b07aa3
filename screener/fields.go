package screener

// FieldSpec binds a record field to its search plan.
type FieldSpec struct {
	Name  string
	Query Query
}

var allStrategies = []Strategy{StrategyRatioList, StrategyTableRow, StrategyListItem, StrategyFreeText}

// Per-share values live in the top-ratios summary, holding percentages in
// the shareholding tables; restricting the strategy subset keeps a label
// collision in one region from shadowing the real value in another.
var (
	listBiased  = []Strategy{StrategyRatioList, StrategyListItem}
	tableBiased = []Strategy{StrategyTableRow, StrategyFreeText}
)

// priceQuery is resolved first: a page without a current price is treated
// as a missing symbol even when classification passed.
var priceQuery = Query{
	Groups:     [][]string{{"Current Price"}, {"CMP"}},
	Strategies: allStrategies,
}

var fieldSpecs = []FieldSpec{
	{Name: "market_cap", Query: Query{
		Groups:     [][]string{{"Market Cap", "Market Capitalisation"}},
		Strategies: allStrategies,
	}},
	{Name: "pe_ratio", Query: Query{
		Groups:     [][]string{{"Stock P/E"}, {"P/E Ratio", "Price to Earning"}},
		Strategies: allStrategies,
	}},
	{Name: "industry_pe", Query: Query{
		Groups:     [][]string{{"Industry PE", "Industry P/E"}},
		Strategies: allStrategies,
	}},
	{Name: "roe", Query: Query{
		Groups:     [][]string{{"ROE"}, {"Return on equity"}},
		Strategies: allStrategies,
	}},
	{Name: "book_value", Query: Query{
		Groups:     [][]string{{"Book Value"}},
		Strategies: listBiased,
	}},
	{Name: "dividend_yield", Query: Query{
		Groups:     [][]string{{"Dividend Yield", "Div Yield"}},
		Strategies: listBiased,
	}},
	{Name: "current_ratio", Query: Query{
		Groups:     [][]string{{"Current ratio"}},
		Strategies: tableBiased,
	}},
	{Name: "debt_to_equity", Query: Query{
		Groups:     [][]string{{"Debt to equity", "Debt / Equity"}},
		Strategies: tableBiased,
	}},
	{Name: "promoter_holding", Query: Query{
		Groups:     [][]string{{"Promoter holding", "Promoters"}},
		Strategies: tableBiased,
	}},
	{Name: "promoter_change", Query: Query{
		Groups:     [][]string{{"Chg in Prom Hold", "Change in Prom Hold"}},
		Strategies: tableBiased,
	}},
	{Name: "fii_holding", Query: Query{
		Groups:     [][]string{{"FII holding", "FIIs", "Foreign Institutions"}},
		Strategies: tableBiased,
	}},
}
