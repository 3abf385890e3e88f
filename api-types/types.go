package types

type PriceWindow struct {
	Symbols []string `json:"symbols"`
	// days of history to load, defaults to three years
	LookbackDays int `json:"lookbackDays"`
	// return period in trading days, defaults to 1
	Period int `json:"period"`
}

type StatisticsRequest struct {
	PriceWindow
	ExtraPeriods []int `json:"extraPeriods"`
}

type PeriodStatistics struct {
	Period int      `json:"period"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Stdev  *float64 `json:"stdev"`
	Sharpe *float64 `json:"sharpe"`
}

type SymbolStatistics struct {
	Symbol string `json:"symbol"`
	PeriodStatistics
	Yield    *float64           `json:"yield"`
	Drawdown *float64           `json:"drawdown"`
	Extra    []PeriodStatistics `json:"extra,omitempty"`
}

type StatisticsResponse struct {
	Statistics []SymbolStatistics `json:"statistics"`
}

type CorrelationMatrixRequest struct {
	PriceWindow
}

type Correlation struct {
	AssetOne    string   `json:"assetOne"`
	AssetTwo    string   `json:"assetTwo"`
	Correlation *float64 `json:"correlation"`
}

type CorrelationMatrixResponse struct {
	Correlations []Correlation `json:"correlations"`
}

type OptimizePortfolioRequest struct {
	PriceWindow
	Total             float64 `json:"total"`
	MinPercent        float64 `json:"minPercent"`
	MaxCount          int     `json:"maxCount"`
	PositiveThreshold float64 `json:"positiveThreshold"`
	NegativeThreshold float64 `json:"negativeThreshold"`
	Lambda            float64 `json:"lambda"`
}

type Basket struct {
	Weights    map[string]float64 `json:"weights"`
	Mean       *float64           `json:"mean"`
	Stdev      *float64           `json:"stdev"`
	Sharpe     *float64           `json:"sharpe"`
	Score      *float64           `json:"score"`
	Converged  bool               `json:"converged"`
	Degenerate bool               `json:"degenerate"`
}

type OptimizePortfolioResponse struct {
	// best basket last
	Baskets []Basket `json:"baskets"`
	Best    *Basket  `json:"best"`
}

type LeastCorrelatedPortfolioRequest struct {
	PriceWindow
	Size              int      `json:"size"`
	Provided          []string `json:"provided"`
	Optional          []int    `json:"optional"`
	CorrelationWeight float64  `json:"correlationWeight"`
	DrawdownWeight    float64  `json:"drawdownWeight"`
	SharpeWeight      float64  `json:"sharpeWeight"`
}

type LeastCorrelatedPortfolioResponse struct {
	Symbols []string `json:"symbols"`
}
