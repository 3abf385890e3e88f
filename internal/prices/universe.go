package prices

import "folio/internal/util"

// list of symbols screened when no candidates are given

func GetUniverseAssets() []string {
	oneoffs := []string{
		"COIN",
		"HOOD",
		"AAPL",
	}

	return util.NewSet(append(GetEtfSymbols(), oneoffs...)...).List()
}

// broad, liquid funds across asset classes
func GetEtfSymbols() []string {
	return []string{
		"SPY",
		"QQQ",
		"IWM",
		"EFA",
		"EEM",
		"VNQ",
		"TLT",
		"IEF",
		"LQD",
		"HYG",
		"GLD",
		"SLV",
		"DBC",
		"XLE",
		"XLU",
		"XLV",
		"XLP",
	}
}
