package assistant

import "topup-admin/internal/analytics"

// Trend buckets used by the forecast rule.
type Trend int

const (
	TrendDeclining Trend = iota
	TrendStable
	TrendPositive
)

// Game trend thresholds: margin percent paired with unique-buyer counts.
// These are the storefront's fixed business heuristics, not tunables.
const (
	gamePositiveMargin = 15.0
	gamePositiveUsers  = 20
	gameStableMargin   = 10.0
	gameStableUsers    = 10

	productPositiveMargin = 20.0
	productPositiveSold   = 10
	productStableMargin   = 15.0
	productStableSold     = 5
)

// classifyGame buckets a game into a demand trend from its margin and
// unique-player count.
func classifyGame(g analytics.GamePerformance) Trend {
	switch {
	case g.ProfitMargin >= gamePositiveMargin && g.UniqueUsers >= gamePositiveUsers:
		return TrendPositive
	case g.ProfitMargin >= gameStableMargin && g.UniqueUsers >= gameStableUsers:
		return TrendStable
	default:
		return TrendDeclining
	}
}

// classifyProduct buckets a product into a demand trend from its margin and
// units sold.
func classifyProduct(p analytics.ProductPerformance) Trend {
	switch {
	case p.ProfitMargin >= productPositiveMargin && p.Sold >= productPositiveSold:
		return TrendPositive
	case p.ProfitMargin >= productStableMargin && p.Sold >= productStableSold:
		return TrendStable
	default:
		return TrendDeclining
	}
}
