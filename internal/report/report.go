// Package report assembles the downloadable sales report for a selected
// period: headline stats, rankings, payment breakdown and the per-package
// economics table.
package report

import (
	"encoding/json"
	"time"

	"topup-admin/internal/analytics"
	"topup-admin/internal/model"
)

// Stats is the headline block at the top of the report.
type Stats struct {
	Revenue       int64   `json:"revenue"`
	Profit        int64   `json:"profit"`
	Transactions  int     `json:"transactions"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	ProfitMargin  float64 `json:"profitMargin"`
}

// Growth compares the report window against the abutting previous window.
type Growth struct {
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	Transactions float64 `json:"transactions"`
}

// PackageRow is one product in the package analysis table. ROI and market
// share are relative to the analyzed subset, not the whole catalog.
type PackageRow struct {
	analytics.ProductPerformance
	ROI         float64 `json:"roi"`
	MarketShare float64 `json:"marketShare"`
}

// Report is the exportable document for one period.
type Report struct {
	Period         analytics.Period               `json:"period"`
	GeneratedAt    time.Time                      `json:"generatedAt"`
	RangeStart     time.Time                      `json:"rangeStart"`
	RangeEnd       time.Time                      `json:"rangeEnd"`
	Stats          Stats                          `json:"stats"`
	Growth         Growth                         `json:"growth"`
	Series         []analytics.TimeBucket         `json:"series"`
	Games          []analytics.GamePerformance    `json:"games"`
	TopProducts    []analytics.ProductPerformance `json:"topProducts"`
	PaymentMethods []analytics.PaymentMethodStat  `json:"paymentMethods"`
}

// Builder builds reports against one data snapshot.
type Builder struct {
	snap   *analytics.Snapshot
	anchor time.Time
	now    func() time.Time
}

func NewBuilder(snap *analytics.Snapshot, anchor time.Time, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{snap: snap, anchor: anchor, now: now}
}

func rangeStats(txs []model.Transaction) Stats {
	s := Stats{
		Revenue:      analytics.SumRevenue(txs),
		Profit:       analytics.SumProfit(txs),
		Transactions: len(txs),
	}
	if s.Transactions > 0 {
		s.AvgOrderValue = float64(s.Revenue) / float64(s.Transactions)
	}
	s.ProfitMargin = analytics.Percent(s.Profit, s.Revenue)
	return s
}

// Build assembles the full report for period.
func (b *Builder) Build(period analytics.Period) Report {
	r := analytics.ResolveRange(period, b.now(), b.anchor)
	cur := analytics.FilterRange(b.snap.Transactions, r)
	prev := analytics.FilterRange(b.snap.Transactions, analytics.PreviousRange(r))

	curStats := rangeStats(cur)
	prevStats := rangeStats(prev)

	games := analytics.AggregateGames(b.snap, cur)
	products := analytics.AggregateProducts(b.snap, cur)

	return Report{
		Period:      period,
		GeneratedAt: b.now().UTC(),
		RangeStart:  r.Start,
		RangeEnd:    r.End,
		Stats:       curStats,
		Growth: Growth{
			Revenue:      analytics.Growth(curStats.Revenue, prevStats.Revenue),
			Profit:       analytics.Growth(curStats.Profit, prevStats.Profit),
			Transactions: analytics.Growth(int64(curStats.Transactions), int64(prevStats.Transactions)),
		},
		Series:         analytics.BucketSeries(cur, r),
		Games:          games,
		TopProducts:    analytics.TopProducts(products, 5),
		PaymentMethods: analytics.AggregatePayments(cur),
	}
}

// PackageAnalysis computes the per-product economics table for period,
// optionally limited to the products of one game. Products without a sale in
// the window are omitted. ROI is profit over acquisition cost (units sold
// times the catalog unit cost); market share is each product's revenue within
// the analyzed subset.
func (b *Builder) PackageAnalysis(period analytics.Period, gameID string) []PackageRow {
	r := analytics.ResolveRange(period, b.now(), b.anchor)
	perf := analytics.AggregateProducts(b.snap, analytics.FilterRange(b.snap.Transactions, r))

	rows := make([]PackageRow, 0, len(perf))
	var subsetRevenue int64
	for _, p := range perf {
		if p.Sold == 0 {
			continue
		}
		if gameID != "" {
			prod, ok := b.snap.ProductByID(p.ProductID)
			if !ok || prod.GameID != gameID {
				continue
			}
		}
		rows = append(rows, PackageRow{ProductPerformance: p})
		subsetRevenue += p.Revenue
	}
	for i := range rows {
		cost := int64(rows[i].Sold) * rows[i].UnitCost
		rows[i].ROI = analytics.Percent(rows[i].Profit, cost)
		rows[i].MarketShare = analytics.Percent(rows[i].Revenue, subsetRevenue)
	}
	return rows
}

// ExportJSON renders the report as an indented JSON document.
func (r Report) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
