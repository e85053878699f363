package analytics

import (
	"fmt"
	"sort"
	"time"

	"topup-admin/internal/model"
)

// TimeBucket is one slot of a bucketed revenue series.
type TimeBucket struct {
	Name    string `json:"name"`
	Revenue int64  `json:"value"`
	Profit  int64  `json:"profit"`
}

// Short month labels for the yearly chart.
var chartMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}

// Indonesian short month labels for daily bucket names.
var shortMonthsID = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// BucketSeries filters txs to the range and groups them by the range's
// bucketing. Buckets come out in chronological order: hours 1:00 through
// 12:00 (pre-initialized so quiet hours render as zero), calendar days
// sorted by parsed date, or months January through July where empty months
// are dropped except January.
func BucketSeries(txs []model.Transaction, r Range) []TimeBucket {
	filtered := FilterRange(txs, r)

	switch r.Bucket {
	case BucketHour:
		return hourBuckets(filtered)
	case BucketMonth:
		return monthBuckets(filtered)
	default:
		return dayBuckets(filtered)
	}
}

func hourBuckets(txs []model.Transaction) []TimeBucket {
	buckets := make([]TimeBucket, 12)
	for h := 1; h <= 12; h++ {
		buckets[h-1] = TimeBucket{Name: fmt.Sprintf("%d:00", h)}
	}
	for _, t := range txs {
		h := t.CompletedAt.UTC().Hour()
		if h >= 1 && h <= 12 {
			buckets[h-1].Revenue += t.Amount
			buckets[h-1].Profit += t.Profit
		}
	}
	return buckets
}

func monthBuckets(txs []model.Transaction) []TimeBucket {
	sums := make([]TimeBucket, len(chartMonths))
	for i, name := range chartMonths {
		sums[i] = TimeBucket{Name: name}
	}
	for _, t := range txs {
		m := int(t.CompletedAt.UTC().Month()) - 1
		if m >= 0 && m < len(sums) {
			sums[m].Revenue += t.Amount
			sums[m].Profit += t.Profit
		}
	}
	// Empty months are not drawn, but January anchors the axis even when
	// the dataset has no January sales.
	out := make([]TimeBucket, 0, len(sums))
	for i, b := range sums {
		if b.Revenue > 0 || i == 0 {
			out = append(out, b)
		}
	}
	return out
}

func dayBuckets(txs []model.Transaction) []TimeBucket {
	type dayAgg struct {
		date    time.Time
		revenue int64
		profit  int64
	}
	byDay := make(map[time.Time]*dayAgg)
	for _, t := range txs {
		d := midnight(t.CompletedAt)
		agg, ok := byDay[d]
		if !ok {
			agg = &dayAgg{date: d}
			byDay[d] = agg
		}
		agg.revenue += t.Amount
		agg.profit += t.Profit
	}

	days := make([]*dayAgg, 0, len(byDay))
	for _, agg := range byDay {
		days = append(days, agg)
	}
	// Sort by the actual date, not the rendered label.
	sort.Slice(days, func(i, j int) bool { return days[i].date.Before(days[j].date) })

	out := make([]TimeBucket, len(days))
	for i, d := range days {
		out[i] = TimeBucket{
			Name:    fmt.Sprintf("%d %s", d.date.Day(), shortMonthsID[d.date.Month()-1]),
			Revenue: d.revenue,
			Profit:  d.profit,
		}
	}
	return out
}

// GamePerformance is the per-game aggregate over a transaction set.
type GamePerformance struct {
	GameID         string  `json:"gameId"`
	Name           string  `json:"name"`
	Icon           string  `json:"icon"`
	Category       string  `json:"category"`
	Revenue        int64   `json:"revenue"`
	Profit         int64   `json:"profit"`
	ProfitMargin   float64 `json:"profitMargin"`
	Transactions   int     `json:"transactions"`
	AvgTransaction float64 `json:"avgTransaction"`
	UniqueUsers    int     `json:"uniqueUsers"`
}

// AggregateGames groups txs by their owning game, resolved through the
// current product catalog. Transactions whose product or game cannot be
// resolved are skipped here; they still count toward global totals computed
// elsewhere. Every known game appears in the result, zero-activity ones
// included, sorted by revenue descending.
func AggregateGames(snap *Snapshot, txs []model.Transaction) []GamePerformance {
	type acc struct {
		revenue int64
		profit  int64
		count   int
		users   map[string]struct{}
	}
	byGame := make(map[string]*acc, len(snap.Games))
	for _, t := range txs {
		g, ok := snap.GameForTransaction(t)
		if !ok {
			continue
		}
		a, ok := byGame[g.ID]
		if !ok {
			a = &acc{users: make(map[string]struct{})}
			byGame[g.ID] = a
		}
		a.revenue += t.Amount
		a.profit += t.Profit
		a.count++
		a.users[t.UserID] = struct{}{}
	}

	out := make([]GamePerformance, 0, len(snap.Games))
	for _, g := range snap.Games {
		gp := GamePerformance{GameID: g.ID, Name: g.Name, Icon: g.Icon, Category: g.Category}
		if a, ok := byGame[g.ID]; ok {
			gp.Revenue = a.revenue
			gp.Profit = a.profit
			gp.Transactions = a.count
			gp.UniqueUsers = len(a.users)
			gp.ProfitMargin = Percent(a.profit, a.revenue)
			if a.count > 0 {
				gp.AvgTransaction = float64(a.revenue) / float64(a.count)
			}
		}
		out = append(out, gp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

// ProductPerformance is the per-product aggregate over a transaction set.
// Unit economics come from the current catalog entry, not the transactions.
type ProductPerformance struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	GameName     string  `json:"gameName"`
	Denomination string  `json:"denomination"`
	UnitPrice    int64   `json:"unitPrice"`
	UnitCost     int64   `json:"unitCost"`
	UnitProfit   int64   `json:"unitProfit"`
	UnitMargin   float64 `json:"unitMargin"`
	Revenue      int64   `json:"revenue"`
	Profit       int64   `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
	Sold         int     `json:"sold"`
	UniqueUsers  int     `json:"uniqueUsers"`
}

// AggregateProducts groups txs by product. Every catalog product appears,
// sorted by revenue descending; dangling transaction references are skipped.
func AggregateProducts(snap *Snapshot, txs []model.Transaction) []ProductPerformance {
	type acc struct {
		revenue int64
		profit  int64
		count   int
		users   map[string]struct{}
	}
	byProduct := make(map[string]*acc, len(snap.Products))
	for _, t := range txs {
		if _, ok := snap.ProductByID(t.ProductID); !ok {
			continue
		}
		a, ok := byProduct[t.ProductID]
		if !ok {
			a = &acc{users: make(map[string]struct{})}
			byProduct[t.ProductID] = a
		}
		a.revenue += t.Amount
		a.profit += t.Profit
		a.count++
		a.users[t.UserID] = struct{}{}
	}

	out := make([]ProductPerformance, 0, len(snap.Products))
	for _, p := range snap.Products {
		pp := ProductPerformance{
			ProductID:    p.ID,
			Name:         p.Denomination,
			Denomination: p.Denomination,
			UnitPrice:    p.Price,
			UnitCost:     p.Cost,
			UnitProfit:   p.Profit,
			UnitMargin:   Percent(p.Profit, p.Price),
		}
		if g, ok := snap.GameByID(p.GameID); ok {
			pp.GameName = g.Name
			pp.Name = g.Name + " - " + p.Denomination
		}
		if a, ok := byProduct[p.ID]; ok {
			pp.Revenue = a.revenue
			pp.Profit = a.profit
			pp.Sold = a.count
			pp.UniqueUsers = len(a.users)
			pp.ProfitMargin = Percent(a.profit, a.revenue)
		}
		out = append(out, pp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

// PaymentMethodStat is the per-payment-method aggregate.
type PaymentMethodStat struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
	Amount int64  `json:"amount"`
}

// AggregatePayments groups txs by the literal payment method label, sorted
// by amount descending.
func AggregatePayments(txs []model.Transaction) []PaymentMethodStat {
	byMethod := make(map[string]*PaymentMethodStat)
	order := make([]string, 0)
	for _, t := range txs {
		s, ok := byMethod[t.PaymentMethod]
		if !ok {
			s = &PaymentMethodStat{Method: t.PaymentMethod}
			byMethod[t.PaymentMethod] = s
			order = append(order, t.PaymentMethod)
		}
		s.Count++
		s.Amount += t.Amount
	}
	out := make([]PaymentMethodStat, 0, len(order))
	for _, m := range order {
		out = append(out, *byMethod[m])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}

// TopGames returns the first n games with at least one transaction.
func TopGames(perf []GamePerformance, n int) []GamePerformance {
	return headActive(perf, n, false)
}

// WorstGames returns the n weakest active games, weakest first.
func WorstGames(perf []GamePerformance, n int) []GamePerformance {
	return headActive(perf, n, true)
}

func headActive(perf []GamePerformance, n int, tail bool) []GamePerformance {
	active := make([]GamePerformance, 0, len(perf))
	for _, g := range perf {
		if g.Transactions > 0 {
			active = append(active, g)
		}
	}
	if n > len(active) {
		n = len(active)
	}
	if !tail {
		return active[:n]
	}
	out := make([]GamePerformance, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, active[len(active)-1-i])
	}
	return out
}

// SoldProducts filters out products without a single sale.
func SoldProducts(perf []ProductPerformance) []ProductPerformance {
	out := make([]ProductPerformance, 0, len(perf))
	for _, p := range perf {
		if p.Sold > 0 {
			out = append(out, p)
		}
	}
	return out
}

// TopProducts returns the first n sold products.
func TopProducts(perf []ProductPerformance, n int) []ProductPerformance {
	sold := SoldProducts(perf)
	if n > len(sold) {
		n = len(sold)
	}
	return sold[:n]
}

// WorstProducts returns the n weakest sold products, weakest first.
func WorstProducts(perf []ProductPerformance, n int) []ProductPerformance {
	sold := SoldProducts(perf)
	if n > len(sold) {
		n = len(sold)
	}
	out := make([]ProductPerformance, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, sold[len(sold)-1-i])
	}
	return out
}

// Percent computes part/whole*100, returning 0 for a zero or negative whole
// so margins and ratios never surface as NaN or Inf.
func Percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
