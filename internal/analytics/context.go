package analytics

import (
	"fmt"
	"sort"
)

// Full Indonesian month names for the monthly series labels.
var longMonthsID = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthGameStat is one game's share of a month.
type MonthGameStat struct {
	Revenue      int64 `json:"revenue"`
	Transactions int   `json:"transactions"`
}

// MonthStat is one month of the full-history series.
type MonthStat struct {
	Key          string                   `json:"key"`
	Name         string                   `json:"name"`
	Revenue      int64                    `json:"revenue"`
	Profit       int64                    `json:"profit"`
	Transactions int                      `json:"transactions"`
	Games        map[string]MonthGameStat `json:"games"`
}

// QueryContext is the complete analytical snapshot consumed by the chart
// components and every assistant report template. It spans the whole
// transaction history, not a selected range.
type QueryContext struct {
	TotalRevenue      int64
	TotalProfit       int64
	TotalTransactions int
	AvgOrderValue     float64
	ProfitMargin      float64
	TotalUsers        int
	ActiveUsers       int

	GamePerformance []GamePerformance
	TopGames        []GamePerformance
	WorstGames      []GamePerformance

	AllProducts        []ProductPerformance
	ProductPerformance []ProductPerformance
	TopProducts        []ProductPerformance
	WorstProducts      []ProductPerformance

	Months         []MonthStat
	PaymentMethods []PaymentMethodStat

	Snapshot *Snapshot
}

// BuildContext derives the full context from a snapshot in one pass. It is a
// pure function of its input: two calls on an unmodified snapshot produce
// identical output.
func BuildContext(snap *Snapshot) *QueryContext {
	ctx := &QueryContext{Snapshot: snap}

	ctx.TotalRevenue = SumRevenue(snap.Transactions)
	ctx.TotalProfit = SumProfit(snap.Transactions)
	ctx.TotalTransactions = len(snap.Transactions)
	if ctx.TotalTransactions > 0 {
		ctx.AvgOrderValue = float64(ctx.TotalRevenue) / float64(ctx.TotalTransactions)
	}
	ctx.ProfitMargin = Percent(ctx.TotalProfit, ctx.TotalRevenue)

	ctx.TotalUsers = len(snap.Users)
	for _, u := range snap.Users {
		if u.TotalTransactions > 0 {
			ctx.ActiveUsers++
		}
	}

	ctx.GamePerformance = AggregateGames(snap, snap.Transactions)
	ctx.TopGames = TopGames(ctx.GamePerformance, 3)
	ctx.WorstGames = WorstGames(ctx.GamePerformance, 3)

	ctx.AllProducts = AggregateProducts(snap, snap.Transactions)
	ctx.ProductPerformance = SoldProducts(ctx.AllProducts)
	ctx.TopProducts = TopProducts(ctx.AllProducts, 10)
	ctx.WorstProducts = WorstProducts(ctx.AllProducts, 5)

	ctx.Months = monthSeries(snap)
	ctx.PaymentMethods = AggregatePayments(snap.Transactions)
	return ctx
}

// monthSeries keys the whole history by year-month, tracking per-game
// sub-totals within each month. Months come out chronologically.
func monthSeries(snap *Snapshot) []MonthStat {
	byKey := make(map[string]*MonthStat)
	keys := make([]string, 0)

	for _, t := range snap.Transactions {
		at := t.CompletedAt.UTC()
		key := fmt.Sprintf("%04d-%02d", at.Year(), int(at.Month()))
		m, ok := byKey[key]
		if !ok {
			m = &MonthStat{
				Key:   key,
				Name:  fmt.Sprintf("%s %d", longMonthsID[at.Month()-1], at.Year()),
				Games: make(map[string]MonthGameStat),
			}
			byKey[key] = m
			keys = append(keys, key)
		}
		m.Revenue += t.Amount
		m.Profit += t.Profit
		m.Transactions++

		if g, ok := snap.GameForTransaction(t); ok {
			gs := m.Games[g.Name]
			gs.Revenue += t.Amount
			gs.Transactions++
			m.Games[g.Name] = gs
		}
	}

	sort.Strings(keys)
	out := make([]MonthStat, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byKey[k])
	}
	return out
}

// MonthGameRank is one game's ranked share of a month.
type MonthGameRank struct {
	Name         string
	Revenue      int64
	Transactions int
}

// TopMonthGames ranks a month's games by revenue descending, name ascending
// on ties so output is deterministic.
func TopMonthGames(m MonthStat, n int) []MonthGameRank {
	entries := make([]MonthGameRank, 0, len(m.Games))
	for name, s := range m.Games {
		entries = append(entries, MonthGameRank{Name: name, Revenue: s.Revenue, Transactions: s.Transactions})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Revenue != entries[j].Revenue {
			return entries[i].Revenue > entries[j].Revenue
		}
		return entries[i].Name < entries[j].Name
	})
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// FindGame returns the context row for a game by exact name.
func (c *QueryContext) FindGame(name string) (GamePerformance, bool) {
	for _, g := range c.GamePerformance {
		if g.Name == name {
			return g, true
		}
	}
	return GamePerformance{}, false
}

// GameRank returns the 1-based revenue rank of a game, or 0.
func (c *QueryContext) GameRank(name string) int {
	for i, g := range c.GamePerformance {
		if g.Name == name {
			return i + 1
		}
	}
	return 0
}

// ProductRank returns the 1-based revenue rank of a product, or 0.
func (c *QueryContext) ProductRank(id string) int {
	for i, p := range c.AllProducts {
		if p.ProductID == id {
			return i + 1
		}
	}
	return 0
}
