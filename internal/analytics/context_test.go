package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topup-admin/internal/model"
)

func TestBuildContext(t *testing.T) {
	txs := []model.Transaction{
		tx("t1", "1", "1", 20_000, 3_000, time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC), "DANA"),
		tx("t2", "2", "1", 20_000, 3_000, time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC), "OVO"),
		tx("t3", "1", "3", 15_000, 2_000, time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC), "DANA"),
	}
	snap := testSnapshot(txs)

	ctx := BuildContext(snap)

	assert.Equal(t, int64(55_000), ctx.TotalRevenue)
	assert.Equal(t, int64(8_000), ctx.TotalProfit)
	assert.Equal(t, 3, ctx.TotalTransactions)
	assert.InDelta(t, 55_000.0/3, ctx.AvgOrderValue, 1e-9)
	assert.InDelta(t, 8_000.0/55_000*100, ctx.ProfitMargin, 1e-9)

	// Active users come from the seeded per-user counters, not the ledger.
	assert.Equal(t, 3, ctx.TotalUsers)
	assert.Equal(t, 2, ctx.ActiveUsers)

	require.NotEmpty(t, ctx.GamePerformance)
	assert.Equal(t, "Mobile Legends", ctx.GamePerformance[0].Name)
	assert.Len(t, ctx.TopGames, 2, "only games with activity rank")
	assert.Equal(t, "Free Fire", ctx.WorstGames[0].Name)

	assert.Len(t, ctx.AllProducts, 4)
	assert.Len(t, ctx.ProductPerformance, 2, "only sold products")

	require.Len(t, ctx.Months, 2)
	assert.Equal(t, "2025-01", ctx.Months[0].Key)
	assert.Equal(t, "Januari 2025", ctx.Months[0].Name)
	assert.Equal(t, int64(40_000), ctx.Months[0].Revenue)
	assert.Equal(t, "2025-03", ctx.Months[1].Key)
	assert.Equal(t, "Maret 2025", ctx.Months[1].Name)

	require.Len(t, ctx.PaymentMethods, 2)
	assert.Equal(t, "DANA", ctx.PaymentMethods[0].Method)
}

func TestBuildContextIdempotent(t *testing.T) {
	txs := []model.Transaction{
		tx("t1", "1", "1", 20_000, 3_000, time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC), "DANA"),
		tx("t2", "2", "3", 15_000, 2_000, time.Date(2025, time.February, 5, 9, 0, 0, 0, time.UTC), "OVO"),
	}
	snap := testSnapshot(txs)

	first := BuildContext(snap)
	second := BuildContext(snap)
	assert.Equal(t, first, second)
}

func TestTopMonthGames(t *testing.T) {
	m := MonthStat{Games: map[string]MonthGameStat{
		"Mobile Legends": {Revenue: 300, Transactions: 3},
		"Free Fire":      {Revenue: 500, Transactions: 2},
		"PUBG Mobile":    {Revenue: 300, Transactions: 1},
	}}

	ranked := TopMonthGames(m, 3)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Free Fire", ranked[0].Name)
	assert.Equal(t, "Mobile Legends", ranked[1].Name, "revenue ties break by name")
	assert.Equal(t, "PUBG Mobile", ranked[2].Name)

	assert.Len(t, TopMonthGames(m, 2), 2)
}

func TestQueryContextLookups(t *testing.T) {
	txs := []model.Transaction{
		tx("t1", "1", "1", 20_000, 3_000, time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC), "DANA"),
	}
	ctx := BuildContext(testSnapshot(txs))

	g, ok := ctx.FindGame("Mobile Legends")
	require.True(t, ok)
	assert.Equal(t, int64(20_000), g.Revenue)

	_, ok = ctx.FindGame("Valorant")
	assert.False(t, ok)

	assert.Equal(t, 1, ctx.GameRank("Mobile Legends"))
	assert.Equal(t, 0, ctx.GameRank("Valorant"))
	assert.Equal(t, 1, ctx.ProductRank("1"))
	assert.Equal(t, 0, ctx.ProductRank("999"))
}
