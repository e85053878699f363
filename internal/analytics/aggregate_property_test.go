package analytics

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"topup-admin/internal/model"
)

func drawTransactions(t *rapid.T) []model.Transaction {
	productIDs := []string{"1", "2", "3", "4"}
	userIDs := []string{"1", "2", "3"}
	methods := []string{"DANA", "OVO", "GoPay", "QRIS"}

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	end := time.Date(2025, time.July, 22, 23, 59, 59, 0, time.UTC).Unix()

	n := rapid.IntRange(0, 60).Draw(t, "n")
	txs := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		amount := rapid.Int64Range(1_000, 500_000).Draw(t, "amount")
		txs = append(txs, model.Transaction{
			ID:            rapid.StringMatching(`tx[0-9]{4}`).Draw(t, "id"),
			UserID:        userIDs[rapid.IntRange(0, len(userIDs)-1).Draw(t, "user")],
			ProductID:     productIDs[rapid.IntRange(0, len(productIDs)-1).Draw(t, "product")],
			Amount:        amount,
			Profit:        amount / 10,
			Status:        model.TxCompleted,
			CompletedAt:   time.Unix(rapid.Int64Range(start, end).Draw(t, "completedAt"), 0).UTC(),
			PaymentMethod: methods[rapid.IntRange(0, len(methods)-1).Draw(t, "method")],
		})
	}
	return txs
}

// TestBucketSeriesConservationProperty checks that daily and monthly
// bucketing never invents or loses revenue: the bucket totals equal the sum
// over the in-range transactions.
func TestBucketSeriesConservationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		txs := drawTransactions(t)
		periods := []Period{Period7Days, Period30Days, Period1Year}
		r := ResolveRange(periods[rapid.IntRange(0, 2).Draw(t, "period")], time.Time{}, testAnchor)

		var want int64
		for _, tx := range txs {
			if r.Contains(tx.CompletedAt) {
				want += tx.Amount
			}
		}

		var got int64
		for _, b := range BucketSeries(txs, r) {
			got += b.Revenue
		}
		if got != want {
			t.Fatalf("bucket totals %d, in-range transactions total %d", got, want)
		}
	})
}

// TestAggregateGamesConservationProperty checks that the per-game rollup
// preserves revenue and transaction counts for resolvable transactions.
func TestAggregateGamesConservationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		txs := drawTransactions(t)
		snap := testSnapshot(txs)

		var wantRevenue int64
		for _, tx := range txs {
			wantRevenue += tx.Amount
		}

		perf := AggregateGames(snap, txs)
		var gotRevenue int64
		var gotCount int
		for _, g := range perf {
			gotRevenue += g.Revenue
			gotCount += g.Transactions
		}
		if gotRevenue != wantRevenue {
			t.Fatalf("rollup revenue %d, transaction revenue %d", gotRevenue, wantRevenue)
		}
		if gotCount != len(txs) {
			t.Fatalf("rollup count %d, transaction count %d", gotCount, len(txs))
		}

		// Revenue ordering is descending throughout.
		for i := 1; i < len(perf); i++ {
			if perf[i].Revenue > perf[i-1].Revenue {
				t.Fatalf("ranking not descending at %d: %d > %d", i, perf[i].Revenue, perf[i-1].Revenue)
			}
		}
	})
}
