// Package dataset builds the in-memory synthetic dataset the dashboard runs
// against: fixed reference collections plus a seeded transaction history
// spanning January 1 of the anchor year up to the anchor date.
package dataset

import (
	"math"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"topup-admin/internal/model"
)

// Dataset is the full in-memory collection set. Games, Users, Orders and
// Transactions are fixed after generation; Products is the seed list the
// catalog store is initialized from.
type Dataset struct {
	Anchor       time.Time
	Games        []model.Game
	Products     []model.Product
	Users        []model.User
	Orders       []model.Order
	Transactions []model.Transaction
	Stats        model.DashboardStats
}

// monthProfile shapes one month of generated traffic.
type monthProfile struct {
	month     time.Month
	txCount   int
	avgAmount int64
	variation float64
}

// Traffic profiles, January through July of the anchor year.
var monthProfiles = []monthProfile{
	{time.January, 85, 45000, 0.9},
	{time.February, 72, 42000, 0.8},
	{time.March, 95, 48000, 1.1},
	{time.April, 88, 46000, 1.0},
	{time.May, 102, 52000, 1.2},
	{time.June, 78, 44000, 0.9},
	{time.July, 65, 41000, 0.8},
}

// Generate builds the dataset for the given anchor date. The same seed and
// anchor always produce the same transactions.
func Generate(seed int64, anchor time.Time, annualTarget int64) *Dataset {
	ds := &Dataset{
		Anchor:   anchor.UTC().Truncate(24 * time.Hour),
		Games:    seedGames(),
		Products: seedProducts(),
		Users:    seedUsers(),
		Orders:   seedOrders(),
	}
	ds.Transactions = generateTransactions(rand.New(rand.NewSource(seed)), ds)

	var netIncome int64
	for _, t := range ds.Transactions {
		netIncome += t.Amount
	}
	ds.Stats = model.DashboardStats{
		TotalTransactions: len(ds.Transactions),
		NetIncome:         netIncome,
		AnnualTarget:      annualTarget,
		MonthlyGrowth:     15.5,
		TotalOrders:       len(ds.Orders),
		CompletionRate:    75,
	}
	return ds
}

// generateTransactions walks each month's profile day by day, emitting a
// randomized but realistically distributed history. Timestamps are UTC and
// never later than the anchor date.
func generateTransactions(rng *rand.Rand, ds *Dataset) []model.Transaction {
	var txs []model.Transaction
	txID := 1
	orderID := 100
	year := ds.Anchor.Year()

	for _, p := range monthProfiles {
		if p.month > ds.Anchor.Month() {
			break
		}
		daysInMonth := time.Date(year, p.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		if p.month == ds.Anchor.Month() {
			daysInMonth = ds.Anchor.Day()
		}
		perDay := int(math.Ceil(float64(p.txCount) / float64(daysInMonth)))

		for d := 1; d <= daysInMonth; d++ {
			daily := int(math.Floor(float64(perDay) + (rng.Float64()-0.5)*4))
			if daily < 1 {
				daily = 1
			}
			for i := 0; i < daily; i++ {
				product := ds.Products[rng.Intn(len(ds.Products))]
				user := ds.Users[rng.Intn(len(ds.Users))]
				payment := paymentMethods[rng.Intn(len(paymentMethods))]

				// 0.8 to 1.2 spread over the list price, shaped by the
				// month's seasonality factor.
				variationFactor := 0.8 + rng.Float64()*0.4
				amount := int64(math.Round(float64(product.Price) * variationFactor * p.variation))
				// 15-25% realized margin.
				profit := int64(math.Round(float64(amount)*0.15 + rng.Float64()*float64(amount)*0.1))

				completedAt := time.Date(year, p.month, d,
					rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, time.UTC)

				txs = append(txs, model.Transaction{
					ID:            strconv.Itoa(txID),
					OrderID:       strconv.Itoa(orderID),
					UserID:        user.ID,
					ProductID:     product.ID,
					Amount:        amount,
					Profit:        profit,
					Status:        model.TxCompleted,
					CompletedAt:   completedAt,
					PaymentMethod: payment,
				})
				txID++
				orderID++
			}
		}
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CompletedAt.Before(txs[j].CompletedAt)
	})
	return txs
}
