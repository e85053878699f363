package analytics

import (
	"topup-admin/internal/model"
)

// Snapshot is an immutable view of the collections an aggregation pass runs
// over. Lookups are indexed once at construction instead of rescanned per
// transaction.
type Snapshot struct {
	Games        []model.Game
	Products     []model.Product
	Users        []model.User
	Transactions []model.Transaction

	gamesByID    map[string]model.Game
	productsByID map[string]model.Product
}

// NewSnapshot indexes the given collections. Products should come from the
// catalog store's current list so aggregation sees live unit economics.
func NewSnapshot(games []model.Game, products []model.Product, users []model.User, txs []model.Transaction) *Snapshot {
	s := &Snapshot{
		Games:        games,
		Products:     products,
		Users:        users,
		Transactions: txs,
		gamesByID:    make(map[string]model.Game, len(games)),
		productsByID: make(map[string]model.Product, len(products)),
	}
	for _, g := range games {
		s.gamesByID[g.ID] = g
	}
	for _, p := range products {
		s.productsByID[p.ID] = p
	}
	return s
}

// GameByID looks up a game.
func (s *Snapshot) GameByID(id string) (model.Game, bool) {
	g, ok := s.gamesByID[id]
	return g, ok
}

// ProductByID looks up a product.
func (s *Snapshot) ProductByID(id string) (model.Product, bool) {
	p, ok := s.productsByID[id]
	return p, ok
}

// GameForTransaction resolves the transaction's owning game through its
// product. A missing product or game returns false; the transaction is then
// excluded from game-dimension aggregates only.
func (s *Snapshot) GameForTransaction(t model.Transaction) (model.Game, bool) {
	p, ok := s.productsByID[t.ProductID]
	if !ok {
		return model.Game{}, false
	}
	g, ok := s.gamesByID[p.GameID]
	return g, ok
}

// FilterRange returns the transactions whose completion time falls inside r,
// inclusive on both ends.
func FilterRange(txs []model.Transaction, r Range) []model.Transaction {
	var out []model.Transaction
	for _, t := range txs {
		if r.Contains(t.CompletedAt) {
			out = append(out, t)
		}
	}
	return out
}

// SumRevenue totals gross amounts.
func SumRevenue(txs []model.Transaction) int64 {
	var sum int64
	for _, t := range txs {
		sum += t.Amount
	}
	return sum
}

// SumProfit totals profits.
func SumProfit(txs []model.Transaction) int64 {
	var sum int64
	for _, t := range txs {
		sum += t.Profit
	}
	return sum
}
