// Package model defines the data models for the top-up storefront dashboard.
package model

import "time"

// Game represents a supported game title. Reference data, never mutated.
type Game struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	IsActive bool   `json:"isActive"`
}

// Product represents a sellable top-up denomination for a game.
// Profit is always Price - Cost and is recomputed on every price or cost change.
type Product struct {
	ID           string `json:"id"`
	GameID       string `json:"gameId"`
	Name         string `json:"name"`
	Denomination string `json:"denomination"`
	Price        int64  `json:"price"`
	Cost         int64  `json:"cost"`
	Profit       int64  `json:"profit"`
	IsActive     bool   `json:"isActive"`
}

// User represents a storefront customer account.
// TotalSpent and TotalTransactions are seeded aggregates maintained
// independently of the transaction ledger; they are not re-derived from it.
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	Phone             string    `json:"phone"`
	CreatedAt         time.Time `json:"createdAt"`
	TotalSpent        int64     `json:"totalSpent"`
	TotalTransactions int       `json:"totalTransactions"`
	IsActive          *bool     `json:"isActive,omitempty"`
}

// Active reports the user's status; users without an explicit flag are active.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

// Order statuses.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderFailed     = "failed"
)

// PlayerInfo is the in-game identity an order is fulfilled against.
type PlayerInfo struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName,omitempty"`
}

// Order represents a fulfillment order. Orders are independent of the
// transaction ledger and are not aggregated by the analytics engine.
type Order struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	ProductID   string     `json:"productId"`
	Quantity    int        `json:"quantity"`
	TotalAmount int64      `json:"totalAmount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PlayerInfo  PlayerInfo `json:"playerInfo"`
}

// Transaction statuses.
const (
	TxCompleted = "completed"
	TxRefunded  = "refunded"
)

// Transaction is a settled payment and the sole input to all analytics.
// Amount is gross revenue; Profit is in absolute currency units.
type Transaction struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	UserID        string    `json:"userId"`
	ProductID     string    `json:"productId"`
	Amount        int64     `json:"amount"`
	Profit        int64     `json:"profit"`
	Status        string    `json:"status"`
	CompletedAt   time.Time `json:"completedAt"`
	PaymentMethod string    `json:"paymentMethod"`
}

// Chat message author kinds.
const (
	ChatUser = "user"
	ChatBot  = "bot"
)

// ChatMessage is one entry in an assistant conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// DashboardStats holds the headline numbers shown on the dashboard.
type DashboardStats struct {
	TotalTransactions int     `json:"totalTransactions"`
	NetIncome         int64   `json:"netIncome"`
	AnnualTarget      int64   `json:"annualTarget"`
	MonthlyGrowth     float64 `json:"monthlyGrowth"`
	TotalOrders       int     `json:"totalOrders"`
	CompletionRate    float64 `json:"completionRate"`
}
