package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topup-admin/internal/analytics"
	"topup-admin/internal/model"
)

var (
	testAnchor = time.Date(2025, time.July, 22, 0, 0, 0, 0, time.UTC)
	testClock  = func() time.Time { return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC) }
)

func testContext() *analytics.QueryContext {
	games := []model.Game{
		{ID: "1", Name: "Free Fire", Icon: "🔥", Category: "Battle Royale", IsActive: true},
		{ID: "2", Name: "Mobile Legends", Icon: "⚔️", Category: "MOBA", IsActive: true},
		{ID: "3", Name: "PUBG Mobile", Icon: "🎮", Category: "Battle Royale", IsActive: true},
	}
	products := []model.Product{
		{ID: "1", GameID: "1", Denomination: "100 Diamonds", Price: 15_000, Cost: 13_000, Profit: 2_000, IsActive: true},
		{ID: "2", GameID: "2", Denomination: "86 Diamonds", Price: 20_000, Cost: 17_000, Profit: 3_000, IsActive: true},
		{ID: "3", GameID: "3", Denomination: "60 UC", Price: 12_000, Cost: 10_500, Profit: 1_500, IsActive: true},
	}
	users := []model.User{
		{ID: "1", Username: "andi", TotalTransactions: 3},
		{ID: "2", Username: "budi", TotalTransactions: 1},
		{ID: "3", Username: "citra"},
	}
	txs := []model.Transaction{
		{ID: "t1", UserID: "1", ProductID: "1", Amount: 500_000, Profit: 75_000, Status: model.TxCompleted,
			CompletedAt: time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC), PaymentMethod: "DANA"},
		{ID: "t2", UserID: "2", ProductID: "1", Amount: 500_000, Profit: 75_000, Status: model.TxCompleted,
			CompletedAt: time.Date(2025, time.July, 22, 9, 30, 0, 0, time.UTC), PaymentMethod: "OVO"},
		{ID: "t3", UserID: "1", ProductID: "2", Amount: 200_000, Profit: 30_000, Status: model.TxCompleted,
			CompletedAt: time.Date(2025, time.June, 15, 14, 0, 0, 0, time.UTC), PaymentMethod: "DANA"},
	}
	return analytics.BuildContext(analytics.NewSnapshot(games, products, users, txs))
}

func newTestSynthesizer() *Synthesizer {
	return NewSynthesizer(testAnchor, testClock)
}

func TestAnswerGameMargin(t *testing.T) {
	qc := testContext()
	reply := newTestSynthesizer().Answer("Berapa margin Free Fire?", qc)

	assert.Contains(t, reply, "Margin Free Fire")
	assert.Contains(t, reply, "15.0%", "1.000.000 revenue with 150.000 profit is a 15.0% margin")
	assert.Contains(t, reply, "Rp 1.000.000")
	assert.Contains(t, reply, "Rp 150.000")
}

func TestAnswerAllMargins(t *testing.T) {
	qc := testContext()
	reply := newTestSynthesizer().Answer("berapa margin semua game?", qc)

	assert.Contains(t, reply, "Margin Semua Game")
	assert.Contains(t, reply, "Free Fire")
	assert.Contains(t, reply, "Mobile Legends")
	assert.NotContains(t, reply, "PUBG", "inactive games are not listed")
}

func TestAnswerPlayerStats(t *testing.T) {
	qc := testContext()
	reply := newTestSynthesizer().Answer("berapa rata-rata spending per user?", qc)

	assert.Contains(t, reply, "Analisis Player/User")
	assert.Contains(t, reply, "Total Registered Users: 3")
	assert.Contains(t, reply, "Active Users (pernah topup): 2")
}

func TestAnswerProductDetail(t *testing.T) {
	qc := testContext()
	reply := newTestSynthesizer().Answer("berapa penjualan 100 diamonds?", qc)

	assert.Contains(t, reply, "Detail Free Fire - 100 Diamonds")
	assert.Contains(t, reply, "Total Terjual: 2 unit")
	assert.Contains(t, reply, "Harga Jual: Rp 15.000")
}

func TestAnswerForecast(t *testing.T) {
	qc := testContext()
	reply := newTestSynthesizer().Answer("apakah free fire masih laku tahun depan?", qc)

	assert.Contains(t, reply, "Prediksi Free Fire")
	// Margin passes the bar but two unique buyers do not.
	assert.Contains(t, reply, "PERLU PERHATIAN")
}

func TestAnswerWorstGame(t *testing.T) {
	qc := testContext()
	reply := newTestSynthesizer().Answer("game apa yang paling tidak laris?", qc)

	assert.Contains(t, reply, "Game Paling Tidak Laris")
	assert.Contains(t, reply, "Mobile Legends")
}

func TestAnswerMonthComparison(t *testing.T) {
	qc := testContext()
	require.Len(t, qc.Months, 2)

	reply := newTestSynthesizer().Answer("bandingkan penjualan dari bulan juni ke juli", qc)

	assert.Contains(t, reply, "Perbandingan Bulanan")
	assert.Contains(t, reply, "Juni 2025")
	assert.Contains(t, reply, "Juli 2025")
	// 500.000 against 700.000 is a 28.6% drop.
	assert.Contains(t, reply, "-28.6%")
	assert.Contains(t, reply, "(Turun)")
}

func TestAnswerMonthComparisonNeedsTwoMonths(t *testing.T) {
	games := []model.Game{{ID: "1", Name: "Free Fire", IsActive: true}}
	products := []model.Product{{ID: "1", GameID: "1", Denomination: "100 Diamonds", Price: 15_000, Cost: 13_000, Profit: 2_000}}
	txs := []model.Transaction{{ID: "t1", UserID: "1", ProductID: "1", Amount: 15_000, Profit: 2_000,
		Status: model.TxCompleted, CompletedAt: time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC), PaymentMethod: "DANA"}}
	qc := analytics.BuildContext(analytics.NewSnapshot(games, products, nil, txs))

	reply := newTestSynthesizer().Answer("bandingkan bulan ini ke bulan lalu", qc)

	assert.NotContains(t, reply, "Perbandingan Bulanan")
	assert.Contains(t, reply, "RVS Assistant siap membantu", "single month falls through to the summary")
}

func TestAnswerTopProductsPeriods(t *testing.T) {
	qc := testContext()
	s := newTestSynthesizer()

	t.Run("no time filter spans everything", func(t *testing.T) {
		reply := s.Answer("produk apa yang paling laris?", qc)
		assert.Contains(t, reply, "Produk Terlaris Keseluruhan")
		assert.Contains(t, reply, "Total Produk Terjual: 3 unit")
		assert.Contains(t, reply, "Total Revenue: Rp 1.200.000")
	})

	t.Run("today keeps only anchor-day sales", func(t *testing.T) {
		reply := s.Answer("produk apa yang paling laris hari ini?", qc)
		assert.Contains(t, reply, "Produk Terlaris Hari ini")
		assert.Contains(t, reply, "Total Produk Terjual: 1 unit")
		assert.Contains(t, reply, "Total Revenue: Rp 500.000")
	})
}

func TestAnswerRulePriority(t *testing.T) {
	qc := testContext()
	s := newTestSynthesizer()

	tests := []struct {
		name     string
		question string
		expect   string
	}{
		{"margin beats generic sales", "margin game dan revenue", "Margin Semua Game"},
		{"game revenue beats generic sales", "revenue mobile legends", "Revenue Mobile Legends"},
		{"recommendation", "apa rekomendasi strategi bisnis?", "REKOMENDASI BISNIS STRATEGIS"},
		{"stock", "bagaimana stok produk?", "MANAJEMEN STOK"},
		{"pricing", "apakah harga sudah optimal?", "STRATEGI PRICING"},
		{"marketing", "butuh ide campaign promosi", "STRATEGI MARKETING"},
		{"operations", "gimana efisiensi operasional?", "OPTIMASI OPERASIONAL"},
		{"generic sales summary", "berapa omzet kita?", "Ringkasan Penjualan RVS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, s.Answer(tt.question, qc), tt.expect)
		})
	}
}

func TestAnswerNeverEmpty(t *testing.T) {
	qc := testContext()
	s := newTestSynthesizer()

	questions := []string{
		"",
		"halo",
		"xyzzy ???",
		"ceritakan sesuatu",
		"BERAPA",
	}
	for _, q := range questions {
		assert.NotEmpty(t, s.Answer(q, qc), "question %q", q)
	}
}
