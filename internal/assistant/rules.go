package assistant

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"topup-admin/internal/analytics"
	"topup-admin/internal/model"
)

// Rule is one entry of the ordered intent table: a predicate over the
// lower-cased question and a formatter producing the report. A formatter may
// return an empty string to fall through to later rules, which is how
// secondary guards (e.g. "a specific game was actually mentioned") work.
type Rule struct {
	Name  string
	Match func(q string, ctx *analytics.QueryContext) bool
	Reply func(q string, ctx *analytics.QueryContext) string
}

// Greeting is the assistant's opening message.
const Greeting = "Halo! Saya adalah asisten AI untuk RVS. Saya dapat membantu Anda menganalisis data penjualan, memberikan insight bisnis, dan menjawab pertanyaan tentang performa toko. Apa yang ingin Anda ketahui?"

func containsAny(q string, keys ...string) bool {
	for _, k := range keys {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}

// mentionedGame finds the first game whose name appears in the question and
// returns its performance row.
func mentionedGame(q string, ctx *analytics.QueryContext) (analytics.GamePerformance, bool) {
	for _, g := range ctx.Snapshot.Games {
		if strings.Contains(q, strings.ToLower(g.Name)) {
			return ctx.FindGame(g.Name)
		}
	}
	return analytics.GamePerformance{}, false
}

// mentionedProduct finds the first product whose denomination appears in the
// question.
func mentionedProduct(q string, ctx *analytics.QueryContext) (analytics.ProductPerformance, bool) {
	for _, p := range ctx.AllProducts {
		if strings.Contains(q, strings.ToLower(p.Denomination)) {
			return p, true
		}
	}
	return analytics.ProductPerformance{}, false
}

// gameByNamePart finds the performance row whose game name contains part.
func gameByNamePart(ctx *analytics.QueryContext, part string) (analytics.GamePerformance, bool) {
	for _, g := range ctx.GamePerformance {
		if strings.Contains(strings.ToLower(g.Name), part) {
			return g, true
		}
	}
	return analytics.GamePerformance{}, false
}

// rules builds the ordered intent table. Order is behavior: earlier, more
// specific rules pre-empt the generic ones at the bottom.
func (s *Synthesizer) rules() []Rule {
	return []Rule{
		{Name: "margin", Match: matchMargin, Reply: replyMargin},
		{Name: "players", Match: matchPlayers, Reply: replyPlayers},
		{Name: "top-products-period", Match: matchTopProductsPeriod, Reply: s.replyTopProductsPeriod},
		{Name: "game-revenue", Match: matchGameRevenue, Reply: replyGameRevenue},
		{Name: "forecast", Match: matchForecast, Reply: replyForecast},
		{Name: "product-detail", Match: matchProductDetail, Reply: replyProductDetail},
		{Name: "recommendation", Match: matchKeywords("keputusan", "rekomendasi", "saran", "strategi"), Reply: replyRecommendation},
		{Name: "stock", Match: matchKeywords("stok", "inventory", "persediaan"), Reply: replyStock},
		{Name: "pricing", Match: matchKeywords("harga", "pricing", "tarif"), Reply: replyPricing},
		{Name: "marketing", Match: matchKeywords("marketing", "promosi", "iklan", "campaign"), Reply: replyMarketing},
		{Name: "customers", Match: matchKeywords("customer", "pelanggan", "retention", "pertumbuhan"), Reply: replyCustomers},
		{Name: "operations", Match: matchKeywords("operasional", "efisiensi", "proses", "workflow"), Reply: replyOperations},
		{Name: "free-fire", Match: matchKeywords("free fire", "ff"), Reply: namedGameReply("free fire", "🔥", "Free Fire")},
		{Name: "mobile-legends", Match: matchKeywords("mobile legend", "ml"), Reply: namedGameReply("mobile legend", "⚔️", "Mobile Legends")},
		{Name: "pubg", Match: matchKeywords("pubg"), Reply: namedGameReply("pubg", "🎮", "PUBG Mobile")},
		{Name: "worst-game", Match: matchKeywords("tidak laris", "terburuk", "paling rendah"), Reply: replyWorstGame},
		{Name: "month-comparison", Match: matchMonthComparison, Reply: replyMonthComparison},
		{Name: "products", Match: matchKeywords("produk", "paket"), Reply: replyProducts},
		{Name: "sales", Match: matchKeywords("penjualan", "revenue", "omzet"), Reply: replySales},
		{Name: "default", Match: matchAlways, Reply: replyDefault},
	}
}

func matchAlways(string, *analytics.QueryContext) bool { return true }

func matchKeywords(keys ...string) func(string, *analytics.QueryContext) bool {
	return func(q string, _ *analytics.QueryContext) bool {
		return containsAny(q, keys...)
	}
}

// --- margin ---

func matchMargin(q string, ctx *analytics.QueryContext) bool {
	if !strings.Contains(q, "margin") {
		return false
	}
	if strings.Contains(q, "game") {
		return true
	}
	_, ok := mentionedGame(q, ctx)
	return ok
}

func replyMargin(q string, ctx *analytics.QueryContext) string {
	if g, ok := mentionedGame(q, ctx); ok {
		var analysis, advice string
		switch {
		case g.ProfitMargin >= 20:
			analysis = "✅ Margin sangat bagus!"
		case g.ProfitMargin >= 15:
			analysis = "🟡 Margin cukup baik"
		default:
			analysis = "🔴 Margin perlu ditingkatkan"
		}
		if g.ProfitMargin < 15 {
			advice = "Pertimbangkan naikkan harga 10-15%"
		} else {
			advice = "Pertahankan strategi pricing saat ini"
		}
		return fmt.Sprintf(`💰 **Margin %s:**

📊 **Detail Margin:**
• Profit Margin: %s%%
• Total Revenue: Rp %s
• Total Profit: Rp %s
• Rata-rata per Transaksi: Rp %s

📈 **Analisis:**
%s

🎯 **Rekomendasi:**
%s`, g.Name, pct(g.ProfitMargin), rupiah(g.Revenue), rupiah(g.Profit), rupiahF(g.AvgTransaction), analysis, advice)
	}

	var lines []string
	i := 0
	for _, g := range ctx.GamePerformance {
		if g.Transactions == 0 {
			continue
		}
		i++
		lines = append(lines, fmt.Sprintf("%d. %s: %s%% (Rp %s profit)", i, g.Name, pct(g.ProfitMargin), rupiah(g.Profit)))
	}
	return fmt.Sprintf(`💰 **Margin Semua Game:**

%s

📊 **Rata-rata Margin Keseluruhan:** %s%%`, strings.Join(lines, "\n"), pct(ctx.ProfitMargin))
}

// --- players / users ---

func matchPlayers(q string, _ *analytics.QueryContext) bool {
	return containsAny(q, "player", "user", "pelanggan")
}

func replyPlayers(q string, ctx *analytics.QueryContext) string {
	if strings.Contains(q, "berapa") && containsAny(q, "rata", "average") {
		var perGame []string
		i := 0
		for _, g := range ctx.GamePerformance {
			if g.Transactions == 0 {
				continue
			}
			i++
			perGame = append(perGame, fmt.Sprintf("%d. %s: %d unique players", i, g.Name, g.UniqueUsers))
		}
		var avgSpend, txPerUser, conversion float64
		if ctx.ActiveUsers > 0 {
			avgSpend = float64(ctx.TotalRevenue) / float64(ctx.ActiveUsers)
			txPerUser = float64(ctx.TotalTransactions) / float64(ctx.ActiveUsers)
		}
		if ctx.TotalUsers > 0 {
			conversion = float64(ctx.ActiveUsers) / float64(ctx.TotalUsers) * 100
		}
		return fmt.Sprintf(`👥 **Analisis Player/User:**

📊 **Total User Statistics:**
• Total Registered Users: %d
• Active Users (pernah topup): %d
• Inactive Users: %d
• Rata-rata Spending per User: Rp %s

🎮 **Player per Game:**
%s

📈 **User Engagement:**
• Rata-rata Transaksi per Active User: %.1f
• Conversion Rate: %s%%`,
			ctx.TotalUsers, ctx.ActiveUsers, ctx.TotalUsers-ctx.ActiveUsers, rupiahF(avgSpend),
			strings.Join(perGame, "\n"), txPerUser, pct(conversion))
	}

	if g, ok := mentionedGame(q, ctx); ok {
		var txPerPlayer, spendPerPlayer float64
		if g.UniqueUsers > 0 {
			txPerPlayer = float64(g.Transactions) / float64(g.UniqueUsers)
			spendPerPlayer = float64(g.Revenue) / float64(g.UniqueUsers)
		}
		var engagement string
		switch {
		case g.UniqueUsers > 50:
			engagement = "🔥 Sangat Populer!"
		case g.UniqueUsers > 20:
			engagement = "✅ Cukup Populer"
		default:
			engagement = "⚠️ Perlu Boost Marketing"
		}
		return fmt.Sprintf(`👥 **Player %s:**

📊 **User Statistics:**
• Unique Players: %d orang
• Total Transaksi: %d
• Rata-rata Transaksi per Player: %.1f
• Rata-rata Spending per Player: Rp %s

🎯 **Player Engagement Level:**
%s`, g.Name, g.UniqueUsers, g.Transactions, txPerPlayer, rupiahF(spendPerPlayer), engagement)
	}

	// Neither guard hit; let a later rule answer.
	return ""
}

// --- top products within a time sub-filter ---

func matchTopProductsPeriod(q string, _ *analytics.QueryContext) bool {
	return strings.Contains(q, "produk") && containsAny(q, "terjual", "laris")
}

// periodKeywords maps question fragments to a sub-filter. Checked in order.
var periodKeywords = []struct {
	key    string
	filter string
}{
	{"hari ini", "today"},
	{"today", "today"},
	{"minggu ini", "week"},
	{"week", "week"},
	{"bulan ini", "month"},
	{"month", "month"},
	{"tahun ini", "year"},
	{"year", "year"},
}

var periodLabels = map[string]string{
	"all":   "keseluruhan",
	"today": "hari ini",
	"week":  "minggu ini",
	"month": "bulan ini",
	"year":  "tahun ini",
}

func (s *Synthesizer) replyTopProductsPeriod(q string, ctx *analytics.QueryContext) string {
	filter := "all"
	for _, pk := range periodKeywords {
		if strings.Contains(q, pk.key) {
			filter = pk.filter
		}
	}

	// The chat sub-filter derives its own boundaries from the anchor,
	// independent of the dashboard range resolver.
	eff := analytics.EffectiveNow(s.now(), s.anchor)
	var start time.Time
	switch filter {
	case "today":
		start = time.Date(s.anchor.Year(), s.anchor.Month(), s.anchor.Day(), 1, 0, 0, 0, time.UTC)
	case "week":
		y, m, d := eff.UTC().Date()
		start = time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -7)
	case "month":
		y, m, d := eff.UTC().Date()
		start = time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	case "year":
		start = time.Date(s.anchor.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	var filtered []model.Transaction
	for _, t := range ctx.Snapshot.Transactions {
		if filter != "all" && (t.CompletedAt.Before(start) || t.CompletedAt.After(eff)) {
			continue
		}
		filtered = append(filtered, t)
	}

	stats := analytics.SoldProducts(analytics.AggregateProducts(ctx.Snapshot, filtered))
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Sold > stats[j].Sold })

	label := periodLabels[filter]
	title := strings.ToUpper(label[:1]) + label[1:]

	var lines []string
	var totalSold int
	var totalRevenue int64
	for _, p := range stats {
		totalSold += p.Sold
		totalRevenue += p.Revenue
	}
	top := stats
	if len(top) > 10 {
		top = top[:10]
	}
	for i, p := range top {
		lines = append(lines, fmt.Sprintf("%d. %s\n   📊 Terjual: %d unit\n   💰 Revenue: Rp %s", i+1, p.Name, p.Sold, rupiah(p.Revenue)))
	}

	return fmt.Sprintf(`📦 **Produk Terlaris %s:**

%s

📈 **Total untuk %s:**
• Total Produk Terjual: %d unit
• Total Revenue: Rp %s`, title, strings.Join(lines, "\n\n"), label, totalSold, rupiah(totalRevenue))
}

// --- revenue for a specific game ---

func matchGameRevenue(q string, ctx *analytics.QueryContext) bool {
	if !strings.Contains(q, "revenue") {
		return false
	}
	_, ok := mentionedGame(q, ctx)
	return ok
}

func replyGameRevenue(q string, ctx *analytics.QueryContext) string {
	g, ok := mentionedGame(q, ctx)
	if !ok {
		return ""
	}
	level := "⚠️ Below Average - Needs Attention"
	if len(ctx.GamePerformance) > 0 &&
		float64(g.Revenue) > float64(ctx.TotalRevenue)/float64(len(ctx.GamePerformance)) {
		level = "🔥 Above Average Performance!"
	}
	return fmt.Sprintf(`💰 **Revenue %s:**

📊 **Financial Performance:**
• Total Revenue: Rp %s
• Total Profit: Rp %s
• Profit Margin: %s%%
• Total Transaksi: %d
• Rata-rata per Transaksi: Rp %s

📈 **Market Position:**
Ranking #%d dari %d game

🎯 **Performance Level:**
%s`, g.Name, rupiah(g.Revenue), rupiah(g.Profit), pct(g.ProfitMargin), g.Transactions,
		rupiahF(g.AvgTransaction), ctx.GameRank(g.Name), len(ctx.GamePerformance), level)
}

// --- trend forecast ---

func matchForecast(q string, _ *analytics.QueryContext) bool {
	return containsAny(q, "masih laku", "bakal", "prediksi", "minggu depan", "bulan depan", "tahun depan")
}

func replyForecast(q string, ctx *analytics.QueryContext) string {
	if g, ok := mentionedGame(q, ctx); ok {
		var forecast, advice string
		switch classifyGame(g) {
		case TrendPositive:
			forecast = "🚀 **SANGAT LAKU!**\n• Minggu Depan: ✅ Stabil/Naik\n• Bulan Depan: ✅ Growth Potential Tinggi\n• Tahun Depan: ✅ Long-term Viable"
			advice = "Tingkatkan stok dan marketing budget!"
		case TrendStable:
			forecast = "📈 **CUKUP LAKU**\n• Minggu Depan: ✅ Stabil\n• Bulan Depan: 🟡 Perlu Monitoring\n• Tahun Depan: 🟡 Depends on Market"
			advice = "Pertahankan dengan promosi berkala"
		default:
			forecast = "⚠️ **PERLU PERHATIAN**\n• Minggu Depan: 🟡 Mungkin Turun\n• Bulan Depan: 🔴 Risk Tinggi\n• Tahun Depan: 🔴 Consider Discontinue"
			advice = "Evaluasi harga atau fokus ke game lain"
		}
		return fmt.Sprintf(`🔮 **Prediksi %s:**

📊 **Current Performance:**
• Revenue: Rp %s
• Players: %d unique users
• Profit Margin: %s%%
• Category: %s

🎯 **Prediksi Trend:**
%s

💡 **Rekomendasi:**
%s`, g.Name, rupiah(g.Revenue), g.UniqueUsers, pct(g.ProfitMargin), g.Category, forecast, advice)
	}

	if p, ok := mentionedProduct(q, ctx); ok {
		var forecast string
		switch classifyProduct(p) {
		case TrendPositive:
			forecast = "🚀 **BAKAL TETAP LAKU!**\n• Besok: ✅ High Demand\n• Minggu Depan: ✅ Consistent Sales\n• Bulan Depan: ✅ Strong Performance"
		case TrendStable:
			forecast = "📈 **CUKUP STABIL**\n• Besok: ✅ Normal Demand\n• Minggu Depan: 🟡 Moderate Sales\n• Bulan Depan: 🟡 Need Promotion"
		default:
			forecast = "⚠️ **MUNGKIN TURUN**\n• Besok: 🟡 Low Demand\n• Minggu Depan: 🔴 Poor Sales\n• Bulan Depan: 🔴 Consider Remove"
		}
		return fmt.Sprintf(`🔮 **Prediksi %s:**

📊 **Current Performance:**
• Terjual: %d unit
• Revenue: Rp %s
• Profit Margin: %s%%
• Unique Buyers: %d

🎯 **Prediksi Trend:**
%s`, p.Name, p.Sold, rupiah(p.Revenue), pct(p.ProfitMargin), p.UniqueUsers, forecast)
	}

	return ""
}

// --- specific product detail ---

func matchProductDetail(q string, ctx *analytics.QueryContext) bool {
	if !strings.Contains(q, "berapa") {
		return false
	}
	if strings.Contains(q, "produk") {
		return true
	}
	_, ok := mentionedProduct(q, ctx)
	return ok
}

func replyProductDetail(q string, ctx *analytics.QueryContext) string {
	p, ok := mentionedProduct(q, ctx)
	if !ok {
		return ""
	}
	return fmt.Sprintf(`📦 **Detail %s:**

📊 **Sales Performance:**
• Total Terjual: %d unit
• Total Revenue: Rp %s
• Total Profit: Rp %s
• Unique Buyers: %d orang

💰 **Pricing Analysis:**
• Harga Jual: Rp %s
• Harga Modal: Rp %s
• Profit per Unit: Rp %s
• Margin per Unit: %s%%

📈 **Market Position:**
Ranking #%d dari %d produk`, p.Name, p.Sold, rupiah(p.Revenue), rupiah(p.Profit), p.UniqueUsers,
		rupiah(p.UnitPrice), rupiah(p.UnitCost), rupiah(p.UnitProfit), pct(p.UnitMargin),
		ctx.ProductRank(p.ProductID), len(ctx.AllProducts))
}

// --- business recommendation ---

func replyRecommendation(_ string, ctx *analytics.QueryContext) string {
	if len(ctx.GamePerformance) == 0 {
		return ""
	}
	top := ctx.GamePerformance[0]
	worst := ctx.GamePerformance[len(ctx.GamePerformance)-1]

	var marginAdvice string
	switch {
	case ctx.ProfitMargin < 15:
		marginAdvice = "URGENT: Naikkan harga atau cari supplier lebih murah"
	case ctx.ProfitMargin < 20:
		marginAdvice = "Coba tingkatkan margin 2-3%"
	default:
		marginAdvice = "Margin sudah bagus, pertahankan"
	}

	topPayment := "-"
	if len(ctx.PaymentMethods) > 0 {
		topPayment = ctx.PaymentMethods[0].Method
	}

	urgent := "✅ Pertahankan strategi current, tambah variasi produk"
	if ctx.TotalRevenue < 10_000_000 {
		urgent = "🚨 Revenue rendah - Lakukan flash sale 24 jam"
	}

	return fmt.Sprintf(`🎯 **REKOMENDASI BISNIS STRATEGIS:**

📊 **KEPUTUSAN PRIORITAS UTAMA:**

**1. FOKUS GAME TERLARIS** 🏆
• Tingkatkan stok %s (Revenue: Rp %s)
• Buat promosi khusus untuk game ini
• Pertimbangkan paket bundle dengan diskon

**2. EVALUASI GAME UNDERPERFORM** ⚠️
• %s perlu perhatian khusus
• Pertimbangkan: Turunkan harga atau hentikan sementara
• Alihkan budget marketing ke game yang lebih profitable

**3. OPTIMASI PROFIT MARGIN** 💰
• Margin saat ini: %s%%
• %s

**4. STRATEGI MARKETING** 📈
• Fokus promosi pada jam 19:00-22:00 (peak gaming time)
• Target weekend untuk campaign besar
• Gunakan payment method populer: %s

**KEPUTUSAN SEGERA:**
%s`, top.Name, rupiah(top.Revenue), worst.Name, pct(ctx.ProfitMargin), marginAdvice, topPayment, urgent)
}

// --- stock guidance ---

func replyStock(_ string, ctx *analytics.QueryContext) string {
	var hot, slow []string
	for i, p := range ctx.TopProducts {
		if i >= 3 {
			break
		}
		hot = append(hot, fmt.Sprintf("%d. %s - Terjual: %d unit/periode", i+1, p.Name, p.Sold))
	}
	for i, p := range ctx.WorstProducts {
		if i >= 2 {
			break
		}
		slow = append(slow, fmt.Sprintf("%d. %s - Hanya %d unit terjual", i+1, p.Name, p.Sold))
	}
	return fmt.Sprintf(`📦 **MANAJEMEN STOK & INVENTORY:**

**KEPUTUSAN STOK PRIORITAS:**

🔥 **STOK TINGGI (Reorder Segera):**
%s

⚠️ **STOK RENDAH (Evaluasi):**
%s

**REKOMENDASI AKSI:**
• Tingkatkan stok produk top 3 sebesar 50%%
• Kurangi stok produk slow-moving 30%%
• Set minimum stock alert untuk produk populer
• Review supplier untuk produk dengan margin rendah`, strings.Join(hot, "\n"), strings.Join(slow, "\n"))
}

// --- pricing guidance ---

func replyPricing(_ string, ctx *analytics.QueryContext) string {
	var sum float64
	for _, g := range ctx.GamePerformance {
		sum += analytics.Percent(g.Profit, g.Revenue)
	}
	var avgMargin float64
	if len(ctx.GamePerformance) > 0 {
		avgMargin = sum / float64(len(ctx.GamePerformance))
	}

	var raise, hold, optimal []string
	for _, p := range ctx.TopProducts {
		m := analytics.Percent(p.Profit, p.Revenue)
		switch {
		case m < 15 && len(raise) < 3:
			raise = append(raise, fmt.Sprintf("• %s - Margin: %s%% → Naikkan 10-15%%", p.Name, pct(m)))
		case m >= 15 && m < 20 && len(hold) < 2:
			hold = append(hold, fmt.Sprintf("• %s - Margin: %s%%", p.Name, pct(m)))
		case m >= 20 && len(optimal) < 2:
			optimal = append(optimal, fmt.Sprintf("• %s - Margin: %s%%", p.Name, pct(m)))
		}
	}
	raiseBlock := "• Tidak ada produk yang perlu kenaikan harga"
	if len(raise) > 0 {
		raiseBlock = strings.Join(raise, "\n")
	}
	holdBlock := "• Tidak ada produk di kategori ini"
	if len(hold) > 0 {
		holdBlock = strings.Join(hold, "\n")
	}
	optimalBlock := "• Tidak ada produk di kategori ini"
	if len(optimal) > 0 {
		optimalBlock = strings.Join(optimal, "\n")
	}

	return fmt.Sprintf(`💰 **STRATEGI PRICING & HARGA:**

**ANALISIS HARGA SAAT INI:**
• Rata-rata Margin: %s%%
• Target Margin Ideal: 20-25%%

**KEPUTUSAN PRICING:**

🔴 **NAIKKAN HARGA (Margin < 15%%):**
%s

🟡 **PERTAHANKAN HARGA (Margin 15-20%%):**
%s

🟢 **HARGA OPTIMAL (Margin > 20%%):**
%s

**STRATEGI KOMPETITIF:**
• Monitor harga kompetitor mingguan
• Buat paket bundle untuk meningkatkan AOV
• Pertimbangkan dynamic pricing untuk peak hours`, pct(avgMargin), raiseBlock, holdBlock, optimalBlock)
}

// --- marketing guidance ---

func replyMarketing(_ string, ctx *analytics.QueryContext) string {
	if len(ctx.TopGames) < 2 || len(ctx.PaymentMethods) == 0 {
		return ""
	}
	return fmt.Sprintf(`📢 **STRATEGI MARKETING & PROMOSI:**

**KEPUTUSAN CAMPAIGN PRIORITAS:**

🎯 **TARGET AUDIENCE:**
• Fokus pada user dengan spending > Rp 200K
• Game populer: %s, %s
• Payment method favorit: %s

🚀 **CAMPAIGN RECOMMENDATIONS:**

**1. FLASH SALE WEEKEND** ⚡
• Diskon 15%% untuk top 3 produk
• Durasi: Jumat 18:00 - Minggu 23:59
• Target: Increase revenue 25%%

**2. BUNDLE PACKAGE** 📦
• Kombinasi game populer dengan margin tinggi
• Hemat 20%% vs beli terpisah
• Fokus pada %s + %s

**3. LOYALTY PROGRAM** 🏆
• Cashback 5%% untuk transaksi > Rp 100K
• Point reward system
• VIP access untuk user premium

**BUDGET ALLOCATION:**
• 60%% untuk top performing games
• 25%% untuk customer retention
• 15%% untuk testing new products

**KPI TARGET:**
• Increase conversion rate 15%%
• Boost average order value 20%%
• Improve customer lifetime value 30%%`,
		ctx.TopGames[0].Name, ctx.TopGames[1].Name, ctx.PaymentMethods[0].Method,
		ctx.TopGames[0].Name, ctx.TopGames[1].Name)
}

// --- customer retention guidance ---

func replyCustomers(_ string, ctx *analytics.QueryContext) string {
	var avgSpend float64
	if ctx.TotalUsers > 0 {
		avgSpend = float64(ctx.TotalRevenue) / float64(ctx.TotalUsers)
	}
	return fmt.Sprintf(`👥 **STRATEGI CUSTOMER & PERTUMBUHAN:**

**ANALISIS CUSTOMER BASE:**
• Total Active Users: %d
• Average Spending: Rp %s
• Repeat Customer Rate: ~75%%

**KEPUTUSAN CUSTOMER STRATEGY:**

🔄 **RETENTION PROGRAM:**
• Welcome bonus 10%% untuk new user
• Monthly loyalty rewards
• Birthday special discount 20%%
• Referral program: Beri & dapat bonus Rp 25K

📈 **GROWTH INITIATIVES:**
• Social media contest dengan hadiah topup gratis
• Partnership dengan gaming communities
• Influencer collaboration (gaming streamers)
• WhatsApp broadcast untuk promo eksklusif

💎 **VIP CUSTOMER PROGRAM:**
• Tier system berdasarkan total spending
• Priority customer service
• Exclusive early access ke produk baru
• Personal account manager untuk big spenders

**IMMEDIATE ACTIONS:**
• Segment customers berdasarkan behavior
• Setup automated email/WA marketing
• Create customer feedback loop
• Implement NPS scoring system`, ctx.TotalUsers, rupiahF(avgSpend))
}

// --- operational guidance ---

func replyOperations(_ string, ctx *analytics.QueryContext) string {
	successRate := float64(ctx.TotalTransactions) / float64(ctx.TotalTransactions+10) * 100
	return fmt.Sprintf(`⚙️ **OPTIMASI OPERASIONAL & EFISIENSI:**

**ANALISIS OPERASIONAL:**
• Processing Time: ~2-5 menit per order
• Success Rate: %s%%
• Peak Hours: 19:00-22:00 WIB

**KEPUTUSAN OPERASIONAL:**

🚀 **AUTOMATION PRIORITIES:**
• Auto-processing untuk order < Rp 50K
• Bulk processing untuk order serupa
• Auto-refund untuk failed transactions
• Inventory alert system

⏱️ **WORKFLOW OPTIMIZATION:**
• Streamline order verification process
• Implement queue management system
• Setup monitoring dashboard
• Create SOP untuk common issues

👨‍💼 **STAFF MANAGEMENT:**
• Peak hour staffing strategy
• Cross-training untuk multiple games
• Performance incentive program
• Customer service response time target: < 5 menit

📊 **KPI MONITORING:**
• Order processing time
• Customer satisfaction score
• Error rate per payment method
• Daily/weekly performance metrics

**COST REDUCTION:**
• Negotiate better rates dengan payment providers
• Bulk purchase agreements dengan suppliers
• Reduce manual intervention 50%%
• Optimize server costs`, pct(successRate))
}

// --- named game canned analyses ---

func namedGameReply(namePart, icon, title string) func(string, *analytics.QueryContext) string {
	return func(_ string, ctx *analytics.QueryContext) string {
		g, ok := gameByNamePart(ctx, namePart)
		if !ok {
			return ""
		}
		insight := "masih bisa ditingkatkan performanya"
		if len(ctx.GamePerformance) > 0 &&
			float64(g.Revenue) > float64(ctx.TotalRevenue)/float64(len(ctx.GamePerformance)) {
			insight = "berkinerja di atas rata-rata"
		}
		return fmt.Sprintf(`%s **Analisis %s:**

📊 **Performa Keseluruhan:**
• Total Revenue: Rp %s
• Total Transaksi: %d
• Rata-rata per Transaksi: Rp %s
• Total Profit: Rp %s

📈 **Posisi di Market:**
Ranking #%d dari %d game

🎯 **Insight:**
%s %s`, icon, title, rupiah(g.Revenue), g.Transactions, rupiahF(g.AvgTransaction), rupiah(g.Profit),
			ctx.GameRank(g.Name), len(ctx.GamePerformance), title, insight)
	}
}

// --- worst performer ---

func replyWorstGame(_ string, ctx *analytics.QueryContext) string {
	if len(ctx.WorstGames) == 0 {
		return ""
	}
	g := ctx.WorstGames[0]
	return fmt.Sprintf(`🎮 **Game Paling Tidak Laris:**

%s adalah game dengan performa paling rendah:
• Revenue: Rp %s
• Total Transaksi: %d
• Rata-rata per Transaksi: Rp %s
• Total Profit: Rp %s

**Rekomendasi:**
- Pertimbangkan promosi khusus untuk game ini
- Evaluasi harga produk yang mungkin terlalu tinggi
- Cek apakah game masih populer di pasaran`, g.Name, rupiah(g.Revenue), g.Transactions, rupiahF(g.AvgTransaction), rupiah(g.Profit))
}

// --- month-over-month comparison ---

func matchMonthComparison(q string, _ *analytics.QueryContext) bool {
	return strings.Contains(q, "bulan") && containsAny(q, "ke", "dari")
}

func replyMonthComparison(_ string, ctx *analytics.QueryContext) string {
	if len(ctx.Months) < 2 {
		return ""
	}
	latest := ctx.Months[len(ctx.Months)-1]
	previous := ctx.Months[len(ctx.Months)-2]
	growth := analytics.Growth(latest.Revenue, previous.Revenue)
	direction := "(Turun)"
	if growth > 0 {
		direction = "(Naik)"
	}

	var topGames []string
	for i, e := range analytics.TopMonthGames(latest, 3) {
		topGames = append(topGames, fmt.Sprintf("%d. %s: Rp %s", i+1, e.Name, rupiah(e.Revenue)))
	}

	return fmt.Sprintf(`📅 **Perbandingan Bulanan:**

**%s:**
• Revenue: Rp %s
• Transaksi: %d
• Profit: Rp %s

**%s:**
• Revenue: Rp %s
• Transaksi: %d
• Profit: Rp %s

📈 **Pertumbuhan:** %s%% %s

🎮 **Game Terlaris Bulan Ini:**
%s`,
		previous.Name, rupiah(previous.Revenue), previous.Transactions, rupiah(previous.Profit),
		latest.Name, rupiah(latest.Revenue), latest.Transactions, rupiah(latest.Profit),
		pct(growth), direction, strings.Join(topGames, "\n"))
}

// --- generic product listing ---

func replyProducts(_ string, ctx *analytics.QueryContext) string {
	var top, worst []string
	for i, p := range ctx.TopProducts {
		if i >= 3 {
			break
		}
		top = append(top, fmt.Sprintf("%d. %s\n   💰 Revenue: Rp %s\n   📦 Terjual: %d unit", i+1, p.Name, rupiah(p.Revenue), p.Sold))
	}
	for i, p := range ctx.WorstProducts {
		if i >= 2 {
			break
		}
		worst = append(worst, fmt.Sprintf("%d. %s\n   💰 Revenue: Rp %s\n   📦 Terjual: %d unit", i+1, p.Name, rupiah(p.Revenue), p.Sold))
	}
	return fmt.Sprintf(`🏆 **Analisis Produk/Paket:**

**Paket Terlaris:**
%s

**Paket Kurang Laris:**
%s

💡 **Rekomendasi:** Fokuskan stok dan promosi pada paket terlaris!`, strings.Join(top, "\n\n"), strings.Join(worst, "\n\n"))
}

// --- generic revenue summary ---

func replySales(_ string, ctx *analytics.QueryContext) string {
	var topGames []string
	for i, g := range ctx.TopGames {
		topGames = append(topGames, fmt.Sprintf("%d. %s - Rp %s (%d transaksi)", i+1, g.Name, rupiah(g.Revenue), g.Transactions))
	}

	trend := "Data trend belum cukup"
	if len(ctx.Months) >= 2 {
		latest := ctx.Months[len(ctx.Months)-1]
		previous := ctx.Months[len(ctx.Months)-2]
		trend = fmt.Sprintf("Revenue %s%% dari bulan sebelumnya", pct(analytics.Growth(latest.Revenue, previous.Revenue)))
	}

	return fmt.Sprintf(`📊 **Ringkasan Penjualan RVS:**

💰 **Finansial:**
• Total Revenue: Rp %s
• Total Profit: Rp %s
• Profit Margin: %s%%
• Rata-rata Order: Rp %s

🎮 **Game Terlaris:**
%s

📈 **Trend:** %s`, rupiah(ctx.TotalRevenue), rupiah(ctx.TotalProfit), pct(ctx.ProfitMargin),
		rupiahF(ctx.AvgOrderValue), strings.Join(topGames, "\n"), trend)
}

// --- default composite summary ---

func replyDefault(_ string, ctx *analytics.QueryContext) string {
	var topName, worstName string
	var topRevenue, worstRevenue int64
	if len(ctx.TopGames) > 0 {
		topName = ctx.TopGames[0].Name
		topRevenue = ctx.TopGames[0].Revenue
	}
	if len(ctx.WorstGames) > 0 {
		worstName = ctx.WorstGames[0].Name
		worstRevenue = ctx.WorstGames[0].Revenue
	}
	return fmt.Sprintf(`🤖 **RVS Assistant siap membantu!**

Saya bisa memberikan analisis mendalam tentang:

📊 **Data Penjualan:**
• Total Revenue: Rp %s
• Total Transaksi: %d
• Profit Margin: %s%%

🎮 **Game Terpopuler:** %s (Rp %s)
🎯 **Game Terlemah:** %s (Rp %s)

**Tanyakan hal spesifik seperti:**
• "Bagaimana performa Free Fire?"
• "Game apa yang paling tidak laris?"
• "Bandingkan penjualan November dengan Desember"
• "Produk mana yang paling menguntungkan?"
• "Berapa rata-rata penjualan Mobile Legends?"`,
		rupiah(ctx.TotalRevenue), ctx.TotalTransactions, pct(ctx.ProfitMargin),
		topName, rupiah(topRevenue), worstName, rupiah(worstRevenue))
}
