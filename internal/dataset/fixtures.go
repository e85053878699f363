package dataset

import (
	"time"

	"topup-admin/internal/model"
)

// seedGames is the fixed catalog of supported titles.
func seedGames() []model.Game {
	return []model.Game{
		{ID: "1", Name: "Free Fire", Icon: "🔥", Category: "Battle Royale", IsActive: true},
		{ID: "2", Name: "Mobile Legends", Icon: "⚔️", Category: "MOBA", IsActive: true},
		{ID: "3", Name: "Honor of Kings", Icon: "👑", Category: "MOBA", IsActive: true},
		{ID: "4", Name: "Call of Duty Mobile", Icon: "🎯", Category: "FPS", IsActive: true},
		{ID: "5", Name: "Clash of Clans", Icon: "🏰", Category: "Strategy", IsActive: true},
		{ID: "6", Name: "Clash Royale", Icon: "👑", Category: "Strategy", IsActive: true},
		{ID: "7", Name: "PUBG Mobile", Icon: "🎮", Category: "Battle Royale", IsActive: true},
		{ID: "8", Name: "Genshin Impact", Icon: "⭐", Category: "RPG", IsActive: true},
		{ID: "9", Name: "Wild Rift", Icon: "🌟", Category: "MOBA", IsActive: true},
		{ID: "10", Name: "Valorant", Icon: "🔫", Category: "FPS", IsActive: true},
		{ID: "11", Name: "Arena of Valor", Icon: "⚡", Category: "MOBA", IsActive: true},
		{ID: "12", Name: "Brawl Stars", Icon: "💥", Category: "Action", IsActive: true},
	}
}

// seedProducts is the initial top-up package list. Profit is Price - Cost.
func seedProducts() []model.Product {
	return []model.Product{
		// Free Fire
		{ID: "1", GameID: "1", Name: "Free Fire Diamonds", Denomination: "70 Diamonds", Price: 12000, Cost: 10000, Profit: 2000, IsActive: true},
		{ID: "2", GameID: "1", Name: "Free Fire Diamonds", Denomination: "140 Diamonds", Price: 24000, Cost: 20000, Profit: 4000, IsActive: true},
		{ID: "3", GameID: "1", Name: "Free Fire Diamonds", Denomination: "355 Diamonds", Price: 60000, Cost: 50000, Profit: 10000, IsActive: true},
		{ID: "4", GameID: "1", Name: "Free Fire Diamonds", Denomination: "720 Diamonds", Price: 120000, Cost: 100000, Profit: 20000, IsActive: true},

		// Mobile Legends
		{ID: "5", GameID: "2", Name: "Mobile Legends Diamonds", Denomination: "86 Diamonds", Price: 20000, Cost: 17000, Profit: 3000, IsActive: true},
		{ID: "6", GameID: "2", Name: "Mobile Legends Diamonds", Denomination: "172 Diamonds", Price: 40000, Cost: 34000, Profit: 6000, IsActive: true},
		{ID: "7", GameID: "2", Name: "Mobile Legends Diamonds", Denomination: "429 Diamonds", Price: 99000, Cost: 85000, Profit: 14000, IsActive: true},
		{ID: "8", GameID: "2", Name: "Mobile Legends Diamonds", Denomination: "878 Diamonds", Price: 199000, Cost: 170000, Profit: 29000, IsActive: true},

		// Honor of Kings
		{ID: "9", GameID: "3", Name: "HOK Tokens", Denomination: "60 Tokens", Price: 15000, Cost: 12500, Profit: 2500, IsActive: true},
		{ID: "10", GameID: "3", Name: "HOK Tokens", Denomination: "300 Tokens", Price: 75000, Cost: 63000, Profit: 12000, IsActive: true},
		{ID: "11", GameID: "3", Name: "HOK Tokens", Denomination: "980 Tokens", Price: 240000, Cost: 205000, Profit: 35000, IsActive: true},

		// CODM
		{ID: "12", GameID: "4", Name: "CODM CP", Denomination: "80 CP", Price: 18000, Cost: 15000, Profit: 3000, IsActive: true},
		{ID: "13", GameID: "4", Name: "CODM CP", Denomination: "400 CP", Price: 89000, Cost: 75000, Profit: 14000, IsActive: true},
		{ID: "14", GameID: "4", Name: "CODM CP", Denomination: "800 CP", Price: 179000, Cost: 152000, Profit: 27000, IsActive: true},

		// COC
		{ID: "15", GameID: "5", Name: "COC Gems", Denomination: "500 Gems", Price: 65000, Cost: 55000, Profit: 10000, IsActive: true},
		{ID: "16", GameID: "5", Name: "COC Gems", Denomination: "1200 Gems", Price: 150000, Cost: 128000, Profit: 22000, IsActive: true},
		{ID: "17", GameID: "5", Name: "COC Gems", Denomination: "2500 Gems", Price: 299000, Cost: 255000, Profit: 44000, IsActive: true},

		// Clash Royale
		{ID: "18", GameID: "6", Name: "Clash Royale Gems", Denomination: "500 Gems", Price: 65000, Cost: 55000, Profit: 10000, IsActive: true},
		{ID: "19", GameID: "6", Name: "Clash Royale Gems", Denomination: "1200 Gems", Price: 150000, Cost: 128000, Profit: 22000, IsActive: true},

		// PUBG Mobile
		{ID: "20", GameID: "7", Name: "PUBG Mobile UC", Denomination: "60 UC", Price: 15000, Cost: 12500, Profit: 2500, IsActive: true},
		{ID: "21", GameID: "7", Name: "PUBG Mobile UC", Denomination: "325 UC", Price: 75000, Cost: 63000, Profit: 12000, IsActive: true},
		{ID: "22", GameID: "7", Name: "PUBG Mobile UC", Denomination: "660 UC", Price: 150000, Cost: 128000, Profit: 22000, IsActive: true},

		// Genshin Impact
		{ID: "23", GameID: "8", Name: "Genshin Impact Genesis Crystals", Denomination: "60 Crystals", Price: 15000, Cost: 12500, Profit: 2500, IsActive: true},
		{ID: "24", GameID: "8", Name: "Genshin Impact Genesis Crystals", Denomination: "300 Crystals", Price: 75000, Cost: 63000, Profit: 12000, IsActive: true},
		{ID: "25", GameID: "8", Name: "Genshin Impact Genesis Crystals", Denomination: "980 Crystals", Price: 240000, Cost: 205000, Profit: 35000, IsActive: true},

		// Wild Rift
		{ID: "26", GameID: "9", Name: "Wild Rift Wild Cores", Denomination: "525 Cores", Price: 75000, Cost: 63000, Profit: 12000, IsActive: true},
		{ID: "27", GameID: "9", Name: "Wild Rift Wild Cores", Denomination: "1375 Cores", Price: 189000, Cost: 161000, Profit: 28000, IsActive: true},

		// Valorant
		{ID: "28", GameID: "10", Name: "Valorant Points", Denomination: "475 VP", Price: 65000, Cost: 55000, Profit: 10000, IsActive: true},
		{ID: "29", GameID: "10", Name: "Valorant Points", Denomination: "1000 VP", Price: 135000, Cost: 115000, Profit: 20000, IsActive: true},

		// Arena of Valor
		{ID: "30", GameID: "11", Name: "AOV Vouchers", Denomination: "60 Vouchers", Price: 15000, Cost: 12500, Profit: 2500, IsActive: true},
		{ID: "31", GameID: "11", Name: "AOV Vouchers", Denomination: "300 Vouchers", Price: 75000, Cost: 63000, Profit: 12000, IsActive: true},

		// Brawl Stars
		{ID: "32", GameID: "12", Name: "Brawl Stars Gems", Denomination: "80 Gems", Price: 18000, Cost: 15000, Profit: 3000, IsActive: true},
		{ID: "33", GameID: "12", Name: "Brawl Stars Gems", Denomination: "170 Gems", Price: 35000, Cost: 30000, Profit: 5000, IsActive: true},
	}
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func stamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedUsers() []model.User {
	return []model.User{
		{ID: "1", Email: "user1@gmail.com", Username: "gamer_pro", Phone: "081234567890", CreatedAt: day("2025-01-15"), TotalSpent: 450000, TotalTransactions: 15},
		{ID: "2", Email: "user2@gmail.com", Username: "ml_legend", Phone: "081234567891", CreatedAt: day("2025-01-20"), TotalSpent: 320000, TotalTransactions: 12},
		{ID: "3", Email: "user3@gmail.com", Username: "ff_master", Phone: "081234567892", CreatedAt: day("2025-02-01"), TotalSpent: 280000, TotalTransactions: 8},
		{ID: "4", Email: "user4@gmail.com", Username: "cod_sniper", Phone: "081234567893", CreatedAt: day("2025-02-10"), TotalSpent: 520000, TotalTransactions: 18},
		{ID: "5", Email: "user5@gmail.com", Username: "clash_king", Phone: "081234567894", CreatedAt: day("2025-02-15"), TotalSpent: 380000, TotalTransactions: 14},
		{ID: "6", Email: "user6@gmail.com", Username: "hok_warrior", Phone: "081234567895", CreatedAt: day("2025-03-01"), TotalSpent: 290000, TotalTransactions: 10},
		{ID: "7", Email: "user7@gmail.com", Username: "pubg_ace", Phone: "081234567896", CreatedAt: day("2025-03-05"), TotalSpent: 410000, TotalTransactions: 16},
		{ID: "8", Email: "user8@gmail.com", Username: "genshin_fan", Phone: "081234567897", CreatedAt: day("2025-03-10"), TotalSpent: 350000, TotalTransactions: 11},
		{ID: "9", Email: "user9@gmail.com", Username: "mobile_gamer", Phone: "081234567898", CreatedAt: day("2025-03-15"), TotalSpent: 480000, TotalTransactions: 19},
		{ID: "10", Email: "user10@gmail.com", Username: "esports_pro", Phone: "081234567899", CreatedAt: day("2025-03-20"), TotalSpent: 390000, TotalTransactions: 13},
		{ID: "11", Email: "user11@gmail.com", Username: "diamond_hunter", Phone: "081234567800", CreatedAt: day("2025-04-01"), TotalSpent: 310000, TotalTransactions: 9},
		{ID: "12", Email: "user12@gmail.com", Username: "top_player", Phone: "081234567801", CreatedAt: day("2025-04-05"), TotalSpent: 440000, TotalTransactions: 17},
		{ID: "13", Email: "user13@gmail.com", Username: "game_addict", Phone: "081234567802", CreatedAt: day("2025-04-10"), TotalSpent: 360000, TotalTransactions: 12},
		{ID: "14", Email: "user14@gmail.com", Username: "royal_clash", Phone: "081234567803", CreatedAt: day("2025-04-15"), TotalSpent: 270000, TotalTransactions: 7},
		{ID: "15", Email: "user15@gmail.com", Username: "legend_player", Phone: "081234567804", CreatedAt: day("2025-04-20"), TotalSpent: 500000, TotalTransactions: 20},
		{ID: "16", Email: "user16@gmail.com", Username: "wild_rift_pro", Phone: "081234567805", CreatedAt: day("2025-05-01"), TotalSpent: 380000, TotalTransactions: 14},
		{ID: "17", Email: "user17@gmail.com", Username: "valorant_ace", Phone: "081234567806", CreatedAt: day("2025-05-05"), TotalSpent: 420000, TotalTransactions: 16},
		{ID: "18", Email: "user18@gmail.com", Username: "aov_master", Phone: "081234567807", CreatedAt: day("2025-05-10"), TotalSpent: 290000, TotalTransactions: 11},
		{ID: "19", Email: "user19@gmail.com", Username: "brawl_champion", Phone: "081234567808", CreatedAt: day("2025-05-15"), TotalSpent: 340000, TotalTransactions: 13},
		{ID: "20", Email: "user20@gmail.com", Username: "gaming_master", Phone: "081234567809", CreatedAt: day("2025-05-20"), TotalSpent: 460000, TotalTransactions: 18},
	}
}

// seedOrders is a small window of recent fulfillment orders around the anchor.
func seedOrders() []model.Order {
	return []model.Order{
		{ID: "1", UserID: "1", ProductID: "1", Quantity: 1, TotalAmount: 12000, Status: model.OrderPending, CreatedAt: stamp("2025-07-22T10:30:00Z"), UpdatedAt: stamp("2025-07-22T10:30:00Z"), PlayerInfo: model.PlayerInfo{PlayerID: "123456789", PlayerName: "ProGamer"}},
		{ID: "2", UserID: "2", ProductID: "5", Quantity: 2, TotalAmount: 40000, Status: model.OrderProcessing, CreatedAt: stamp("2025-07-22T11:15:00Z"), UpdatedAt: stamp("2025-07-22T11:20:00Z"), PlayerInfo: model.PlayerInfo{PlayerID: "987654321", PlayerName: "MLLegend"}},
		{ID: "3", UserID: "3", ProductID: "2", Quantity: 1, TotalAmount: 24000, Status: model.OrderCompleted, CreatedAt: stamp("2025-07-21T14:20:00Z"), UpdatedAt: stamp("2025-07-21T14:25:00Z"), PlayerInfo: model.PlayerInfo{PlayerID: "456789123", PlayerName: "FFMaster"}},
		{ID: "4", UserID: "4", ProductID: "12", Quantity: 1, TotalAmount: 18000, Status: model.OrderCompleted, CreatedAt: stamp("2025-07-21T16:45:00Z"), UpdatedAt: stamp("2025-07-21T16:50:00Z"), PlayerInfo: model.PlayerInfo{PlayerID: "789123456", PlayerName: "CODSniper"}},
		{ID: "5", UserID: "5", ProductID: "15", Quantity: 1, TotalAmount: 65000, Status: model.OrderProcessing, CreatedAt: stamp("2025-07-22T09:10:00Z"), UpdatedAt: stamp("2025-07-22T09:15:00Z"), PlayerInfo: model.PlayerInfo{PlayerID: "321654987", PlayerName: "ClashKing"}},
		{ID: "6", UserID: "6", ProductID: "9", Quantity: 3, TotalAmount: 45000, Status: model.OrderCompleted, CreatedAt: stamp("2025-07-20T13:30:00Z"), UpdatedAt: stamp("2025-07-20T13:35:00Z"), PlayerInfo: model.PlayerInfo{PlayerID: "654987321", PlayerName: "HOKWarrior"}},
		{ID: "7", UserID: "7", ProductID: "20", Quantity: 1, TotalAmount: 15000, Status: model.OrderFailed, CreatedAt: stamp("2025-07-22T12:00:00Z"), UpdatedAt: stamp("2025-07-22T12:05:00Z"), PlayerInfo: model.PlayerInfo{PlayerID: "147258369", PlayerName: "PUBGAce"}},
		{ID: "8", UserID: "8", ProductID: "23", Quantity: 1, TotalAmount: 15000, Status: model.OrderCompleted, CreatedAt: stamp("2025-07-19T15:20:00Z"), UpdatedAt: stamp("2025-07-19T15:25:00Z"), PlayerInfo: model.PlayerInfo{PlayerID: "369258147", PlayerName: "GenshinFan"}},
		{ID: "9", UserID: "16", ProductID: "26", Quantity: 1, TotalAmount: 75000, Status: model.OrderCompleted, CreatedAt: stamp("2025-07-18T10:30:00Z"), UpdatedAt: stamp("2025-07-18T10:35:00Z"), PlayerInfo: model.PlayerInfo{PlayerID: "159753486", PlayerName: "WildRiftPro"}},
		{ID: "10", UserID: "17", ProductID: "28", Quantity: 1, TotalAmount: 65000, Status: model.OrderCompleted, CreatedAt: stamp("2025-07-17T14:20:00Z"), UpdatedAt: stamp("2025-07-17T14:25:00Z"), PlayerInfo: model.PlayerInfo{PlayerID: "486159753", PlayerName: "ValorantAce"}},
	}
}

// paymentMethods are the storefront's supported Indonesian payment channels.
var paymentMethods = []string{
	"Dana", "GoPay", "OVO", "ShopeePay", "LinkAja",
	"BCA Transfer", "BRI Transfer", "BNI Transfer", "Mandiri Transfer",
	"CIMB Transfer", "Permata Transfer", "Danamon Transfer", "BSI Transfer",
}
