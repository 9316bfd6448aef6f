package scrapers

var pinterestCatalog = Catalog{
	{
		Name:      "Design Inspiration",
		Username:  "@designinspo",
		Avatar:    "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?w=100&h=100&fit=crop",
		Content:   "Minimalist home office setup ideas 💼✨ Perfect workspace inspiration",
		MediaURL:  "https://images.unsplash.com/photo-1484807352052-23338990c6c6?w=800&h=600&fit=crop",
		Likes:     890_000,
		Comments:  12_000,
		Shares:    145_000,
		Timestamp: "2 hours ago",
	},
	{
		Name:      "Food & Recipe",
		Username:  "@foodheaven",
		Avatar:    "https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=100&h=100&fit=crop",
		Content:   "Easy one-pot pasta recipes 🍝 Save for later!",
		MediaURL:  "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=800&h=600&fit=crop",
		Likes:     1_200_000,
		Comments:  23_000,
		Shares:    234_000,
		Timestamp: "4 hours ago",
	},
	{
		Name:      "Fashion Trends",
		Username:  "@fashionista",
		Avatar:    "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=100&h=100&fit=crop",
		Content:   "Summer outfit ideas 2025 👗☀️ Trending styles you need to try",
		MediaURL:  "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=800&h=600&fit=crop",
		Likes:     1_560_000,
		Comments:  34_000,
		Shares:    289_000,
		Timestamp: "6 hours ago",
	},
	{
		Name:      "Home Decor Ideas",
		Username:  "@homedecor",
		Avatar:    "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=100&h=100&fit=crop",
		Content:   "Cozy bedroom aesthetic 🛏️ Transform your space on a budget",
		MediaURL:  "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=800&h=600&fit=crop",
		Likes:     2_100_000,
		Comments:  45_000,
		Shares:    356_000,
		Timestamp: "8 hours ago",
	},
	{
		Name:      "Travel Destinations",
		Username:  "@wanderlust",
		Avatar:    "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=100&h=100&fit=crop",
		Content:   "Hidden gems in Italy 🇮🇹 Ultimate travel bucket list",
		MediaURL:  "https://images.unsplash.com/photo-1523906834658-6e24ef2386f9?w=800&h=600&fit=crop",
		Likes:     1_890_000,
		Comments:  56_000,
		Shares:    298_000,
		Timestamp: "10 hours ago",
	},
	{
		Name:      "DIY Crafts",
		Username:  "@diyprojects",
		Avatar:    "https://images.unsplash.com/photo-1452860606245-08befc0ff44b?w=100&h=100&fit=crop",
		Content:   "5-minute DIY room decor 🎨 Easy and affordable ideas",
		MediaURL:  "https://images.unsplash.com/photo-1513519245088-0e12902e35ca?w=800&h=600&fit=crop",
		Likes:     1_450_000,
		Comments:  28_000,
		Shares:    267_000,
		Timestamp: "12 hours ago",
	},
	{
		Name:      "Fitness Goals",
		Username:  "@fitlife",
		Avatar:    "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=100&h=100&fit=crop",
		Content:   "30-day abs challenge 💪 Get summer ready with these workouts",
		MediaURL:  "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800&h=600&fit=crop",
		Likes:     1_670_000,
		Comments:  34_000,
		Shares:    234_000,
		Timestamp: "14 hours ago",
	},
	{
		Name:      "Beauty Tips",
		Username:  "@beautyhacks",
		Avatar:    "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=100&h=100&fit=crop",
		Content:   "Natural skincare routine ✨ Glowing skin secrets revealed",
		MediaURL:  "https://images.unsplash.com/photo-1556228578-0d85b1a4d571?w=800&h=600&fit=crop",
		Likes:     1_980_000,
		Comments:  45_000,
		Shares:    312_000,
		Timestamp: "16 hours ago",
	},
	{
		Name:      "Wedding Ideas",
		Username:  "@dreamwedding",
		Avatar:    "https://images.unsplash.com/photo-1519741497674-611481863552?w=100&h=100&fit=crop",
		Content:   "Rustic wedding decorations 💐 Pinterest-worthy inspiration",
		MediaURL:  "https://images.unsplash.com/photo-1519225421980-715cb0215aed?w=800&h=600&fit=crop",
		Likes:     2_300_000,
		Comments:  67_000,
		Shares:    445_000,
		Timestamp: "18 hours ago",
	},
	{
		Name:      "Garden & Plants",
		Username:  "@greenthumb",
		Avatar:    "https://images.unsplash.com/photo-1466692476868-aef1dfb1e735?w=100&h=100&fit=crop",
		Content:   "Indoor plant care guide 🌱 Keep your plants thriving",
		MediaURL:  "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=800&h=600&fit=crop",
		Likes:     1_340_000,
		Comments:  23_000,
		Shares:    178_000,
		Timestamp: "20 hours ago",
	},
	{
		Name:      "Baking Recipes",
		Username:  "@bakewithme",
		Avatar:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=100&h=600&fit=crop",
		Content:   "Perfect chocolate chip cookies 🍪 The ultimate recipe",
		MediaURL:  "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=800&h=600&fit=crop",
		Likes:     1_750_000,
		Comments:  39_000,
		Shares:    289_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Art & Illustration",
		Username:  "@artdaily",
		Avatar:    "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?w=100&h=100&fit=crop",
		Content:   "Watercolor painting tutorials 🎨 Beginner-friendly techniques",
		MediaURL:  "https://images.unsplash.com/photo-1513364776144-60967b0f800f?w=800&h=600&fit=crop",
		Likes:     1_120_000,
		Comments:  18_000,
		Shares:    156_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Photography Tips",
		Username:  "@photopro",
		Avatar:    "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=100&h=100&fit=crop",
		Content:   "Golden hour photography 📸 How to capture perfect shots",
		MediaURL:  "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
		Likes:     1_560_000,
		Comments:  28_000,
		Shares:    223_000,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Quotes & Motivation",
		Username:  "@dailyinspo",
		Avatar:    "https://images.unsplash.com/photo-1499750310107-5fef28a66643?w=100&h=100&fit=crop",
		Content:   "Inspirational quotes for a fresh start 💫 Monday motivation",
		MediaURL:  "https://images.unsplash.com/photo-1495364141860-b0d03eccd065?w=800&h=600&fit=crop",
		Likes:     980_000,
		Comments:  14_000,
		Shares:    134_000,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Nail Art Designs",
		Username:  "@nailartist",
		Avatar:    "https://images.unsplash.com/photo-1604654894610-df63bc536371?w=100&h=100&fit=crop",
		Content:   "Spring nail designs 💅 Trending colors and patterns",
		MediaURL:  "https://images.unsplash.com/photo-1610992015732-2449b76344bc?w=800&h=600&fit=crop",
		Likes:     1_430_000,
		Comments:  31_000,
		Shares:    245_000,
		Timestamp: "3 days ago",
	},
}
