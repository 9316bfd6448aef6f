package scrapers

var instagramCatalog = Catalog{
	{
		Name:      "National Geographic",
		Username:  "@natgeo",
		Avatar:    "https://images.unsplash.com/photo-1516802273409-68526ee1bdd6?w=100&h=100&fit=crop",
		Content:   "Breathtaking sunset over the Grand Canyon 🌅 Photo by @chrisburkard",
		MediaURL:  "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=800&fit=crop",
		Likes:     2_850_000,
		Comments:  18_900,
		Shares:    0,
		Timestamp: "2 hours ago",
	},
	{
		Name:      "Nike",
		Username:  "@nike",
		Avatar:    "https://images.unsplash.com/photo-1556906781-9a412961c28c?w=100&h=100&fit=crop",
		Content:   "Just Do It. New Air Max collection dropping tomorrow 👟",
		MediaURL:  "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800&h=800&fit=crop",
		Likes:     1_950_000,
		Comments:  12_400,
		Shares:    0,
		Timestamp: "4 hours ago",
	},
	{
		Name:      "Cristiano Ronaldo",
		Username:  "@cristiano",
		Avatar:    "https://images.unsplash.com/photo-1633332755192-727a05c4013d?w=100&h=100&fit=crop",
		Content:   "Training hard for the next match 💪⚽ #CR7",
		MediaURL:  "https://images.unsplash.com/photo-1579952363873-27f3bade9f55?w=800&h=800&fit=crop",
		Likes:     5_200_000,
		Comments:  45_000,
		Shares:    0,
		Timestamp: "6 hours ago",
	},
	{
		Name:      "NASA",
		Username:  "@nasa",
		Avatar:    "https://images.unsplash.com/photo-1614728894747-a83421e2b9c9?w=100&h=100&fit=crop",
		Content:   "New image from James Webb Space Telescope shows distant galaxies 🌌✨",
		MediaURL:  "https://images.unsplash.com/photo-1462331940025-496dfbfc7564?w=800&h=800&fit=crop",
		Likes:     3_100_000,
		Comments:  28_000,
		Shares:    0,
		Timestamp: "8 hours ago",
	},
	{
		Name:      "Selena Gomez",
		Username:  "@selenagomez",
		Avatar:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop",
		Content:   "Behind the scenes from today's photoshoot 📸💫",
		MediaURL:  "https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?w=800&h=800&fit=crop",
		Likes:     4_800_000,
		Comments:  38_000,
		Shares:    0,
		Timestamp: "10 hours ago",
	},
	{
		Name:      "The Rock",
		Username:  "@therock",
		Avatar:    "https://images.unsplash.com/photo-1566492031773-4f4e44671857?w=100&h=100&fit=crop",
		Content:   "It's about drive, it's about power 💪🔥 #TeamRock",
		MediaURL:  "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800&h=800&fit=crop",
		Likes:     6_100_000,
		Comments:  52_000,
		Shares:    0,
		Timestamp: "12 hours ago",
	},
	{
		Name:      "Instagram",
		Username:  "@instagram",
		Avatar:    "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=100&h=100&fit=crop",
		Content:   "Introducing new Reels features! Create, share, and discover 🎬",
		MediaURL:  "https://images.unsplash.com/photo-1611162616305-c69b3fa7fbe0?w=800&h=800&fit=crop",
		Likes:     2_200_000,
		Comments:  15_000,
		Shares:    0,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Vogue",
		Username:  "@voguemagazine",
		Avatar:    "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=100&h=100&fit=crop",
		Content:   "Fashion Week highlights from Paris 👗✨ Link in bio",
		MediaURL:  "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=800&h=800&fit=crop",
		Likes:     1_750_000,
		Comments:  9_800,
		Shares:    0,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Gordon Ramsay",
		Username:  "@gordongram",
		Avatar:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=100&h=100&fit=crop",
		Content:   "Perfect Wellington! This is how it's done 👨‍🍳🔥",
		MediaURL:  "https://images.unsplash.com/photo-1432139509613-5c4255815697?w=800&h=800&fit=crop",
		Likes:     2_900_000,
		Comments:  19_000,
		Shares:    0,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Kylie Jenner",
		Username:  "@kyliejenner",
		Avatar:    "https://images.unsplash.com/photo-1534751516642-a1af1ef26a56?w=100&h=100&fit=crop",
		Content:   "New Kylie Cosmetics collection dropping soon 💄💋",
		MediaURL:  "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=800&h=800&fit=crop",
		Likes:     7_200_000,
		Comments:  65_000,
		Shares:    0,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Travel + Leisure",
		Username:  "@travelandleisure",
		Avatar:    "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=100&h=100&fit=crop",
		Content:   "10 hidden gems in Bali you need to visit 🌴✈️",
		MediaURL:  "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800&h=800&fit=crop",
		Likes:     1_420_000,
		Comments:  7_800,
		Shares:    0,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Apple",
		Username:  "@apple",
		Avatar:    "https://images.unsplash.com/photo-1611186871348-b1ce696e52c9?w=100&h=100&fit=crop",
		Content:   "Shot on iPhone. Share your best photos with #ShotOniPhone 📱",
		MediaURL:  "https://images.unsplash.com/photo-1510557880182-3d4d3cba35a5?w=800&h=800&fit=crop",
		Likes:     3_400_000,
		Comments:  21_000,
		Shares:    0,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Zendaya",
		Username:  "@zendaya",
		Avatar:    "https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?w=100&h=100&fit=crop",
		Content:   "Red carpet vibes ✨💃 Thank you for the love!",
		MediaURL:  "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=800&h=800&fit=crop",
		Likes:     5_600_000,
		Comments:  42_000,
		Shares:    0,
		Timestamp: "3 days ago",
	},
	{
		Name:      "Food Network",
		Username:  "@foodnetwork",
		Avatar:    "https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=100&h=100&fit=crop",
		Content:   "The ultimate chocolate cake recipe 🍫🎂 Recipe in bio!",
		MediaURL:  "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=800&h=800&fit=crop",
		Likes:     1_890_000,
		Comments:  11_000,
		Shares:    0,
		Timestamp: "3 days ago",
	},
	{
		Name:      "Tesla",
		Username:  "@tesla",
		Avatar:    "https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=100&h=100&fit=crop",
		Content:   "Cybertruck production update. Coming soon 🚗⚡",
		MediaURL:  "https://images.unsplash.com/photo-1617788138017-80ad40651399?w=800&h=800&fit=crop",
		Likes:     2_650_000,
		Comments:  16_500,
		Shares:    0,
		Timestamp: "3 days ago",
	},
}
