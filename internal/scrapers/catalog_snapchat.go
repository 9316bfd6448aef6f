package scrapers

var snapchatCatalog = Catalog{
	{
		Name:      "DJ Khaled",
		Username:  "@djkhaled",
		Avatar:    "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=100&h=100&fit=crop",
		Content:   "Another one! 🔑 Major keys to success 🗝️",
		MediaURL:  "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=800&h=600&fit=crop",
		Likes:     1_200_000,
		Comments:  34_000,
		Shares:    89_000,
		Timestamp: "2 hours ago",
	},
	{
		Name:      "Kylie Jenner",
		Username:  "@kyliejenner",
		Avatar:    "https://images.unsplash.com/photo-1534751516642-a1af1ef26a56?w=100&h=100&fit=crop",
		Content:   "New Kylie Cosmetics exclusive on Snapchat! Swipe up 💄✨",
		MediaURL:  "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=800&h=600&fit=crop",
		Likes:     3_400_000,
		Comments:  89_000,
		Shares:    234_000,
		Timestamp: "4 hours ago",
	},
	{
		Name:      "Kevin Hart",
		Username:  "@kevinhart4real",
		Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop",
		Content:   "When you finally understand the assignment 😂 Tag a friend!",
		MediaURL:  "https://images.unsplash.com/photo-1533450718592-29d45635f0a9?w=800&h=600&fit=crop",
		Likes:     2_100_000,
		Comments:  67_000,
		Shares:    145_000,
		Timestamp: "6 hours ago",
	},
	{
		Name:      "Ariana Grande",
		Username:  "@moonlightbae",
		Avatar:    "https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?w=100&h=100&fit=crop",
		Content:   "Behind the scenes from last night's show 🎤💫",
		MediaURL:  "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=800&h=600&fit=crop",
		Likes:     2_800_000,
		Comments:  78_000,
		Shares:    189_000,
		Timestamp: "8 hours ago",
	},
	{
		Name:      "LeBron James",
		Username:  "@kingjames",
		Avatar:    "https://images.unsplash.com/photo-1566492031773-4f4e44671857?w=100&h=100&fit=crop",
		Content:   "Game day vibes 🏀👑 Let's get it!",
		MediaURL:  "https://images.unsplash.com/photo-1546519638-68e109498ffc?w=800&h=600&fit=crop",
		Likes:     3_200_000,
		Comments:  98_000,
		Shares:    267_000,
		Timestamp: "10 hours ago",
	},
	{
		Name:      "Shawn Mendes",
		Username:  "@shawnmendes",
		Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
		Content:   "New music coming soon... 🎵 Here's a sneak peek",
		MediaURL:  "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=800&h=600&fit=crop",
		Likes:     1_950_000,
		Comments:  56_000,
		Shares:    123_000,
		Timestamp: "12 hours ago",
	},
	{
		Name:      "Gigi Hadid",
		Username:  "@gigihadid",
		Avatar:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop",
		Content:   "Fashion Week day 3! Loving this collection 👗✨",
		MediaURL:  "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=800&h=600&fit=crop",
		Likes:     2_400_000,
		Comments:  67_000,
		Shares:    156_000,
		Timestamp: "14 hours ago",
	},
	{
		Name:      "Will Smith",
		Username:  "@willsmith",
		Avatar:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=100&h=100&fit=crop",
		Content:   "Life lesson of the day: Be the change you want to see 💯",
		MediaURL:  "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?w=800&h=600&fit=crop",
		Likes:     2_700_000,
		Comments:  89_000,
		Shares:    178_000,
		Timestamp: "16 hours ago",
	},
	{
		Name:      "Billie Eilish",
		Username:  "@billieeilish",
		Avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop",
		Content:   "New album vibes 🖤 Y'all ready for this?",
		MediaURL:  "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&h=600&fit=crop",
		Likes:     3_600_000,
		Comments:  112_000,
		Shares:    234_000,
		Timestamp: "18 hours ago",
	},
	{
		Name:      "James Charles",
		Username:  "@jamescharles",
		Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop",
		Content:   "Full glam makeup tutorial coming tomorrow! 💄✨",
		MediaURL:  "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=800&h=600&fit=crop",
		Likes:     1_680_000,
		Comments:  45_000,
		Shares:    98_000,
		Timestamp: "20 hours ago",
	},
	{
		Name:      "Snoop Dogg",
		Username:  "@snoopdogg",
		Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
		Content:   "Cooking with the Dogg 🍳 Gin & Juice breakfast special",
		MediaURL:  "https://images.unsplash.com/photo-1432139509613-5c4255815697?w=800&h=600&fit=crop",
		Likes:     1_890_000,
		Comments:  56_000,
		Shares:    123_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Hailey Bieber",
		Username:  "@haileybieber",
		Avatar:    "https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?w=100&h=100&fit=crop",
		Content:   "Skincare routine essentials! Link in bio 💆‍♀️✨",
		MediaURL:  "https://images.unsplash.com/photo-1556228578-0d85b1a4d571?w=800&h=600&fit=crop",
		Likes:     2_300_000,
		Comments:  67_000,
		Shares:    145_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Pharrell",
		Username:  "@pharrell",
		Avatar:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=100&h=100&fit=crop",
		Content:   "Creativity has no limits 🎨 New collab dropping soon",
		MediaURL:  "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?w=800&h=600&fit=crop",
		Likes:     1_450_000,
		Comments:  34_000,
		Shares:    78_000,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Rihanna",
		Username:  "@rihanna",
		Avatar:    "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=100&h=100&fit=crop",
		Content:   "Fenty Beauty new collection exclusive reveal! 💋✨",
		MediaURL:  "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=800&h=600&fit=crop",
		Likes:     4_100_000,
		Comments:  134_000,
		Shares:    298_000,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Post Malone",
		Username:  "@postmalone",
		Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
		Content:   "Studio session vibes 🎤🔥 Making magic happen",
		MediaURL:  "https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?w=800&h=600&fit=crop",
		Likes:     2_600_000,
		Comments:  89_000,
		Shares:    167_000,
		Timestamp: "3 days ago",
	},
}
