package scrapers

var facebookCatalog = Catalog{
	{
		Name:      "CNN",
		Username:  "CNN",
		Avatar:    "https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=100&h=100&fit=crop",
		Content:   "Breaking: Major tech announcement changes everything. Read the full story.",
		MediaURL:  "https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=800&h=600&fit=crop",
		Likes:     1_250_000,
		Comments:  45_000,
		Shares:    189_000,
		Timestamp: "2 hours ago",
	},
	{
		Name:      "Tasty",
		Username:  "BuzzFeed Tasty",
		Avatar:    "https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=100&h=100&fit=crop",
		Content:   "This 5-minute dessert recipe will blow your mind! 🍰✨ Tag someone who needs this!",
		MediaURL:  "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=800&h=600&fit=crop",
		Likes:     2_800_000,
		Comments:  78_000,
		Shares:    890_000,
		Timestamp: "4 hours ago",
	},
	{
		Name:      "National Geographic",
		Username:  "National Geographic",
		Avatar:    "https://images.unsplash.com/photo-1516802273409-68526ee1bdd6?w=100&h=100&fit=crop",
		Content:   "Rare footage of polar bears in their natural habitat. Nature is incredible! 🐻‍❄️",
		MediaURL:  "https://images.unsplash.com/photo-1589656966895-2f33e7653819?w=800&h=600&fit=crop",
		Likes:     3_100_000,
		Comments:  92_000,
		Shares:    1_200_000,
		Timestamp: "6 hours ago",
	},
	{
		Name:      "Humans of New York",
		Username:  "Humans of New York",
		Avatar:    "https://images.unsplash.com/photo-1519345182560-3f2917c472ef?w=100&h=100&fit=crop",
		Content:   "\"I was homeless for 3 years. Today I got the keys to my first apartment.\" This is his incredible story...",
		MediaURL:  "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800&h=600&fit=crop",
		Likes:     4_200_000,
		Comments:  156_000,
		Shares:    2_100_000,
		Timestamp: "8 hours ago",
	},
	{
		Name:      "NASA",
		Username:  "NASA",
		Avatar:    "https://images.unsplash.com/photo-1614728894747-a83421e2b9c9?w=100&h=100&fit=crop",
		Content:   "New images from Mars Rover show evidence of ancient water flows. The search for life continues! 🚀🔴",
		MediaURL:  "https://images.unsplash.com/photo-1614728423169-3f65fd722b7e?w=800&h=600&fit=crop",
		Likes:     2_900_000,
		Comments:  67_000,
		Shares:    780_000,
		Timestamp: "10 hours ago",
	},
	{
		Name:      "The Dodo",
		Username:  "The Dodo",
		Avatar:    "https://images.unsplash.com/photo-1415369629372-26f2fe60c467?w=100&h=100&fit=crop",
		Content:   "This rescue dog's reaction when he realizes he's going home will make you cry 😭❤️",
		MediaURL:  "https://images.unsplash.com/photo-1537151608828-ea2b11777ee8?w=800&h=600&fit=crop",
		Likes:     3_800_000,
		Comments:  123_000,
		Shares:    1_800_000,
		Timestamp: "12 hours ago",
	},
	{
		Name:      "BBC News",
		Username:  "BBC News",
		Avatar:    "https://images.unsplash.com/photo-1495020689067-958852a7765e?w=100&h=100&fit=crop",
		Content:   "World leaders gather for historic climate summit. Here's what you need to know 🌍",
		MediaURL:  "https://images.unsplash.com/photo-1569163139394-de4798aa62b6?w=800&h=600&fit=crop",
		Likes:     1_890_000,
		Comments:  89_000,
		Shares:    450_000,
		Timestamp: "14 hours ago",
	},
	{
		Name:      "LADbible",
		Username:  "LADbible",
		Avatar:    "https://images.unsplash.com/photo-1516802273409-68526ee1bdd6?w=100&h=100&fit=crop",
		Content:   "This guy quit his job to travel the world. Here's what happened next... 🌎✈️",
		MediaURL:  "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800&h=600&fit=crop",
		Likes:     2_200_000,
		Comments:  56_000,
		Shares:    670_000,
		Timestamp: "16 hours ago",
	},
	{
		Name:      "Upworthy",
		Username:  "Upworthy",
		Avatar:    "https://images.unsplash.com/photo-1553877522-43269d4ea984?w=100&h=100&fit=crop",
		Content:   "Teacher surprises students with the most heartwarming gesture. We're not crying, you're crying! 😭",
		MediaURL:  "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=800&h=600&fit=crop",
		Likes:     3_500_000,
		Comments:  98_000,
		Shares:    1_500_000,
		Timestamp: "18 hours ago",
	},
	{
		Name:      "The Ellen Show",
		Username:  "The Ellen Show",
		Avatar:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop",
		Content:   "This little girl's talent will blow you away! Watch her amazing performance 🎤✨",
		MediaURL:  "https://images.unsplash.com/photo-1516280440614-37939bbacd81?w=800&h=600&fit=crop",
		Likes:     2_700_000,
		Comments:  78_000,
		Shares:    890_000,
		Timestamp: "20 hours ago",
	},
	{
		Name:      "Food Network",
		Username:  "Food Network",
		Avatar:    "https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=100&h=100&fit=crop",
		Content:   "Gordon Ramsay's secret to the perfect steak. You won't believe how simple it is! 🥩🔥",
		MediaURL:  "https://images.unsplash.com/photo-1558030006-450675393462?w=800&h=600&fit=crop",
		Likes:     1_950_000,
		Comments:  67_000,
		Shares:    560_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "BuzzFeed",
		Username:  "BuzzFeed",
		Avatar:    "https://images.unsplash.com/photo-1611162616475-46b635cb6868?w=100&h=100&fit=crop",
		Content:   "23 Things That Will Make You Say \"Why Didn't I Think Of That?\" 🤯",
		MediaURL:  "https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=800&h=600&fit=crop",
		Likes:     2_400_000,
		Comments:  89_000,
		Shares:    780_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "TED",
		Username:  "TED",
		Avatar:    "https://images.unsplash.com/photo-1505664194779-8beaceb93744?w=100&h=100&fit=crop",
		Content:   "This TED Talk will change how you think about success. A must-watch! 🎯",
		MediaURL:  "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?w=800&h=600&fit=crop",
		Likes:     1_670_000,
		Comments:  45_000,
		Shares:    450_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Mashable",
		Username:  "Mashable",
		Avatar:    "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=100&h=100&fit=crop",
		Content:   "New AI technology can now do THIS. The future is here! 🤖⚡",
		MediaURL:  "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&h=600&fit=crop",
		Likes:     2_100_000,
		Comments:  72_000,
		Shares:    620_000,
		Timestamp: "2 days ago",
	},
	{
		Name:      "9GAG",
		Username:  "9GAG",
		Avatar:    "https://images.unsplash.com/photo-1514416432279-50fac261c7dd?w=100&h=100&fit=crop",
		Content:   "When you realize it's Monday tomorrow... 😅 Tag your friends!",
		MediaURL:  "https://images.unsplash.com/photo-1533450718592-29d45635f0a9?w=800&h=600&fit=crop",
		Likes:     3_200_000,
		Comments:  145_000,
		Shares:    1_200_000,
		Timestamp: "2 days ago",
	},
}
