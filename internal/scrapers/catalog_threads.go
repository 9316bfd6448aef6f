package scrapers

var threadsCatalog = Catalog{
	{
		Name:      "Mark Zuckerberg",
		Username:  "@zuck",
		Avatar:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=100&h=100&fit=crop",
		Content:   "Excited to announce new features coming to Threads! The future of social media is conversational 💬",
		MediaURL:  "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=800&h=600&fit=crop",
		Likes:     2_100_000,
		Comments:  45_000,
		Shares:    89_000,
		Timestamp: "2 hours ago",
	},
	{
		Name:      "OpenAI",
		Username:  "@openai",
		Avatar:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=100&h=100&fit=crop",
		Content:   "ChatGPT just got a major upgrade. Here's what's new and how it will change everything 🤖✨",
		MediaURL:  "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&h=600&fit=crop",
		Likes:     3_400_000,
		Comments:  78_000,
		Shares:    156_000,
		Timestamp: "4 hours ago",
	},
	{
		Name:      "Bill Gates",
		Username:  "@billgates",
		Avatar:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=100&h=100&fit=crop",
		Content:   "Reading this incredible book on climate solutions. Every leader should read it. Link in comments 📚🌍",
		MediaURL:  "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=800&h=600&fit=crop",
		Likes:     1_890_000,
		Comments:  34_000,
		Shares:    67_000,
		Timestamp: "6 hours ago",
	},
	{
		Name:      "Elon Musk",
		Username:  "@elonmusk",
		Avatar:    "https://images.unsplash.com/photo-1531384441138-2736e62e0919?w=100&h=100&fit=crop",
		Content:   "SpaceX Starship test flight went better than expected. Mars, here we come! 🚀🔴",
		MediaURL:  "https://images.unsplash.com/photo-1516849841032-87cbac4d88f7?w=800&h=600&fit=crop",
		Likes:     4_500_000,
		Comments:  123_000,
		Shares:    234_000,
		Timestamp: "8 hours ago",
	},
	{
		Name:      "Netflix",
		Username:  "@netflix",
		Avatar:    "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=100&h=100&fit=crop",
		Content:   "New season dropping this Friday. You're not ready for this plot twist 📺🔥",
		MediaURL:  "https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?w=800&h=600&fit=crop",
		Likes:     2_700_000,
		Comments:  89_000,
		Shares:    145_000,
		Timestamp: "10 hours ago",
	},
	{
		Name:      "Tim Cook",
		Username:  "@tim_cook",
		Avatar:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=100&h=100&fit=crop",
		Content:   "Innovation is in our DNA. Excited to share what we've been working on... Stay tuned 🍎",
		MediaURL:  "https://images.unsplash.com/photo-1611186871348-b1ce696e52c9?w=800&h=600&fit=crop",
		Likes:     1_950_000,
		Comments:  56_000,
		Shares:    78_000,
		Timestamp: "12 hours ago",
	},
	{
		Name:      "Greta Thunberg",
		Username:  "@gretathunberg",
		Avatar:    "https://images.unsplash.com/photo-1508214751196-bcfd4ca60f91?w=100&h=100&fit=crop",
		Content:   "The climate crisis is NOW. We can't wait any longer. Here's what YOU can do today 🌍💚",
		MediaURL:  "https://images.unsplash.com/photo-1569163139394-de4798aa62b6?w=800&h=600&fit=crop",
		Likes:     3_100_000,
		Comments:  98_000,
		Shares:    189_000,
		Timestamp: "14 hours ago",
	},
	{
		Name:      "Dwayne Johnson",
		Username:  "@therock",
		Avatar:    "https://images.unsplash.com/photo-1566492031773-4f4e44671857?w=100&h=100&fit=crop",
		Content:   "Blood, sweat, and respect. That's the price of success. Keep grinding 💪🔥",
		MediaURL:  "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800&h=600&fit=crop",
		Likes:     5_200_000,
		Comments:  145_000,
		Shares:    267_000,
		Timestamp: "16 hours ago",
	},
	{
		Name:      "Taylor Swift",
		Username:  "@taylorswift",
		Avatar:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop",
		Content:   "New album announcement! Can't wait to share these songs with you all 🎵✨",
		MediaURL:  "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=800&h=600&fit=crop",
		Likes:     6_800_000,
		Comments:  234_000,
		Shares:    456_000,
		Timestamp: "18 hours ago",
	},
	{
		Name:      "NASA",
		Username:  "@nasa",
		Avatar:    "https://images.unsplash.com/photo-1614728894747-a83421e2b9c9?w=100&h=100&fit=crop",
		Content:   "We just discovered something incredible on Europa. This changes everything we know about life in our solar system 🪐🔬",
		MediaURL:  "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?w=800&h=600&fit=crop",
		Likes:     4_100_000,
		Comments:  167_000,
		Shares:    298_000,
		Timestamp: "20 hours ago",
	},
	{
		Name:      "Barack Obama",
		Username:  "@barackobama",
		Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
		Content:   "Hope is not a strategy, but it's a start. Here's what we can do to build a better future together 🇺🇸",
		MediaURL:  "https://images.unsplash.com/photo-1569163139599-0f4517e36f51?w=800&h=600&fit=crop",
		Likes:     3_900_000,
		Comments:  112_000,
		Shares:    234_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Serena Williams",
		Username:  "@serenawilliams",
		Avatar:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop",
		Content:   "Champions are made in the gym. Here's my morning workout routine 🎾💪",
		MediaURL:  "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800&h=600&fit=crop",
		Likes:     2_400_000,
		Comments:  67_000,
		Shares:    89_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Gordon Ramsay",
		Username:  "@gordonramsay",
		Avatar:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=100&h=100&fit=crop",
		Content:   "Cooking tip: NEVER use a blunt knife. It's dangerous and ruins the food. Here's how to sharpen properly 🔪👨‍🍳",
		MediaURL:  "https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=800&h=600&fit=crop",
		Likes:     1_780_000,
		Comments:  45_000,
		Shares:    67_000,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Ariana Grande",
		Username:  "@arianagrande",
		Avatar:    "https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?w=100&h=100&fit=crop",
		Content:   "Thank you for all the love on the new single! This means everything to me 💕🎤",
		MediaURL:  "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&h=600&fit=crop",
		Likes:     5_600_000,
		Comments:  189_000,
		Shares:    234_000,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Malala Yousafzai",
		Username:  "@malala",
		Avatar:    "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=100&h=100&fit=crop",
		Content:   "Education is the key to unlocking every door. Proud to announce our new initiative for girls worldwide 📚✨",
		MediaURL:  "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=800&h=600&fit=crop",
		Likes:     2_900_000,
		Comments:  78_000,
		Shares:    156_000,
		Timestamp: "3 days ago",
	},
}
