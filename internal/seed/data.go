package seed

import "github.com/anonto42/chyll/backend/internal/models"

var entries = []entry{
	{
		Platform:  models.PlatformInstagram,
		Name:      "National Geographic",
		Username:  "@natgeo",
		Avatar:    "https://images.unsplash.com/photo-1516802273409-68526ee1bdd6?w=100&h=100&fit=crop",
		Content:   "Photo by @paulnicklen | A polar bear peers through the ice in the Arctic. This image reminds us of the fragile beauty of our planet.",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1589656966895-2f33e7653819?w=800&h=600&fit=crop",
		Likes:     2_840_000,
		Comments:  18_500,
		Shares:    45_000,
		Timestamp: "2 hours ago",
		Category:  models.CategoryTrending,
	},
	{
		Platform:  models.PlatformInstagram,
		Name:      "NASA",
		Username:  "@nasa",
		Avatar:    "https://images.unsplash.com/photo-1614728894747-a83421e2b9c9?w=100&h=100&fit=crop",
		Content:   "Stunning view of Earth from the International Space Station. Our planet is a beautiful blue marble floating in space. 🌍✨",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?w=800&h=600&fit=crop",
		Likes:     3_200_000,
		Comments:  24_000,
		Shares:    68_000,
		Timestamp: "5 hours ago",
		Category:  models.CategoryTrending,
	},
	{
		Platform:  models.PlatformInstagram,
		Name:      "The Dodo",
		Username:  "@thedodo",
		Avatar:    "https://images.unsplash.com/photo-1415369629372-26f2fe60c467?w=100&h=100&fit=crop",
		Content:   "This golden retriever puppy learning to swim is the cutest thing you'll see today! 🐕💕",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=800&h=600&fit=crop",
		Likes:     1_850_000,
		Comments:  12_300,
		Shares:    35_000,
		Timestamp: "8 hours ago",
		Category:  models.CategoryMostLiked,
	},
	{
		Platform:  models.PlatformTwitter,
		Name:      "Elon Musk",
		Username:  "@elonmusk",
		Avatar:    "https://images.unsplash.com/photo-1531384441138-2736e62e0919?w=100&h=100&fit=crop",
		Content:   "Just spoke with the Starship team. Launch attempt next week! 🚀",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1516849841032-87cbac4d88f7?w=800&h=600&fit=crop",
		Likes:     890_000,
		Comments:  45_000,
		Shares:    125_000,
		Timestamp: "1 hour ago",
		Category:  models.CategoryTrending,
	},
	{
		Platform:  models.PlatformTwitter,
		Name:      "MrBeast",
		Username:  "@MrBeast",
		Avatar:    "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=100&h=100&fit=crop",
		Content:   "Giving away $100,000 to random followers! Like and retweet to enter. Winner announced in 24 hours! 💰",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1607863680198-23d4b2565df0?w=800&h=600&fit=crop",
		Likes:     2_100_000,
		Comments:  350_000,
		Shares:    890_000,
		Timestamp: "3 hours ago",
		Category:  models.CategoryViral,
	},
	{
		Platform:  models.PlatformTwitter,
		Name:      "Neil deGrasse Tyson",
		Username:  "@neiltyson",
		Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop",
		Content:   "The Universe is under no obligation to make sense to you. But it's fun trying to figure it out anyway.",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1419242902214-272b3f66ee7a?w=800&h=600&fit=crop",
		Likes:     456_000,
		Comments:  8_900,
		Shares:    34_000,
		Timestamp: "6 hours ago",
		Category:  models.CategoryMostLiked,
	},
	{
		Platform:  models.PlatformTikTok,
		Name:      "Charli D'Amelio",
		Username:  "@charlidamelio",
		Avatar:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop",
		Content:   "New dance challenge! Who's trying this? 💃 #DanceChallenge #Viral",
		MediaType: models.MediaVideo,
		MediaURL:  "https://images.unsplash.com/photo-1535525153412-5a42439a210d?w=800&h=600&fit=crop",
		Thumbnail: "https://images.unsplash.com/photo-1535525153412-5a42439a210d?w=800&h=600&fit=crop",
		Likes:     4_200_000,
		Comments:  125_000,
		Shares:    890_000,
		Timestamp: "4 hours ago",
		Category:  models.CategoryViral,
	},
	{
		Platform:  models.PlatformTikTok,
		Name:      "Gordon Ramsay",
		Username:  "@gordonramsayofficial",
		Avatar:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=100&h=100&fit=crop",
		Content:   "Rating your cooking videos... This one is RAW! 😱 #Cooking #GordonRamsay",
		MediaType: models.MediaVideo,
		MediaURL:  "https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=800&h=600&fit=crop",
		Thumbnail: "https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=800&h=600&fit=crop",
		Likes:     3_100_000,
		Comments:  89_000,
		Shares:    450_000,
		Timestamp: "7 hours ago",
		Category:  models.CategoryTrending,
	},
	{
		Platform:  models.PlatformTikTok,
		Name:      "Zach King",
		Username:  "@zachking",
		Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
		Content:   "Magic trick reveal! Can you guess how I did this? ✨🎩 #Magic #Illusion",
		MediaType: models.MediaVideo,
		MediaURL:  "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=800&h=600&fit=crop",
		Thumbnail: "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=800&h=600&fit=crop",
		Likes:     5_600_000,
		Comments:  234_000,
		Shares:    1_200_000,
		Timestamp: "12 hours ago",
		Category:  models.CategoryViral,
	},
	{
		Platform:  models.PlatformYouTube,
		Name:      "MrBeast",
		Username:  "@MrBeast",
		Avatar:    "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=100&h=100&fit=crop",
		Content:   "I Spent 50 Hours in Solitary Confinement",
		MediaType: models.MediaVideo,
		MediaURL:  "https://images.unsplash.com/photo-1611162616475-46b635cb6868?w=800&h=600&fit=crop",
		Thumbnail: "https://images.unsplash.com/photo-1611162616475-46b635cb6868?w=800&h=600&fit=crop",
		Likes:     8_900_000,
		Comments:  456_000,
		Shares:    234_000,
		Timestamp: "1 day ago",
		Category:  models.CategoryViral,
	},
	{
		Platform:  models.PlatformYouTube,
		Name:      "Marques Brownlee",
		Username:  "@MKBHD",
		Avatar:    "https://images.unsplash.com/photo-1508214751196-bcfd4ca60f91?w=100&h=100&fit=crop",
		Content:   "The Truth About AI in 2025 - Everything Changed",
		MediaType: models.MediaVideo,
		MediaURL:  "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&h=600&fit=crop",
		Thumbnail: "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&h=600&fit=crop",
		Likes:     3_400_000,
		Comments:  125_000,
		Shares:    89_000,
		Timestamp: "2 days ago",
		Category:  models.CategoryTrending,
	},
	{
		Platform:  models.PlatformYouTube,
		Name:      "Veritasium",
		Username:  "@veritasium",
		Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
		Content:   "The Bizarre Behavior of Rotating Bodies",
		MediaType: models.MediaVideo,
		MediaURL:  "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=800&h=600&fit=crop",
		Thumbnail: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=800&h=600&fit=crop",
		Likes:     2_100_000,
		Comments:  45_000,
		Shares:    56_000,
		Timestamp: "3 days ago",
		Category:  models.CategoryMostLiked,
	},
	{
		Platform:  models.PlatformFacebook,
		Name:      "Tasty",
		Username:  "@buzzfeedtasty",
		Avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop",
		Content:   "5-Ingredient Chocolate Lava Cake 🍫 Tag someone who needs to try this!",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=800&h=600&fit=crop",
		Likes:     1_200_000,
		Comments:  34_000,
		Shares:    450_000,
		Timestamp: "5 hours ago",
		Category:  models.CategoryViral,
	},
	{
		Platform:  models.PlatformFacebook,
		Name:      "Humans of New York",
		Username:  "@humansofny",
		Avatar:    "https://images.unsplash.com/photo-1519345182560-3f2917c472ef?w=100&h=100&fit=crop",
		Content:   "\"I was homeless for 3 years. Today I got the keys to my first apartment.\" This is the full story...",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800&h=600&fit=crop",
		Likes:     890_000,
		Comments:  23_000,
		Shares:    125_000,
		Timestamp: "9 hours ago",
		Category:  models.CategoryMostLiked,
	},
	{
		Platform:  models.PlatformFacebook,
		Name:      "National Geographic",
		Username:  "@natgeo",
		Avatar:    "https://images.unsplash.com/photo-1516802273409-68526ee1bdd6?w=100&h=100&fit=crop",
		Content:   "A baby elephant taking its first steps. Nature is incredible! 🐘",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1564760055775-d63b17a55c44?w=800&h=600&fit=crop",
		Likes:     2_300_000,
		Comments:  56_000,
		Shares:    340_000,
		Timestamp: "14 hours ago",
		Category:  models.CategoryTrending,
	},
	{
		Platform:  models.PlatformLinkedIn,
		Name:      "Simon Sinek",
		Username:  "@simonsinek",
		Avatar:    "https://images.unsplash.com/photo-1566492031773-4f4e44671857?w=100&h=100&fit=crop",
		Content:   "Leadership is not about being in charge. It's about taking care of those in your charge. Here's what I learned...",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=600&fit=crop",
		Likes:     345_000,
		Comments:  12_000,
		Shares:    89_000,
		Timestamp: "6 hours ago",
		Category:  models.CategoryTrending,
	},
	{
		Platform:  models.PlatformLinkedIn,
		Name:      "Bill Gates",
		Username:  "@billgates",
		Avatar:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=100&h=100&fit=crop",
		Content:   "Exciting developments in clean energy technology. The future is bright! Here's my take on what's coming next...",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?w=800&h=600&fit=crop",
		Likes:     567_000,
		Comments:  23_000,
		Shares:    145_000,
		Timestamp: "1 day ago",
		Category:  models.CategoryMostLiked,
	},
	{
		Platform:  models.PlatformLinkedIn,
		Name:      "Sheryl Sandberg",
		Username:  "@sherylsandberg",
		Avatar:    "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=100&h=100&fit=crop",
		Content:   "Women in tech are changing the world. Proud to celebrate these achievements and looking forward to more! 💪",
		MediaType: models.MediaImage,
		MediaURL:  "https://images.unsplash.com/photo-1573164713714-d95e436ab8d6?w=800&h=600&fit=crop",
		Likes:     234_000,
		Comments:  8_900,
		Shares:    67_000,
		Timestamp: "2 days ago",
		Category:  models.CategoryTrending,
	},
}
