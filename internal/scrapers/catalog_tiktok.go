package scrapers

var tiktokCatalog = Catalog{
	{
		Name:      "Charli D'Amelio",
		Username:  "@charlidamelio",
		Avatar:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop",
		Content:   "New dance challenge! Who's trying this? 💃 #DanceChallenge #Viral",
		MediaURL:  "https://images.unsplash.com/photo-1535525153412-5a42439a210d?w=800&h=600&fit=crop",
		Likes:     8_200_000,
		Comments:  156_000,
		Shares:    1_200_000,
		Timestamp: "2 hours ago",
	},
	{
		Name:      "Bella Poarch",
		Username:  "@bellapoarch",
		Avatar:    "https://images.unsplash.com/photo-1534751516642-a1af1ef26a56?w=100&h=100&fit=crop",
		Content:   "Build a B*tch 🎵 New music video out now! #BuildABitch",
		MediaURL:  "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&h=600&fit=crop",
		Likes:     9_500_000,
		Comments:  189_000,
		Shares:    2_100_000,
		Timestamp: "4 hours ago",
	},
	{
		Name:      "Khaby Lame",
		Username:  "@khaby.lame",
		Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop",
		Content:   "Life hack reactions be like... 🤷‍♂️😂 #KhabyLame #LifeHacks",
		MediaURL:  "https://images.unsplash.com/photo-1603145733146-ae562a55031e?w=800&h=600&fit=crop",
		Likes:     12_000_000,
		Comments:  245_000,
		Shares:    3_400_000,
		Timestamp: "6 hours ago",
	},
	{
		Name:      "Addison Rae",
		Username:  "@addisonre",
		Avatar:    "https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?w=100&h=100&fit=crop",
		Content:   "Get ready with me 💄✨ #GRWM #MakeupTutorial",
		MediaURL:  "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=800&h=600&fit=crop",
		Likes:     7_100_000,
		Comments:  98_000,
		Shares:    890_000,
		Timestamp: "8 hours ago",
	},
	{
		Name:      "Zach King",
		Username:  "@zachking",
		Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
		Content:   "Magic trick reveal! Can you figure out how I did this? 🎩✨ #Magic",
		MediaURL:  "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=800&h=600&fit=crop",
		Likes:     15_000_000,
		Comments:  456_000,
		Shares:    4_200_000,
		Timestamp: "10 hours ago",
	},
	{
		Name:      "Spencer X",
		Username:  "@spencerx",
		Avatar:    "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=100&h=100&fit=crop",
		Content:   "Beatbox tutorial part 3! 🎵 Drop a 🔥 if you learned it #Beatbox",
		MediaURL:  "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=800&h=600&fit=crop",
		Likes:     5_600_000,
		Comments:  67_000,
		Shares:    780_000,
		Timestamp: "12 hours ago",
	},
	{
		Name:      "Loren Gray",
		Username:  "@lorengray",
		Avatar:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop",
		Content:   "New song dropping this Friday! Pre-save now 🎶 #NewMusic",
		MediaURL:  "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=800&h=600&fit=crop",
		Likes:     6_200_000,
		Comments:  89_000,
		Shares:    920_000,
		Timestamp: "14 hours ago",
	},
	{
		Name:      "Michael Le",
		Username:  "@justmaiko",
		Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
		Content:   "Insane dance transition! 🔥 How did I do? #DanceTransition",
		MediaURL:  "https://images.unsplash.com/photo-1547153760-18fc86324498?w=800&h=600&fit=crop",
		Likes:     8_900_000,
		Comments:  123_000,
		Shares:    1_800_000,
		Timestamp: "16 hours ago",
	},
	{
		Name:      "Dixie D'Amelio",
		Username:  "@dixiedamelio",
		Avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop",
		Content:   "Behind the scenes of my latest music video 🎬 #BTS",
		MediaURL:  "https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?w=800&h=600&fit=crop",
		Likes:     6_800_000,
		Comments:  78_000,
		Shares:    650_000,
		Timestamp: "18 hours ago",
	},
	{
		Name:      "Avani Gregg",
		Username:  "@avani",
		Avatar:    "https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?w=100&h=100&fit=crop",
		Content:   "Clown makeup transformation 🤡 Part 4 #Makeup #Transformation",
		MediaURL:  "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=800&h=600&fit=crop",
		Likes:     7_500_000,
		Comments:  98_000,
		Shares:    1_100_000,
		Timestamp: "20 hours ago",
	},
	{
		Name:      "Josh Richards",
		Username:  "@joshrichards",
		Avatar:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=100&h=100&fit=crop",
		Content:   "POV: You're the main character 😎 #POV #MainCharacter",
		MediaURL:  "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=800&h=600&fit=crop",
		Likes:     5_200_000,
		Comments:  56_000,
		Shares:    490_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Riyaz Aly",
		Username:  "@riyaz.14",
		Avatar:    "https://images.unsplash.com/photo-1566492031773-4f4e44671857?w=100&h=100&fit=crop",
		Content:   "Romantic transition video 💕 Tag your crush #Transition",
		MediaURL:  "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=800&h=600&fit=crop",
		Likes:     9_200_000,
		Comments:  145_000,
		Shares:    1_900_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Baby Ariel",
		Username:  "@babyariel",
		Avatar:    "https://images.unsplash.com/photo-1502823403499-6ccfcf4fb453?w=100&h=100&fit=crop",
		Content:   "Singing challenge with friends! 🎤 #SingingChallenge",
		MediaURL:  "https://images.unsplash.com/photo-1516280440614-37939bbacd81?w=800&h=600&fit=crop",
		Likes:     4_900_000,
		Comments:  67_000,
		Shares:    580_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Noen Eubanks",
		Username:  "@noeneubanks",
		Avatar:    "https://images.unsplash.com/photo-1508214751196-bcfd4ca60f91?w=100&h=100&fit=crop",
		Content:   "Aesthetic vibes only ✨ #Aesthetic #Vibes",
		MediaURL:  "https://images.unsplash.com/photo-1501196354995-cbb51c65aaea?w=800&h=600&fit=crop",
		Likes:     5_800_000,
		Comments:  72_000,
		Shares:    670_000,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Gilmher Croes",
		Username:  "@gilmhercroes",
		Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
		Content:   "Comedy skit with my brother 😂 #Comedy #Funny",
		MediaURL:  "https://images.unsplash.com/photo-1533450718592-29d45635f0a9?w=800&h=600&fit=crop",
		Likes:     6_700_000,
		Comments:  89_000,
		Shares:    980_000,
		Timestamp: "2 days ago",
	},
}
