package scrapers

var linkedinCatalog = Catalog{
	{
		Name:      "Bill Gates",
		Username:  "Bill Gates",
		Avatar:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=100&h=100&fit=crop",
		Content:   "The future of clean energy is here. Excited to share our latest breakthrough in renewable technology. Read more in my blog post.",
		MediaURL:  "https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?w=800&h=600&fit=crop",
		Likes:     456_000,
		Comments:  12_000,
		Shares:    34_000,
		Timestamp: "2 hours ago",
	},
	{
		Name:      "Satya Nadella",
		Username:  "Satya Nadella",
		Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop",
		Content:   "AI is transforming every industry. At Microsoft, we're committed to responsible AI that empowers everyone. Here's what we're building...",
		MediaURL:  "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&h=600&fit=crop",
		Likes:     389_000,
		Comments:  9_800,
		Shares:    28_000,
		Timestamp: "4 hours ago",
	},
	{
		Name:      "Simon Sinek",
		Username:  "Simon Sinek",
		Avatar:    "https://images.unsplash.com/photo-1566492031773-4f4e44671857?w=100&h=100&fit=crop",
		Content:   "Great leaders don't set out to be leaders. They set out to make a difference. Here's what I learned from 20 years of studying leadership...",
		MediaURL:  "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=600&fit=crop",
		Likes:     567_000,
		Comments:  15_000,
		Shares:    45_000,
		Timestamp: "6 hours ago",
	},
	{
		Name:      "Sheryl Sandberg",
		Username:  "Sheryl Sandberg",
		Avatar:    "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=100&h=100&fit=crop",
		Content:   "Women in leadership drive better business outcomes. Here's the data that proves it and what companies can do to close the gap.",
		MediaURL:  "https://images.unsplash.com/photo-1573164713714-d95e436ab8d6?w=800&h=600&fit=crop",
		Likes:     423_000,
		Comments:  11_000,
		Shares:    39_000,
		Timestamp: "8 hours ago",
	},
	{
		Name:      "Gary Vaynerchuk",
		Username:  "Gary Vaynerchuk",
		Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
		Content:   "Stop waiting for the 'perfect moment.' The perfect moment is NOW. Here's how I built my empire and what you can learn from it.",
		MediaURL:  "https://images.unsplash.com/photo-1553877522-43269d4ea984?w=800&h=600&fit=crop",
		Likes:     512_000,
		Comments:  14_000,
		Shares:    42_000,
		Timestamp: "10 hours ago",
	},
	{
		Name:      "Arianna Huffington",
		Username:  "Arianna Huffington",
		Avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop",
		Content:   "Burnout is not a badge of honor. Here's why prioritizing well-being is the key to sustainable success in business and life.",
		MediaURL:  "https://images.unsplash.com/photo-1499728603263-13726abce5fd?w=800&h=600&fit=crop",
		Likes:     378_000,
		Comments:  8_900,
		Shares:    31_000,
		Timestamp: "12 hours ago",
	},
	{
		Name:      "Reid Hoffman",
		Username:  "Reid Hoffman",
		Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
		Content:   "The future of work is here. Remote teams, AI collaboration, and new paradigms are reshaping how we build companies. My thoughts on what's next...",
		MediaURL:  "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=800&h=600&fit=crop",
		Likes:     345_000,
		Comments:  7_800,
		Shares:    26_000,
		Timestamp: "14 hours ago",
	},
	{
		Name:      "Melinda Gates",
		Username:  "Melinda French Gates",
		Avatar:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop",
		Content:   "Investing in women and girls isn't just the right thing to do—it's the smart thing to do. Here's how we can accelerate progress towards equality.",
		MediaURL:  "https://images.unsplash.com/photo-1532629345422-7515f3d16bb6?w=800&h=600&fit=crop",
		Likes:     401_000,
		Comments:  10_000,
		Shares:    35_000,
		Timestamp: "16 hours ago",
	},
	{
		Name:      "Sundar Pichai",
		Username:  "Sundar Pichai",
		Avatar:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=100&h=100&fit=crop",
		Content:   "AI will be more transformative than electricity or fire. At Google, we're working to make sure this powerful technology benefits everyone.",
		MediaURL:  "https://images.unsplash.com/photo-1488229297570-58520851e868?w=800&h=600&fit=crop",
		Likes:     489_000,
		Comments:  13_000,
		Shares:    41_000,
		Timestamp: "18 hours ago",
	},
	{
		Name:      "Brené Brown",
		Username:  "Brené Brown",
		Avatar:    "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=100&h=100&fit=crop",
		Content:   "Vulnerability is not weakness. It's the birthplace of innovation, creativity and change. Here's what 20 years of research taught me about courage...",
		MediaURL:  "https://images.unsplash.com/photo-1491438590914-bc09fcaaf77a?w=800&h=600&fit=crop",
		Likes:     534_000,
		Comments:  14_500,
		Shares:    47_000,
		Timestamp: "20 hours ago",
	},
	{
		Name:      "Adam Grant",
		Username:  "Adam Grant",
		Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop",
		Content:   "Rethinking is a skill you can develop. Here's how the best leaders and teams challenge their own assumptions to drive innovation.",
		MediaURL:  "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800&h=600&fit=crop",
		Likes:     412_000,
		Comments:  11_000,
		Shares:    36_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Indra Nooyi",
		Username:  "Indra Nooyi",
		Avatar:    "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=100&h=100&fit=crop",
		Content:   "Leadership lessons from 12 years as PepsiCo CEO: It's not just about making tough decisions—it's about making the right ones for all stakeholders.",
		MediaURL:  "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=800&h=600&fit=crop",
		Likes:     367_000,
		Comments:  8_900,
		Shares:    29_000,
		Timestamp: "1 day ago",
	},
	{
		Name:      "Daniel Pink",
		Username:  "Daniel Pink",
		Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
		Content:   "The science of motivation: Why carrots and sticks don't work anymore. Here's what actually drives people to do their best work.",
		MediaURL:  "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=600&fit=crop",
		Likes:     328_000,
		Comments:  7_600,
		Shares:    25_000,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Mary Barra",
		Username:  "Mary Barra",
		Avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop",
		Content:   "The future of mobility is electric. Here's how GM is leading the transition and what it means for jobs, communities, and the planet.",
		MediaURL:  "https://images.unsplash.com/photo-1593941707882-a5bba14938c7?w=800&h=600&fit=crop",
		Likes:     356_000,
		Comments:  9_200,
		Shares:    31_000,
		Timestamp: "2 days ago",
	},
	{
		Name:      "Tim Ferriss",
		Username:  "Tim Ferriss",
		Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
		Content:   "The most successful people I've interviewed all share this one habit. It's not what you think. Here's what they do differently...",
		MediaURL:  "https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=800&h=600&fit=crop",
		Likes:     445_000,
		Comments:  12_000,
		Shares:    38_000,
		Timestamp: "3 days ago",
	},
}
