package models

import "fmt"

// Platform identifies a source social network.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformReddit    Platform = "reddit"
	PlatformThreads   Platform = "threads"
	PlatformSnapchat  Platform = "snapchat"
	PlatformPinterest Platform = "pinterest"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{
	PlatformInstagram,
	PlatformTwitter,
	PlatformTikTok,
	PlatformYouTube,
	PlatformFacebook,
	PlatformLinkedIn,
	PlatformReddit,
	PlatformThreads,
	PlatformSnapchat,
	PlatformPinterest,
}

func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePlatform validates a platform name coming from a request or config.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown platform %q", s)
	}
	return p, nil
}

// Category is the engagement bucket a post falls into.
type Category string

const (
	CategoryViral     Category = "viral"
	CategoryTrending  Category = "trending"
	CategoryMostLiked Category = "most-liked"
)

var Categories = []Category{CategoryViral, CategoryTrending, CategoryMostLiked}

func (c Category) Valid() bool {
	return c == CategoryViral || c == CategoryTrending || c == CategoryMostLiked
}

// Rank orders categories so that viral > trending > most-liked.
func (c Category) Rank() int {
	switch c {
	case CategoryViral:
		return 2
	case CategoryTrending:
		return 1
	default:
		return 0
	}
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaText  MediaType = "text"
)
