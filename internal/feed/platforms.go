package feed

import "github.com/anonto42/chyll/backend/internal/models"

// PlatformInfo is the display metadata served to clients.
type PlatformInfo struct {
	Platform models.Platform `json:"id"`
	Name     string          `json:"name"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon"`
}

var platformInfo = map[models.Platform]PlatformInfo{
	models.PlatformInstagram: {models.PlatformInstagram, "Instagram", "#E1306C", "instagram"},
	models.PlatformTwitter:   {models.PlatformTwitter, "Twitter/X", "#1DA1F2", "twitter"},
	models.PlatformTikTok:    {models.PlatformTikTok, "TikTok", "#000000", "music"},
	models.PlatformYouTube:   {models.PlatformYouTube, "YouTube", "#FF0000", "youtube"},
	models.PlatformFacebook:  {models.PlatformFacebook, "Facebook", "#1877F2", "facebook"},
	models.PlatformLinkedIn:  {models.PlatformLinkedIn, "LinkedIn", "#0A66C2", "linkedin"},
	models.PlatformReddit:    {models.PlatformReddit, "Reddit", "#FF4500", "message-circle"},
	models.PlatformThreads:   {models.PlatformThreads, "Threads", "#000000", "at-sign"},
	models.PlatformSnapchat:  {models.PlatformSnapchat, "Snapchat", "#FFFC00", "ghost"},
	models.PlatformPinterest: {models.PlatformPinterest, "Pinterest", "#E60023", "pin"},
}

// Color returns the display color for a platform, or "" when unknown.
func Color(p models.Platform) string {
	return platformInfo[p].Color
}

// Platforms returns display metadata for every platform in display order.
func Platforms() []PlatformInfo {
	out := make([]PlatformInfo, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		out = append(out, platformInfo[p])
	}
	return out
}
