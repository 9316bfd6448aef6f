// Package seed holds the hand-picked posts shown before any platform has
// been fetched.
package seed

import (
	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

type entry struct {
	Platform  models.Platform
	Name      string
	Username  string
	Avatar    string
	Content   string
	MediaType models.MediaType
	MediaURL  string
	Thumbnail string
	Likes     int64
	Comments  int64
	Shares    int64
	Timestamp string
	Category  models.Category
}

// Posts normalizes the seed entries. Seed posts have no source id, so they
// are never matched by ingestion dedup. Their categories are curated rather
// than classified.
func Posts(n *feed.Normalizer) []models.Post {
	posts := make([]models.Post, 0, len(entries))
	for _, e := range entries {
		post, err := n.Normalize(e.Platform, e.record(), "")
		if err != nil {
			logger.Log.WithError(err).WithField("platform", e.Platform).Warn("skipping seed entry")
			continue
		}
		if e.Category.Valid() {
			post.Category = e.Category
		}
		posts = append(posts, post)
	}
	return posts
}

func (e entry) record() feed.RawRecord {
	r := feed.RawRecord{
		Author: feed.RawAuthor{
			Name:     e.Name,
			Username: e.Username,
			Avatar:   e.Avatar,
		},
		Content:      e.Content,
		MediaURL:     e.MediaURL,
		ThumbnailURL: e.Thumbnail,
		Likes:        e.Likes,
		Comments:     e.Comments,
		Shares:       e.Shares,
		Timestamp:    e.Timestamp,
	}
	switch e.MediaType {
	case models.MediaVideo:
		r.IsVideo = true
	case models.MediaImage:
		r.ImageHint = true
	}
	return r
}
