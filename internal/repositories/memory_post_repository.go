package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anonto42/chyll/backend/internal/models"
)

// MemoryPostRepository is a process-local PostRepository used when no
// MongoDB is configured and in tests. It mirrors the Mongo semantics.
type MemoryPostRepository struct {
	mu        sync.RWMutex
	posts     map[string]models.Post
	bySource  map[string]string
	now       func() time.Time
	insertSeq []string
}

// MemoryOption configures the MemoryPostRepository.
type MemoryOption func(*MemoryPostRepository)

// WithMemoryClock sets the clock used for created/updated timestamps.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(r *MemoryPostRepository) {
		r.now = now
	}
}

func NewMemoryPostRepository(opts ...MemoryOption) *MemoryPostRepository {
	r := &MemoryPostRepository{
		posts:    make(map[string]models.Post),
		bySource: make(map[string]string),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.SourceID != "" {
		if _, ok := r.bySource[post.SourceID]; ok {
			return ErrDuplicate
		}
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if _, ok := r.posts[post.ID]; ok {
		return ErrDuplicate
	}
	now := r.now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	r.posts[post.ID] = *post
	r.insertSeq = append(r.insertSeq, post.ID)
	if post.SourceID != "" {
		r.bySource[post.SourceID] = post.ID
	}
	return nil
}

func (r *MemoryPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (r *MemoryPostRepository) GetPostsByIDs(ctx context.Context, ids []string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := []models.Post{}
	for _, id := range ids {
		if post, ok := r.posts[id]; ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *MemoryPostRepository) ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	matched := r.matching(func(p models.Post) bool { return matchesFilter(p, filter) })
	return paginate(sortPosts(matched, filter.SortBy), filter.Skip, filter.Limit), nil
}

func (r *MemoryPostRepository) SearchPosts(ctx context.Context, filter SearchFilter) ([]models.Post, error) {
	q := strings.ToLower(filter.Query)
	matched := r.matching(func(p models.Post) bool {
		if filter.Platform != "" && p.Platform != filter.Platform {
			return false
		}
		return strings.Contains(strings.ToLower(p.Content), q) ||
			strings.Contains(strings.ToLower(p.User.Name), q) ||
			strings.Contains(strings.ToLower(p.User.Username), q)
	})
	return paginate(sortPosts(matched, filter.SortBy), 0, filter.Limit), nil
}

func (r *MemoryPostRepository) GetFeaturedPost(ctx context.Context) (*models.Post, error) {
	candidates := []func(models.Post) bool{
		func(p models.Post) bool {
			return p.Category == models.CategoryViral && p.Media.Type == models.MediaVideo &&
				(p.Platform == models.PlatformYouTube || p.Platform == models.PlatformReddit)
		},
		func(p models.Post) bool { return p.Category == models.CategoryViral },
		func(models.Post) bool { return true },
	}
	for _, match := range candidates {
		posts := sortPosts(r.matching(match), SortLikes)
		if len(posts) > 0 {
			return &posts[0], nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryPostRepository) CountPosts(ctx context.Context, filter PostFilter) (int64, error) {
	return int64(len(r.matching(func(p models.Post) bool { return matchesFilter(p, filter) }))), nil
}

func (r *MemoryPostRepository) CountSeedPosts(ctx context.Context) (int64, error) {
	return int64(len(r.matching(func(p models.Post) bool { return p.SourceID == "" }))), nil
}

func (r *MemoryPostRepository) ExistingSourceIDs(ctx context.Context, sourceIDs []string) (map[string]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]bool)
	for _, id := range sourceIDs {
		if _, ok := r.bySource[id]; ok {
			result[id] = true
		}
	}
	return result, nil
}

func (r *MemoryPostRepository) IncrementCounter(ctx context.Context, id string, counter Counter) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	switch counter {
	case CounterLikes:
		post.Likes++
	case CounterComments:
		post.Comments++
	case CounterShares:
		post.Shares++
	}
	post.UpdatedAt = r.now().UTC()
	r.posts[id] = post
	return &post, nil
}

func (r *MemoryPostRepository) PlatformStats(ctx context.Context) ([]PlatformStats, error) {
	byPlatform := make(map[models.Platform]*PlatformStats)
	for _, p := range r.matching(func(models.Post) bool { return true }) {
		s, ok := byPlatform[p.Platform]
		if !ok {
			s = &PlatformStats{Platform: p.Platform}
			byPlatform[p.Platform] = s
		}
		s.Posts++
		s.Likes += p.Likes
		s.Comments += p.Comments
		s.Shares += p.Shares
	}

	stats := make([]PlatformStats, 0, len(byPlatform))
	for _, s := range byPlatform {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Posts != stats[j].Posts {
			return stats[i].Posts > stats[j].Posts
		}
		return stats[i].Platform < stats[j].Platform
	})
	return stats, nil
}

func (r *MemoryPostRepository) Overview(ctx context.Context) (*Overview, error) {
	out := &Overview{ByCategory: emptyCategoryCounts()}
	for _, p := range r.matching(func(models.Post) bool { return true }) {
		out.TotalPosts++
		out.TotalLikes += p.Likes
		out.TotalComments += p.Comments
		out.TotalShares += p.Shares
		if p.Media.Type == models.MediaVideo {
			out.TotalVideos++
		}
		out.ByCategory[p.Category]++
	}
	return out, nil
}

// matching returns matches in insertion order.
func (r *MemoryPostRepository) matching(keep func(models.Post) bool) []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Post{}
	for _, id := range r.insertSeq {
		if p := r.posts[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilter(p models.Post, f PostFilter) bool {
	if f.Platform != "" && p.Platform != f.Platform {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if !f.Since.IsZero() && !p.CreatedAt.After(f.Since) {
		return false
	}
	return true
}

func sortPosts(posts []models.Post, by SortOrder) []models.Post {
	key := func(p models.Post) int64 {
		switch by {
		case SortLikes:
			return p.Likes
		case SortComments:
			return p.Comments
		case SortEngagement, SortRelevance:
			return p.Engagement()
		default:
			return p.CreatedAt.UnixNano()
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		ki, kj := key(posts[i]), key(posts[j])
		if ki != kj {
			return ki > kj
		}
		return posts[i].ID < posts[j].ID
	})
	return posts
}

func paginate(posts []models.Post, skip, limit int64) []models.Post {
	if skip < 0 {
		skip = 0
	}
	if skip >= int64(len(posts)) {
		return []models.Post{}
	}
	posts = posts[skip:]
	if limit > 0 && limit < int64(len(posts)) {
		posts = posts[:limit]
	}
	return posts
}
