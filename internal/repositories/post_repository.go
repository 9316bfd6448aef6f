package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anonto42/chyll/backend/internal/models"
)

// PostRepository defines the interface for feed post operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetPostsByIDs(ctx context.Context, ids []string) ([]models.Post, error)
	ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, error)
	SearchPosts(ctx context.Context, filter SearchFilter) ([]models.Post, error)
	GetFeaturedPost(ctx context.Context) (*models.Post, error)
	CountPosts(ctx context.Context, filter PostFilter) (int64, error)
	CountSeedPosts(ctx context.Context) (int64, error)
	ExistingSourceIDs(ctx context.Context, sourceIDs []string) (map[string]bool, error)
	IncrementCounter(ctx context.Context, id string, counter Counter) (*models.Post, error)
	PlatformStats(ctx context.Context) ([]PlatformStats, error)
	Overview(ctx context.Context) (*Overview, error)
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// EnsureIndexes creates the source id uniqueness index and the sort indexes.
// Seed posts carry no source id, so uniqueness only applies where it is set.
func (r *MongoPostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "source_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_source_id").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"source_id": bson.M{"$type": "string"}}),
		},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "likes", Value: -1}}},
		{Keys: bson.D{{Key: "platform", Value: 1}, {Key: "category", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create post indexes: %w", err)
	}
	return nil
}

// CreatePost inserts a post, assigning an id when missing
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetPostByID retrieves a post by ID from MongoDB
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *MongoPostRepository) GetPostsByIDs(ctx context.Context, ids []string) ([]models.Post, error) {
	posts := []models.Post{}
	if len(ids) == 0 {
		return posts, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPosts retrieves posts matching filter, sorted and paginated
func (r *MongoPostRepository) ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	return r.aggregate(ctx, filterQuery(filter), filter.SortBy, filter.Skip, filter.Limit)
}

// SearchPosts matches the query as a literal, case-insensitive substring
func (r *MongoPostRepository) SearchPosts(ctx context.Context, filter SearchFilter) ([]models.Post, error) {
	pattern := containsFold(filter.Query)
	match := bson.M{"$or": bson.A{
		bson.M{"content": pattern},
		bson.M{"user.name": pattern},
		bson.M{"user.username": pattern},
	}}
	if filter.Platform != "" {
		match["platform"] = filter.Platform
	}
	return r.aggregate(ctx, match, filter.SortBy, 0, filter.Limit)
}

// GetFeaturedPost prefers viral posts with playable video, then any viral
// post, then the most liked post overall.
func (r *MongoPostRepository) GetFeaturedPost(ctx context.Context) (*models.Post, error) {
	candidates := []bson.M{
		{
			"category":   models.CategoryViral,
			"media.type": models.MediaVideo,
			"platform":   bson.M{"$in": videoPlatforms},
		},
		{"category": models.CategoryViral},
		{},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "likes", Value: -1}})

	for _, q := range candidates {
		var post models.Post
		err := r.collection.FindOne(ctx, q, opts).Decode(&post)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &post, nil
	}
	return nil, ErrNotFound
}

func (r *MongoPostRepository) CountPosts(ctx context.Context, filter PostFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, filterQuery(filter))
}

// CountSeedPosts counts posts that were not ingested from a platform
func (r *MongoPostRepository) CountSeedPosts(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"source_id": bson.M{"$exists": false}})
}

func (r *MongoPostRepository) ExistingSourceIDs(ctx context.Context, sourceIDs []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(sourceIDs) == 0 {
		return result, nil
	}
	opts := options.Find().SetProjection(bson.M{"source_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"source_id": bson.M{"$in": sourceIDs}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		SourceID string `bson:"source_id"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.SourceID] = true
	}
	return result, nil
}

// IncrementCounter atomically bumps a counter and returns the updated post
func (r *MongoPostRepository) IncrementCounter(ctx context.Context, id string, counter Counter) (*models.Post, error) {
	update := bson.M{
		"$inc": bson.M{string(counter): 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *MongoPostRepository) PlatformStats(ctx context.Context) ([]PlatformStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":      "$platform",
			"posts":    bson.M{"$sum": 1},
			"likes":    bson.M{"$sum": "$likes"},
			"comments": bson.M{"$sum": "$comments"},
			"shares":   bson.M{"$sum": "$shares"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "posts", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := []PlatformStats{}
	if err = cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *MongoPostRepository) Overview(ctx context.Context) (*Overview, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.M{
			"totals": bson.A{
				bson.M{"$group": bson.M{
					"_id":            nil,
					"total_posts":    bson.M{"$sum": 1},
					"total_likes":    bson.M{"$sum": "$likes"},
					"total_comments": bson.M{"$sum": "$comments"},
					"total_shares":   bson.M{"$sum": "$shares"},
					"total_videos": bson.M{"$sum": bson.M{
						"$cond": bson.A{bson.M{"$eq": bson.A{"$media.type", models.MediaVideo}}, 1, 0},
					}},
				}},
			},
			"categories": bson.A{
				bson.M{"$group": bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}},
			},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Totals []struct {
			TotalPosts    int64 `bson:"total_posts"`
			TotalLikes    int64 `bson:"total_likes"`
			TotalComments int64 `bson:"total_comments"`
			TotalShares   int64 `bson:"total_shares"`
			TotalVideos   int64 `bson:"total_videos"`
		} `bson:"totals"`
		Categories []struct {
			Category models.Category `bson:"_id"`
			Count    int64           `bson:"count"`
		} `bson:"categories"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := &Overview{ByCategory: emptyCategoryCounts()}
	if len(rows) == 0 {
		return out, nil
	}
	if len(rows[0].Totals) > 0 {
		t := rows[0].Totals[0]
		out.TotalPosts = t.TotalPosts
		out.TotalLikes = t.TotalLikes
		out.TotalComments = t.TotalComments
		out.TotalShares = t.TotalShares
		out.TotalVideos = t.TotalVideos
	}
	for _, c := range rows[0].Categories {
		out.ByCategory[c.Category] = c.Count
	}
	return out, nil
}

func (r *MongoPostRepository) aggregate(ctx context.Context, match bson.M, sortBy SortOrder, skip, limit int64) ([]models.Post, error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: match}}}
	if sortBy == SortEngagement || sortBy == SortRelevance {
		pipeline = append(pipeline, bson.D{{Key: "$addFields", Value: bson.M{
			"engagement": bson.M{"$add": bson.A{"$likes", "$comments", "$shares"}},
		}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sortSpec(sortBy)}})
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func filterQuery(f PostFilter) bson.M {
	q := bson.M{}
	if f.Platform != "" {
		q["platform"] = f.Platform
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if !f.Since.IsZero() {
		q["created_at"] = bson.M{"$gt": f.Since}
	}
	return q
}

// sortSpec always ends with _id so pages are stable.
func sortSpec(s SortOrder) bson.D {
	switch s {
	case SortLikes:
		return bson.D{{Key: "likes", Value: -1}, {Key: "_id", Value: 1}}
	case SortComments:
		return bson.D{{Key: "comments", Value: -1}, {Key: "_id", Value: 1}}
	case SortEngagement, SortRelevance:
		return bson.D{{Key: "engagement", Value: -1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}
	}
}

func containsFold(q string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"}
}

func emptyCategoryCounts() map[models.Category]int64 {
	out := make(map[models.Category]int64, len(models.Categories))
	for _, c := range models.Categories {
		out[c] = 0
	}
	return out
}
