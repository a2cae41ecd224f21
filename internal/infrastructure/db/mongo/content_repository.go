package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

const (
	audioCollection   = "audio_contents"
	readingCollection = "reading_contents"
	yogaCollection    = "yoga_contents"
)

// ContentRepository implements ports.ContentRepository across the three
// content collections.
type ContentRepository struct {
	audio   *mongo.Collection
	reading *mongo.Collection
	yoga    *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		audio:   db.Collection(audioCollection),
		reading: db.Collection(readingCollection),
		yoga:    db.Collection(yogaCollection),
	}
}

type mongoAudio struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	AudioURL    string             `bson:"audio_url"`
	Duration    int64              `bson:"duration"`
	Artist      string             `bson:"artist,omitempty"`
	Tags        []string           `bson:"tags"`
	IsActive    bool               `bson:"is_active"`
	UploadedBy  string             `bson:"uploaded_by"`
	PlayCount   int64              `bson:"play_count"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type mongoReading struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Content    string             `bson:"content"`
	Category   string             `bson:"category"`
	Author     string             `bson:"author,omitempty"`
	Tags       []string           `bson:"tags"`
	IsActive   bool               `bson:"is_active"`
	UploadedBy string             `bson:"uploaded_by"`
	ReadCount  int64              `bson:"read_count"`
	CreatedAt  time.Time          `bson:"created_at"`
}

type mongoYoga struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	VideoURL     string             `bson:"video_url,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty"`
	Instructions []string           `bson:"instructions"`
	Duration     int64              `bson:"duration"`
	Difficulty   string             `bson:"difficulty"`
	Category     string             `bson:"category"`
	Benefits     []string           `bson:"benefits"`
	IsActive     bool               `bson:"is_active"`
	UploadedBy   string             `bson:"uploaded_by"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (r *ContentRepository) InsertAudio(ctx context.Context, c *domain.AudioContent) (*domain.AudioContent, error) {
	doc := mongoAudio{
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		AudioURL:    c.AudioURL,
		Duration:    c.Duration,
		Artist:      c.Artist,
		Tags:        c.Tags,
		IsActive:    c.IsActive,
		UploadedBy:  c.UploadedBy,
		PlayCount:   c.PlayCount,
		CreatedAt:   c.CreatedAt,
	}
	res, err := r.audio.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert audio: %w", err)
	}
	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListAudio filters by category and searches title/description/artist
// case-insensitively.
func (r *ContentRepository) ListAudio(ctx context.Context, filter ports.ContentFilter) ([]*domain.AudioContent, int64, error) {
	query := bson.M{"is_active": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		query["$or"] = searchClauses(filter.Search, "title", "description", "artist")
	}

	total, err := r.audio.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count audio: %w", err)
	}

	cur, err := r.audio.Find(ctx, query, listOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list audio: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoAudio
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode audio: %w", err)
	}

	items := make([]*domain.AudioContent, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		items = append(items, &domain.AudioContent{
			ID:          d.ID.Hex(),
			Title:       d.Title,
			Description: d.Description,
			Category:    d.Category,
			AudioURL:    d.AudioURL,
			Duration:    d.Duration,
			Artist:      d.Artist,
			Tags:        d.Tags,
			IsActive:    d.IsActive,
			UploadedBy:  d.UploadedBy,
			PlayCount:   d.PlayCount,
			CreatedAt:   d.CreatedAt,
		})
	}
	return items, total, nil
}

func (r *ContentRepository) CountAudio(ctx context.Context) (int64, error) {
	return r.audio.CountDocuments(ctx, bson.M{})
}

func (r *ContentRepository) InsertReading(ctx context.Context, c *domain.ReadingContent) (*domain.ReadingContent, error) {
	doc := mongoReading{
		Title:      c.Title,
		Content:    c.Content,
		Category:   c.Category,
		Author:     c.Author,
		Tags:       c.Tags,
		IsActive:   c.IsActive,
		UploadedBy: c.UploadedBy,
		ReadCount:  c.ReadCount,
		CreatedAt:  c.CreatedAt,
	}
	res, err := r.reading.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert reading: %w", err)
	}
	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListReading filters by category and searches title/content/author
// case-insensitively.
func (r *ContentRepository) ListReading(ctx context.Context, filter ports.ContentFilter) ([]*domain.ReadingContent, int64, error) {
	query := bson.M{"is_active": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		query["$or"] = searchClauses(filter.Search, "title", "content", "author")
	}

	total, err := r.reading.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count reading: %w", err)
	}

	cur, err := r.reading.Find(ctx, query, listOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list reading: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoReading
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode reading: %w", err)
	}

	items := make([]*domain.ReadingContent, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		items = append(items, &domain.ReadingContent{
			ID:         d.ID.Hex(),
			Title:      d.Title,
			Content:    d.Content,
			Category:   d.Category,
			Author:     d.Author,
			Tags:       d.Tags,
			IsActive:   d.IsActive,
			UploadedBy: d.UploadedBy,
			ReadCount:  d.ReadCount,
			CreatedAt:  d.CreatedAt,
		})
	}
	return items, total, nil
}

func (r *ContentRepository) CountReading(ctx context.Context) (int64, error) {
	return r.reading.CountDocuments(ctx, bson.M{})
}

func (r *ContentRepository) InsertYoga(ctx context.Context, c *domain.YogaContent) (*domain.YogaContent, error) {
	doc := mongoYoga{
		Title:        c.Title,
		Description:  c.Description,
		VideoURL:     c.VideoURL,
		ImageURL:     c.ImageURL,
		Instructions: c.Instructions,
		Duration:     c.Duration,
		Difficulty:   c.Difficulty,
		Category:     c.Category,
		Benefits:     c.Benefits,
		IsActive:     c.IsActive,
		UploadedBy:   c.UploadedBy,
		CreatedAt:    c.CreatedAt,
	}
	res, err := r.yoga.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert yoga: %w", err)
	}
	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListYoga filters by category and difficulty; yoga has no free-text search.
func (r *ContentRepository) ListYoga(ctx context.Context, filter ports.ContentFilter) ([]*domain.YogaContent, int64, error) {
	query := bson.M{"is_active": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}

	total, err := r.yoga.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count yoga: %w", err)
	}

	cur, err := r.yoga.Find(ctx, query, listOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list yoga: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoYoga
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode yoga: %w", err)
	}

	items := make([]*domain.YogaContent, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		items = append(items, &domain.YogaContent{
			ID:           d.ID.Hex(),
			Title:        d.Title,
			Description:  d.Description,
			VideoURL:     d.VideoURL,
			ImageURL:     d.ImageURL,
			Instructions: d.Instructions,
			Duration:     d.Duration,
			Difficulty:   d.Difficulty,
			Category:     d.Category,
			Benefits:     d.Benefits,
			IsActive:     d.IsActive,
			UploadedBy:   d.UploadedBy,
			CreatedAt:    d.CreatedAt,
		})
	}
	return items, total, nil
}

// EnsureIndexes creates the listing indexes for all three collections.
func (r *ContentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	listing := []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	for _, coll := range []*mongo.Collection{r.audio, r.reading, r.yoga} {
		if _, err := coll.Indexes().CreateMany(ctx, listing); err != nil {
			return err
		}
	}
	return nil
}

func searchClauses(search string, fields ...string) bson.A {
	clauses := make(bson.A, 0, len(fields))
	for _, f := range fields {
		clauses = append(clauses, bson.M{f: bson.M{"$regex": search, "$options": "i"}})
	}
	return clauses
}

func listOptions(filter ports.ContentFilter) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))
}
