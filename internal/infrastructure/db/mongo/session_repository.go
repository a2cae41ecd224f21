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

const sessionsCollection = "user_sessions"

// SessionRepository implements ports.SessionRepository on MongoDB.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	UserID           string             `bson:"user_id"`
	TherapyType      string             `bson:"therapy_type"`
	ContentID        string             `bson:"content_id"`
	Duration         int64              `bson:"duration"`
	CompletionStatus string             `bson:"completion_status"`
	MoodBefore       int                `bson:"mood_before,omitempty"`
	MoodAfter        int                `bson:"mood_after,omitempty"`
	Notes            string             `bson:"notes,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
}

func (r *SessionRepository) Insert(ctx context.Context, session *domain.TherapySession) (*domain.TherapySession, error) {
	doc := mongoSession{
		UserID:           session.UserID,
		TherapyType:      string(session.TherapyType),
		ContentID:        session.ContentID,
		Duration:         session.Duration,
		CompletionStatus: string(session.CompletionStatus),
		MoodBefore:       session.MoodBefore,
		MoodAfter:        session.MoodAfter,
		Notes:            session.Notes,
		CreatedAt:        session.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	created := *session
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListByUser returns one page of the user's sessions, newest first. The
// user_id filter is part of the query itself, so a caller can never page into
// another user's records.
func (r *SessionRepository) ListByUser(ctx context.Context, userID string, page, limit int) ([]*domain.TherapySession, int64, error) {
	filter := bson.M{"user_id": userID}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoSession
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode sessions: %w", err)
	}

	sessions := make([]*domain.TherapySession, 0, len(docs))
	for i := range docs {
		sessions = append(sessions, docs[i].toDomain())
	}
	return sessions, total, nil
}

func (r *SessionRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

// CountByTherapyType groups all sessions by therapy type, most frequent first.
func (r *SessionRepository) CountByTherapyType(ctx context.Context) ([]ports.TherapyCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$therapy_type",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate therapies: %w", err)
	}
	defer cur.Close(ctx)

	var counts []ports.TherapyCount
	if err := cur.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode therapy counts: %w", err)
	}
	return counts, nil
}

// EnsureIndexes creates the indexes backing the history listing.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "therapy_type", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (ms *mongoSession) toDomain() *domain.TherapySession {
	return &domain.TherapySession{
		ID:               ms.ID.Hex(),
		UserID:           ms.UserID,
		TherapyType:      domain.TherapyType(ms.TherapyType),
		ContentID:        ms.ContentID,
		Duration:         ms.Duration,
		CompletionStatus: domain.CompletionStatus(ms.CompletionStatus),
		MoodBefore:       ms.MoodBefore,
		MoodAfter:        ms.MoodAfter,
		Notes:            ms.Notes,
		CreatedAt:        ms.CreatedAt,
	}
}
