package domain

import "time"

// TherapyType enumerates the kinds of therapy a session can record.
type TherapyType string

const (
	TherapyAudio     TherapyType = "audio"
	TherapyReading   TherapyType = "reading"
	TherapyYoga      TherapyType = "yoga"
	TherapyLaughing  TherapyType = "laughing"
	TherapyTalking   TherapyType = "talking"
	TherapyChild     TherapyType = "child"
	TherapySpiritual TherapyType = "spiritual"
)

var therapyTypes = map[TherapyType]struct{}{
	TherapyAudio:     {},
	TherapyReading:   {},
	TherapyYoga:      {},
	TherapyLaughing:  {},
	TherapyTalking:   {},
	TherapyChild:     {},
	TherapySpiritual: {},
}

// Valid reports whether t is a known therapy type.
func (t TherapyType) Valid() bool {
	_, ok := therapyTypes[t]
	return ok
}

// CompletionStatus is the lifecycle state of a therapy session.
// The recording path only ever writes StatusCompleted; started/paused exist
// in the schema but have no write path.
type CompletionStatus string

const (
	StatusStarted   CompletionStatus = "started"
	StatusCompleted CompletionStatus = "completed"
	StatusPaused    CompletionStatus = "paused"
)

// TherapySession records a single completed therapy interaction. Sessions are
// immutable once written; there is no update or delete path.
type TherapySession struct {
	ID               string           `json:"id" bson:"_id,omitempty"`
	UserID           string           `json:"userId" bson:"user_id"`
	TherapyType      TherapyType      `json:"therapyType" bson:"therapy_type"`
	ContentID        string           `json:"contentId" bson:"content_id"`
	Duration         int64            `json:"duration" bson:"duration"` // minutes
	CompletionStatus CompletionStatus `json:"completionStatus" bson:"completion_status"`
	MoodBefore       int              `json:"moodBefore,omitempty" bson:"mood_before,omitempty"` // 1-10
	MoodAfter        int              `json:"moodAfter,omitempty" bson:"mood_after,omitempty"`   // 1-10
	Notes            string           `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt        time.Time        `json:"createdAt" bson:"created_at"`
}
