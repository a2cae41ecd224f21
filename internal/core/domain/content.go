package domain

import "time"

// Audio content categories.
const (
	AudioCategoryMusic        = "music"
	AudioCategoryPodcast      = "podcast"
	AudioCategoryMeditation   = "meditation"
	AudioCategoryNatureSounds = "nature-sounds"
	AudioCategoryAffirmations = "affirmations"
)

// Reading content categories.
const (
	ReadingCategoryQuotes       = "quotes"
	ReadingCategoryArticles     = "articles"
	ReadingCategoryStories      = "stories"
	ReadingCategoryPoems        = "poems"
	ReadingCategoryAffirmations = "affirmations"
)

// Yoga categories and difficulties.
const (
	YogaCategoryStretching  = "stretching"
	YogaCategoryMeditation  = "meditation"
	YogaCategoryBreathing   = "breathing"
	YogaCategoryFullRoutine = "full-routine"

	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// AudioContent is a playable item in the audio catalogue.
type AudioContent struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	AudioURL    string    `json:"audioUrl" bson:"audio_url"`
	Duration    int64     `json:"duration" bson:"duration"` // seconds
	Artist      string    `json:"artist,omitempty" bson:"artist,omitempty"`
	Tags        []string  `json:"tags" bson:"tags"`
	IsActive    bool      `json:"isActive" bson:"is_active"`
	UploadedBy  string    `json:"uploadedBy" bson:"uploaded_by"`
	PlayCount   int64     `json:"playCount" bson:"play_count"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

// ReadingContent is a text item in the reading catalogue.
type ReadingContent struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Title      string    `json:"title" bson:"title"`
	Content    string    `json:"content" bson:"content"`
	Category   string    `json:"category" bson:"category"`
	Author     string    `json:"author,omitempty" bson:"author,omitempty"`
	Tags       []string  `json:"tags" bson:"tags"`
	IsActive   bool      `json:"isActive" bson:"is_active"`
	UploadedBy string    `json:"uploadedBy" bson:"uploaded_by"`
	ReadCount  int64     `json:"readCount" bson:"read_count"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
}

// YogaContent is a guided routine in the yoga catalogue.
type YogaContent struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	VideoURL     string    `json:"videoUrl,omitempty" bson:"video_url,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	Instructions []string  `json:"instructions" bson:"instructions"`
	Duration     int64     `json:"duration" bson:"duration"` // minutes
	Difficulty   string    `json:"difficulty" bson:"difficulty"`
	Category     string    `json:"category" bson:"category"`
	Benefits     []string  `json:"benefits" bson:"benefits"`
	IsActive     bool      `json:"isActive" bson:"is_active"`
	UploadedBy   string    `json:"uploadedBy" bson:"uploaded_by"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}
