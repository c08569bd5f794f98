package events

import (
	"time"
)

// EventType represents different types of content events
type EventType string

const (
	// Article events
	EventArticlePublished   EventType = "article.published"
	EventArticleUnpublished EventType = "article.unpublished"

	// Quiz events
	EventQuizCompleted EventType = "quiz.completed"

	// Newsletter events
	EventSubscriberJoined EventType = "newsletter.subscribed"
)

// ContentEvent is the base event structure for all content events
type ContentEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Article event payloads

type ArticlePublishedEvent struct {
	ArticleID uint      `json:"article_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type ArticleUnpublishedEvent struct {
	ArticleID uint   `json:"article_id"`
	Slug      string `json:"slug"`
}

// Quiz event payloads

type QuizCompletedEvent struct {
	QuizID      string `json:"quiz_id"`
	TotalPoints int    `json:"total_points"`
	MaxPoints   int    `json:"max_points"`
}

// Newsletter event payloads

type SubscriberJoinedEvent struct {
	Email string `json:"email"`
}
