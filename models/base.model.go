package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection names shared by every store backend.
const (
	CollectionCourses          = "courses"
	CollectionSubjects         = "subjects"
	CollectionTopics           = "topics"
	CollectionQuestions        = "questions"
	CollectionStudents         = "students"
	CollectionBookmarks        = "bookmarks"
	CollectionTopicCompletions = "topiccompletions"
)

// Base carries the store-generated identity and timestamps of every document.
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36" bson:"_id"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (b *Base) PrimaryKey() string { return b.ID }

// Stamp assigns an id and creation time when missing and refreshes UpdatedAt.
// Backends without create hooks call it before writing.
func (b *Base) Stamp(now time.Time) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
