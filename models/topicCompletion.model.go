package models

import "time"

// TopicCompletion records that a student finished a topic. At most one row
// exists per (StudentID, TopicID) and it is never updated once written.
type TopicCompletion struct {
	Base        `bson:",inline"`
	StudentID   string    `json:"studentId" gorm:"size:36;not null;uniqueIndex:idx_completions_student_topic" bson:"studentId"`
	TopicID     string    `json:"topicId" gorm:"size:36;not null;uniqueIndex:idx_completions_student_topic" bson:"topicId"`
	CompletedAt time.Time `json:"completedAt" gorm:"index;not null" bson:"completedAt"`
}
