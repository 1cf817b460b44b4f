package models

import "time"

type CourseWithCounts struct {
	Course
	SubjectCount  int64 `json:"subjectCount"`
	QuestionCount int64 `json:"questionCount"`
}

type SubjectWithCounts struct {
	Subject
	TopicCount    int64 `json:"topicCount"`
	QuestionCount int64 `json:"questionCount"`
}

// BookmarkEntry is one bookmarked question inside a subject group.
type BookmarkEntry struct {
	BookmarkID string    `json:"bookmarkId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	QuestionID string    `json:"questionId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BookmarkSubjectGroup struct {
	SubjectID    string          `json:"subjectId"`
	SubjectTitle string          `json:"subjectTitle"`
	Questions    []BookmarkEntry `json:"questions"`
}

// BookmarkCourseGroup is the top level of a student's bookmark tree. CourseID
// is nil for the "Uncategorized" bucket.
type BookmarkCourseGroup struct {
	CourseID    *string                `json:"courseId"`
	CourseTitle string                 `json:"courseTitle"`
	Subjects    []BookmarkSubjectGroup `json:"subjects"`
}

type TopicRef struct {
	ID          string `json:"id"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

type StudentRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CompletionView is a completion annotated with its topic and student. Either
// reference is nil when the target no longer exists.
type CompletionView struct {
	ID          string      `json:"id"`
	StudentID   string      `json:"studentId"`
	TopicID     string      `json:"topicId"`
	CompletedAt time.Time   `json:"completedAt"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Topic       *TopicRef   `json:"topic"`
	Student     *StudentRef `json:"student"`
}
