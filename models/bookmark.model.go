package models

// Bookmark is a student's saved reference to one question. The pair
// (StudentID, QuestionID) is unique.
type Bookmark struct {
	Base       `bson:",inline"`
	StudentID  string `json:"studentId" gorm:"size:36;not null;uniqueIndex:idx_bookmarks_student_question" bson:"studentId"`
	QuestionID string `json:"questionId" gorm:"size:36;not null;uniqueIndex:idx_bookmarks_student_question" bson:"questionId"`
}
