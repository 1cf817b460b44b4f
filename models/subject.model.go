package models

// Subject is a unit of content. CourseID is a weak back-reference; nil means
// the subject is not linked to any course.
type Subject struct {
	Base        `bson:",inline"`
	Title       string  `json:"title" gorm:"not null" bson:"title"`
	Description string  `json:"description" gorm:"type:text" bson:"description"`
	CourseID    *string `json:"courseId" gorm:"size:36;index" bson:"courseId,omitempty"`
	Level       Level   `json:"level" gorm:"size:16;default:'Beginner'" bson:"level"`
	Image       string  `json:"image" gorm:"type:text" bson:"image"`
}
