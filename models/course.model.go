package models

// Level is the difficulty of a course or subject.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Course is a top-level catalog item a student purchases. Its subjects point
// back at it through Subject.CourseID; the course holds no subject list.
type Course struct {
	Base        `bson:",inline"`
	Title       string   `json:"title" gorm:"not null" bson:"title"`
	Description string   `json:"description" gorm:"type:text" bson:"description"`
	Duration    string   `json:"duration" gorm:"not null" bson:"duration"`
	Price       float64  `json:"price" gorm:"default:0" bson:"price"`
	CompareAt   *float64 `json:"compareAt,omitempty" bson:"compareAt,omitempty"`
	Level       Level    `json:"level" gorm:"size:16;default:'Beginner'" bson:"level"`
	Image       string   `json:"image" gorm:"type:text" bson:"image"`
}
