package models

type Topic struct {
	Base        `bson:",inline"`
	Topic       string `json:"topic" gorm:"not null" bson:"topic"`
	Description string `json:"description" gorm:"type:text" bson:"description"`
	SubjectID   string `json:"subject" gorm:"size:36;index;not null" bson:"subject"`
}
