package models

// Question is an interview Q&A item within a topic.
type Question struct {
	Base        `bson:",inline"`
	Question    string `json:"question" gorm:"type:text;not null" bson:"question"`
	Answer      string `json:"answer" gorm:"type:text" bson:"answer"`
	TopicID     string `json:"topic" gorm:"size:36;index;not null" bson:"topic"`
	DefaultCode string `json:"defaultCode,omitempty" gorm:"type:text" bson:"defaultCode,omitempty"`
}
