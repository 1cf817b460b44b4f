package models

import (
	"time"

	"gorm.io/datatypes"
)

// PurchasedCourse snapshots the course title at purchase time; later title
// edits on the course are not reflected here.
type PurchasedCourse struct {
	CourseID      string    `json:"courseId" bson:"courseId"`
	CourseTitle   string    `json:"courseTitle" bson:"courseTitle"`
	PurchasedDate time.Time `json:"purchasedDate" bson:"purchasedDate"`
}

type Student struct {
	Base                    `bson:",inline"`
	Name                    string                               `json:"name" gorm:"not null" bson:"name"`
	Email                   string                               `json:"email" gorm:"uniqueIndex;size:255;not null" bson:"email"`
	Phone                   string                               `json:"phone" gorm:"not null" bson:"phone"`
	Password                string                               `json:"-" gorm:"default:''" bson:"password"`
	PurchasedCourses        datatypes.JSONSlice[PurchasedCourse] `json:"purchasedCourses" bson:"purchasedCourses"`
	MockInterviewsAvailable int                                  `json:"mockInterviewsAvailable" gorm:"default:0" bson:"mockInterviewsAvailable"`
	IsDeleted               bool                                 `json:"isDeleted" gorm:"default:false" bson:"isDeleted"`
}

// HasPurchased reports whether courseID is already in the purchase list.
func (s *Student) HasPurchased(courseID string) bool {
	for _, pc := range s.PurchasedCourses {
		if pc.CourseID == courseID {
			return true
		}
	}
	return false
}
