package services

import (
	"context"
	"strings"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type StudentInput struct {
	Name                    string
	Email                   string
	Phone                   string
	Password                string
	MockInterviewsAvailable int
}

type StudentUpdate struct {
	Name                    *string
	Email                   *string
	Phone                   *string
	PurchasedCourses        *[]models.PurchasedCourse
	MockInterviewsAvailable *int
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

// emailTaken maps a unique-index violation on students to ErrEmailTaken.
func emailTaken(err error) error {
	if store.IsDuplicate(err) {
		return ErrEmailTaken
	}
	return err
}

// withPurchases keeps purchasedCourses a JSON array even when empty.
func withPurchases(st *models.Student) *models.Student {
	if st.PurchasedCourses == nil {
		st.PurchasedCourses = datatypes.JSONSlice[models.PurchasedCourse]{}
	}
	return st
}

// CreateStudents inserts a batch of students. Emails are normalised and
// non-empty passwords hashed before anything is written.
func (s *Service) CreateStudents(ctx context.Context, inputs []StudentInput) ([]models.Student, error) {
	students := make([]*models.Student, 0, len(inputs))
	for _, in := range inputs {
		st := &models.Student{
			Name:                    strings.TrimSpace(in.Name),
			Email:                   normalizeEmail(in.Email),
			Phone:                   strings.TrimSpace(in.Phone),
			MockInterviewsAvailable: in.MockInterviewsAvailable,
			PurchasedCourses:        datatypes.JSONSlice[models.PurchasedCourse]{},
		}
		if in.Password != "" {
			hash, err := s.hashPassword(in.Password)
			if err != nil {
				return nil, err
			}
			st.Password = hash
		}
		students = append(students, st)
	}

	if err := s.store.Students().CreateMany(ctx, students); err != nil {
		return nil, emailTaken(err)
	}

	out := make([]models.Student, 0, len(students))
	for _, st := range students {
		out = append(out, *st)
	}
	return out, nil
}

func (s *Service) ListStudents(ctx context.Context, includeDeleted bool) ([]models.Student, error) {
	students, err := s.store.Students().List(ctx, includeDeleted)
	if err != nil {
		return nil, err
	}
	for i := range students {
		withPurchases(&students[i])
	}
	return students, nil
}

func (s *Service) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	st, err := s.store.Students().Get(ctx, id)
	if err != nil {
		return nil, notFound("Student", err)
	}
	return withPurchases(st), nil
}

func (s *Service) UpdateStudent(ctx context.Context, id string, in StudentUpdate) (*models.Student, error) {
	st, err := s.store.Students().Get(ctx, id)
	if err != nil {
		return nil, notFound("Student", err)
	}
	if in.Name != nil {
		st.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		st.Email = normalizeEmail(*in.Email)
	}
	if in.Phone != nil {
		st.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.PurchasedCourses != nil {
		st.PurchasedCourses = datatypes.JSONSlice[models.PurchasedCourse](*in.PurchasedCourses)
	}
	if in.MockInterviewsAvailable != nil {
		st.MockInterviewsAvailable = *in.MockInterviewsAvailable
	}
	if err := s.store.Students().Update(ctx, st); err != nil {
		return nil, emailTaken(notFound("Student", err))
	}
	return withPurchases(st), nil
}

func (s *Service) ChangeStudentPassword(ctx context.Context, id, password string) error {
	st, err := s.store.Students().Get(ctx, id)
	if err != nil {
		return notFound("Student", err)
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	st.Password = hash
	return notFound("Student", s.store.Students().Update(ctx, st))
}

// DeleteStudent flags the student as deleted; the record is kept.
func (s *Service) DeleteStudent(ctx context.Context, id string) (*models.Student, error) {
	st, err := s.store.Students().Get(ctx, id)
	if err != nil {
		return nil, notFound("Student", err)
	}
	st.IsDeleted = true
	if err := s.store.Students().Update(ctx, st); err != nil {
		return nil, notFound("Student", err)
	}
	return withPurchases(st), nil
}

// AddPurchasedCourse appends courseID to the student's purchases with a
// snapshot of the current course title.
func (s *Service) AddPurchasedCourse(ctx context.Context, studentID, courseID string) (*models.Student, error) {
	course, err := s.store.Courses().Get(ctx, courseID)
	if err != nil {
		return nil, notFound("Course", err)
	}
	st, err := s.store.Students().Get(ctx, studentID)
	if err != nil {
		return nil, notFound("Student", err)
	}
	if st.HasPurchased(courseID) {
		return nil, ErrAlreadyPurchased
	}

	st.PurchasedCourses = append(st.PurchasedCourses, models.PurchasedCourse{
		CourseID:      course.ID,
		CourseTitle:   course.Title,
		PurchasedDate: s.now().UTC(),
	})
	if err := s.store.Students().Update(ctx, st); err != nil {
		return nil, notFound("Student", err)
	}
	return withPurchases(st), nil
}

func (s *Service) RemovePurchasedCourse(ctx context.Context, studentID, courseID string) (*models.Student, error) {
	st, err := s.store.Students().Get(ctx, studentID)
	if err != nil {
		return nil, notFound("Student", err)
	}
	kept := make(datatypes.JSONSlice[models.PurchasedCourse], 0, len(st.PurchasedCourses))
	for _, pc := range st.PurchasedCourses {
		if pc.CourseID != courseID {
			kept = append(kept, pc)
		}
	}
	st.PurchasedCourses = kept
	if err := s.store.Students().Update(ctx, st); err != nil {
		return nil, notFound("Student", err)
	}
	return st, nil
}
