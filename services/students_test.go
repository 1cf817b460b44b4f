package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateStudentsHashesAndNormalizes(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	created, err := svc.CreateStudents(ctx, []StudentInput{
		{Name: "Asha", Email: "  Asha@Example.com ", Phone: "1", Password: "secret1"},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "asha@example.com", created[0].Email)
	assert.NotNil(t, created[0].PurchasedCourses)

	stored, err := st.Students().Get(ctx, created[0].ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))

	_, err = svc.CreateStudents(ctx, []StudentInput{{Name: "Dup", Email: "asha@example.com", Phone: "2"}})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestPurchasedCourses(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	course := mustCourse(t, svc, "Backend")
	students, err := svc.CreateStudents(ctx, []StudentInput{{Name: "Asha", Email: "asha@example.com", Phone: "1"}})
	require.NoError(t, err)
	id := students[0].ID

	st, err := svc.AddPurchasedCourse(ctx, id, course.ID)
	require.NoError(t, err)
	require.Len(t, st.PurchasedCourses, 1)
	assert.Equal(t, "Backend", st.PurchasedCourses[0].CourseTitle)

	_, err = svc.AddPurchasedCourse(ctx, id, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyPurchased)

	_, err = svc.AddPurchasedCourse(ctx, id, "missing")
	assert.True(t, IsNotFound(err))

	// The title is a snapshot taken at purchase time.
	_, err = svc.UpdateCourse(ctx, course.ID, CourseInput{Title: ptr("Backend v2")})
	require.NoError(t, err)
	st, err = svc.GetStudent(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Backend", st.PurchasedCourses[0].CourseTitle)

	st, err = svc.RemovePurchasedCourse(ctx, id, course.ID)
	require.NoError(t, err)
	assert.Empty(t, st.PurchasedCourses)
}

func TestSoftDeleteAndPassword(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	students, err := svc.CreateStudents(ctx, []StudentInput{
		{Name: "Asha", Email: "asha@example.com", Phone: "1"},
		{Name: "Ben", Email: "ben@example.com", Phone: "2"},
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteStudent(ctx, students[1].ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)

	active, err := svc.ListStudents(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
	all, err := svc.ListStudents(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, svc.ChangeStudentPassword(ctx, students[0].ID, "newpass"))
	stored, err := st.Students().Get(ctx, students[0].ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpass")))

	_, err = svc.UpdateStudent(ctx, students[0].ID, StudentUpdate{Email: ptr("BEN@example.com")})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
