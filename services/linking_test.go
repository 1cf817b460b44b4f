package services

import (
	"context"
	"testing"
	"time"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseOf(t *testing.T, st store.Store, subjectID string) *string {
	t.Helper()
	s, err := st.Subjects().Get(context.Background(), subjectID)
	require.NoError(t, err)
	return s.CourseID
}

func TestCreateCourseLinksResolvableSubjects(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	s1 := mustSubject(t, svc, "S1", "")
	s2 := mustSubject(t, svc, "S2", "")

	course, err := svc.CreateCourse(ctx, CourseInput{
		Title:    ptr("Backend"),
		Duration: ptr("8"),
		Subjects: []string{s1.ID, "does-not-exist", s2.ID, s1.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, models.LevelBeginner, course.Level)

	assert.Equal(t, &course.ID, courseOf(t, st, s1.ID))
	assert.Equal(t, &course.ID, courseOf(t, st, s2.ID))
}

func TestUpdateCourseReplacesSubjectSet(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	s1 := mustSubject(t, svc, "S1", "")
	s2 := mustSubject(t, svc, "S2", "")
	s3 := mustSubject(t, svc, "S3", "")
	course, err := svc.CreateCourse(ctx, CourseInput{
		Title: ptr("Backend"), Duration: ptr("8"), Subjects: []string{s1.ID, s2.ID},
	})
	require.NoError(t, err)

	_, err = svc.UpdateCourse(ctx, course.ID, CourseInput{Subjects: []string{s2.ID, s3.ID}})
	require.NoError(t, err)

	assert.Nil(t, courseOf(t, st, s1.ID))
	assert.Equal(t, &course.ID, courseOf(t, st, s2.ID))
	assert.Equal(t, &course.ID, courseOf(t, st, s3.ID))
}

func TestUpdateCourseWithoutSubjectsKeepsLinks(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	s1 := mustSubject(t, svc, "S1", "")
	course, err := svc.CreateCourse(ctx, CourseInput{
		Title: ptr("Backend"), Duration: ptr("8"), Subjects: []string{s1.ID},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCourse(ctx, course.ID, CourseInput{Title: ptr("Backend II")})
	require.NoError(t, err)
	assert.Equal(t, "Backend II", updated.Title)
	assert.Equal(t, &course.ID, courseOf(t, st, s1.ID))

	_, err = svc.UpdateCourse(ctx, course.ID, CourseInput{Subjects: []string{}})
	require.NoError(t, err)
	assert.Nil(t, courseOf(t, st, s1.ID))
}

func TestSubjectCourseReference(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateSubject(ctx, SubjectInput{Title: ptr("APIs"), CourseID: ptr("missing")})
	assert.True(t, IsNotFound(err))

	course := mustCourse(t, svc, "Backend")
	subject := mustSubject(t, svc, "APIs", course.ID)

	updated, err := svc.UpdateSubject(ctx, subject.ID, SubjectInput{CourseID: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.CourseID)
}

func TestChildrenRequireParent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateTopic(ctx, TopicInput{Topic: ptr("REST"), SubjectID: ptr("missing")})
	assert.True(t, IsNotFound(err))

	_, err = svc.CreateQuestion(ctx, QuestionInput{Question: ptr("q"), TopicID: ptr("missing")})
	assert.True(t, IsNotFound(err))
}

func TestDeleteCourseLeavesSubjects(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	course := mustCourse(t, svc, "Backend")
	subject := mustSubject(t, svc, "APIs", course.ID)

	require.NoError(t, svc.DeleteCourse(ctx, course.ID))
	assert.Equal(t, &course.ID, courseOf(t, st, subject.ID))
	assert.True(t, IsNotFound(svc.DeleteCourse(ctx, course.ID)))
}

func TestLinkFailureKeepsCourseWrite(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	s1 := mustSubject(t, svc, "S1", "")
	s2 := mustSubject(t, svc, "S2", "")
	s3 := mustSubject(t, svc, "S3", "")
	course, err := svc.CreateCourse(ctx, CourseInput{
		Title:    ptr("Backend"),
		Duration: ptr("8"),
		Subjects: []string{s1.ID, s2.ID},
	})
	require.NoError(t, err)

	broken := New(failingLinks{Store: st}, WithLocation(time.UTC))

	created, err := broken.CreateCourse(ctx, CourseInput{
		Title:    ptr("Frontend"),
		Duration: ptr("6"),
		Subjects: []string{s3.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	_, err = st.Courses().Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, courseOf(t, st, s3.ID))

	updated, err := broken.UpdateCourse(ctx, course.ID, CourseInput{
		Title:    ptr("Backend II"),
		Subjects: []string{s3.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend II", updated.Title)

	// the failed reattach rolls back the detach
	assert.Equal(t, &course.ID, courseOf(t, st, s1.ID))
	assert.Equal(t, &course.ID, courseOf(t, st, s2.ID))
	assert.Nil(t, courseOf(t, st, s3.ID))

	stored, err := st.Courses().Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend II", stored.Title)
}
