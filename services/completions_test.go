package services

import (
	"context"
	"testing"
	"time"

	"prepcourse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkCompleteKeepsFirstTimestamp(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, WithClock(func() time.Time { return clock }))

	first, created, err := svc.MarkComplete(ctx, "student-1", "topic-1")
	require.NoError(t, err)
	assert.True(t, created)

	clock = clock.Add(48 * time.Hour)
	second, created, err := svc.MarkComplete(ctx, "student-1", "topic-1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.CompletedAt.Equal(second.CompletedAt))
}

func TestCheckCompletion(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tc, err := svc.CheckCompletion(ctx, "student-1", "topic-1")
	require.NoError(t, err)
	assert.Nil(t, tc)

	_, _, err = svc.MarkComplete(ctx, "student-1", "topic-1")
	require.NoError(t, err)
	tc, err = svc.CheckCompletion(ctx, "student-1", "topic-1")
	require.NoError(t, err)
	assert.NotNil(t, tc)
}

// seedLedger creates two students and completions spread over March 2026.
func seedLedger(t *testing.T, svc *Service) (asha, ben models.Student, rest, grpc *models.Topic) {
	t.Helper()
	ctx := context.Background()

	students, err := svc.CreateStudents(ctx, []StudentInput{
		{Name: "Asha", Email: "asha@example.com", Phone: "1"},
		{Name: "Ben", Email: "ben@example.com", Phone: "2"},
	})
	require.NoError(t, err)
	asha, ben = students[0], students[1]

	subject := mustSubject(t, svc, "APIs", "")
	rest = mustTopic(t, svc, "REST", subject.ID)
	grpc = mustTopic(t, svc, "gRPC", subject.ID)

	mark := func(studentID, topicID string, at time.Time) {
		tc := &models.TopicCompletion{StudentID: studentID, TopicID: topicID, CompletedAt: at}
		require.NoError(t, svc.store.Completions().Create(ctx, tc))
	}
	mark(asha.ID, rest.ID, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	mark(asha.ID, grpc.ID, time.Date(2026, 3, 3, 23, 30, 0, 0, time.UTC))
	mark(ben.ID, rest.ID, time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC))
	return asha, ben, rest, grpc
}

func TestStudentCompletionsAnnotated(t *testing.T) {
	svc, _ := newTestService(t)
	asha, _, _, grpc := seedLedger(t, svc)

	views, err := svc.StudentCompletions(context.Background(), asha.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, grpc.ID, views[0].TopicID)
	require.NotNil(t, views[0].Topic)
	assert.Equal(t, "gRPC", views[0].Topic.Topic)
	require.NotNil(t, views[0].Student)
	assert.Equal(t, "asha@example.com", views[0].Student.Email)
}

func TestAllCompletionsDateRange(t *testing.T) {
	svc, _ := newTestService(t)
	_, ben, _, _ := seedLedger(t, svc)

	from, to, err := ParseDateRange("2026-03-03", "2026-03-03", time.UTC)
	require.NoError(t, err)

	views, err := svc.AllCompletions(context.Background(), CompletionQuery{From: from, To: to})
	require.NoError(t, err)
	assert.Len(t, views, 2, "a date-only end bound covers the whole day")

	views, err = svc.AllCompletions(context.Background(), CompletionQuery{StudentID: ben.ID, From: from, To: to})
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestParseDateRange(t *testing.T) {
	from, to, err := ParseDateRange("", "", time.UTC)
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)

	from, _, err = ParseDateRange("2026-03-01T05:00:00Z", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 5, from.Hour())

	_, to, err = ParseDateRange("", "2026-03-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 23, to.Hour())
	assert.Equal(t, 59, to.Second())

	_, _, err = ParseDateRange("yesterday", "", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCompletionAnalytics(t *testing.T) {
	clock := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, WithClock(func() time.Time { return clock }))
	seedLedger(t, svc)

	analytics, err := svc.CompletionAnalytics(context.Background(), CompletionQuery{}, 1)
	require.NoError(t, err)

	assert.Equal(t, []TrendPoint{
		{Date: "2026-03-01", Label: "Mar 1", Count: 1},
		{Date: "2026-03-03", Label: "Mar 3", Count: 2},
	}, analytics.Trend)
	assert.Equal(t, []LeaderboardEntry{{Name: "Asha", Count: 2}}, analytics.TopStudents)
	assert.Equal(t, []LeaderboardEntry{{Name: "REST", Count: 2}}, analytics.TopTopics)
	assert.Equal(t, CompletionSummary{Total: 3, UniqueStudents: 2, UniqueTopics: 2, ThisWeek: 3}, analytics.Summary)
}

func TestLeaderboardFallbackLabels(t *testing.T) {
	views := []models.CompletionView{
		{StudentID: "a", Student: &models.StudentRef{Email: "a@example.com"}},
		{StudentID: "b"},
		{StudentID: "c", Topic: &models.TopicRef{}},
	}
	students := leaderboard(views, studentLabel, 5)
	assert.Equal(t, []LeaderboardEntry{{"Unknown", 2}, {"a@example.com", 1}}, students)

	topics := leaderboard(views, topicLabel, 5)
	assert.Equal(t, []LeaderboardEntry{{"Unknown Topic", 3}}, topics)
}

func TestMarkCompleteRecoversFromDuplicateInsert(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	tick := func() time.Time { return clock }
	svc, st := newTestService(t, WithClock(tick))

	first, created, err := svc.MarkComplete(ctx, "student-1", "topic-1")
	require.NoError(t, err)
	require.True(t, created)

	clock = clock.Add(time.Hour)
	raced := New(newMissOnce(st), WithClock(tick), WithLocation(time.UTC))
	second, created, err := raced.MarkComplete(ctx, "student-1", "topic-1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.CompletedAt.Equal(second.CompletedAt))

	n, err := st.Completions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
