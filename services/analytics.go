package services

import (
	"context"
	"sort"
	"time"

	"prepcourse/grouping"
	"prepcourse/models"
)

const (
	defaultLeaderboardSize = 5
	unknownStudentName     = "Unknown"
	unknownTopicTitle      = "Unknown Topic"
)

type TrendPoint struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type LeaderboardEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CompletionSummary struct {
	Total          int `json:"total"`
	UniqueStudents int `json:"uniqueStudents"`
	UniqueTopics   int `json:"uniqueTopics"`
	ThisWeek       int `json:"thisWeek"`
}

type CompletionAnalytics struct {
	Trend       []TrendPoint       `json:"trend"`
	TopStudents []LeaderboardEntry `json:"topStudents"`
	TopTopics   []LeaderboardEntry `json:"topTopics"`
	Summary     CompletionSummary  `json:"summary"`
}

// CompletionAnalytics summarises the same list AllCompletions returns.
// limit caps both leaderboards; zero or less means the default of five.
func (s *Service) CompletionAnalytics(ctx context.Context, q CompletionQuery, limit int) (*CompletionAnalytics, error) {
	views, err := s.AllCompletions(ctx, q)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	return &CompletionAnalytics{
		Trend:       s.completionTrend(views),
		TopStudents: leaderboard(views, studentLabel, limit),
		TopTopics:   leaderboard(views, topicLabel, limit),
		Summary:     s.completionSummary(views),
	}, nil
}

// completionTrend counts completions per calendar day in the service
// location, oldest day first.
func (s *Service) completionTrend(views []models.CompletionView) []TrendPoint {
	days := grouping.Count(views, func(v models.CompletionView) string {
		return v.CompletedAt.In(s.loc).Format(dateLayout)
	})
	sort.Slice(days, func(i, j int) bool { return days[i].Key < days[j].Key })

	out := make([]TrendPoint, 0, len(days))
	for _, d := range days {
		point := TrendPoint{Date: d.Key, Label: d.Key, Count: d.Count}
		if t, err := time.ParseInLocation(dateLayout, d.Key, s.loc); err == nil {
			point.Label = t.Format("Jan 2")
		}
		out = append(out, point)
	}
	return out
}

// leaderboard ranks labels by count; ties keep first-appearance order.
func leaderboard(views []models.CompletionView, label func(models.CompletionView) string, limit int) []LeaderboardEntry {
	tallies := grouping.Count(views, label)
	sort.SliceStable(tallies, func(i, j int) bool { return tallies[i].Count > tallies[j].Count })
	if len(tallies) > limit {
		tallies = tallies[:limit]
	}
	out := make([]LeaderboardEntry, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, LeaderboardEntry{Name: t.Key, Count: t.Count})
	}
	return out
}

func studentLabel(v models.CompletionView) string {
	switch {
	case v.Student == nil:
		return unknownStudentName
	case v.Student.Name != "":
		return v.Student.Name
	case v.Student.Email != "":
		return v.Student.Email
	}
	return unknownStudentName
}

func topicLabel(v models.CompletionView) string {
	if v.Topic == nil || v.Topic.Topic == "" {
		return unknownTopicTitle
	}
	return v.Topic.Topic
}

// completionSummary counts thisWeek over the trailing seven days.
func (s *Service) completionSummary(views []models.CompletionView) CompletionSummary {
	weekStart := s.now().AddDate(0, 0, -7)
	students := make(map[string]struct{})
	topics := make(map[string]struct{})
	summary := CompletionSummary{Total: len(views)}
	for _, v := range views {
		students[v.StudentID] = struct{}{}
		topics[v.TopicID] = struct{}{}
		if !v.CompletedAt.Before(weekStart) {
			summary.ThisWeek++
		}
	}
	summary.UniqueStudents = len(students)
	summary.UniqueTopics = len(topics)
	return summary
}
