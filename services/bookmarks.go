package services

import (
	"context"

	"prepcourse/grouping"
	"prepcourse/models"
	"prepcourse/store"

	"github.com/pkg/errors"
)

const (
	uncategorizedTitle  = "Uncategorized"
	unknownSubjectTitle = "Unknown Subject"
)

// AddBookmark saves questionID for studentID. Adding an existing pair is not
// an error: the stored bookmark is returned with created=false, including
// when a concurrent request wins the unique index.
func (s *Service) AddBookmark(ctx context.Context, studentID, questionID string) (bookmark *models.Bookmark, created bool, err error) {
	existing, err := s.store.Bookmarks().Find(ctx, studentID, questionID)
	if err == nil {
		return existing, false, nil
	}
	if !store.IsNotFound(err) {
		return nil, false, err
	}

	bookmark = &models.Bookmark{StudentID: studentID, QuestionID: questionID}
	err = s.store.Bookmarks().Create(ctx, bookmark)
	if store.IsDuplicate(err) {
		existing, err = s.store.Bookmarks().Find(ctx, studentID, questionID)
		if err != nil {
			return nil, false, errors.Wrap(err, "reload raced bookmark")
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return bookmark, true, nil
}

func (s *Service) RemoveBookmark(ctx context.Context, studentID, questionID string) error {
	return notFound("Bookmark", s.store.Bookmarks().Delete(ctx, studentID, questionID))
}

// CheckBookmark returns the bookmark for the pair, or nil when there is none.
func (s *Service) CheckBookmark(ctx context.Context, studentID, questionID string) (*models.Bookmark, error) {
	b, err := s.store.Bookmarks().Find(ctx, studentID, questionID)
	if store.IsNotFound(err) {
		return nil, nil
	}
	return b, err
}

// bookmarkTrail is a bookmark joined to its full ancestry. course is nil
// when the subject has no resolvable course.
type bookmarkTrail struct {
	bookmark models.Bookmark
	question models.Question
	topic    models.Topic
	subject  models.Subject
	course   *models.Course
}

// populateBookmarks resolves Question -> Topic -> Subject -> Course one
// collection at a time. Bookmarks with a broken question, topic or subject
// link are dropped; input order is kept.
func (s *Service) populateBookmarks(ctx context.Context, bookmarks []models.Bookmark) ([]bookmarkTrail, error) {
	questions, err := s.store.Questions().FindByIDs(ctx, collect(bookmarks, func(b models.Bookmark) string { return b.QuestionID }))
	if err != nil {
		return nil, errors.Wrap(err, "populate questions")
	}
	questionByID := index(questions, func(q models.Question) string { return q.ID })

	topics, err := s.store.Topics().FindByIDs(ctx, collect(questions, func(q models.Question) string { return q.TopicID }))
	if err != nil {
		return nil, errors.Wrap(err, "populate topics")
	}
	topicByID := index(topics, func(t models.Topic) string { return t.ID })

	subjects, err := s.store.Subjects().FindByIDs(ctx, collect(topics, func(t models.Topic) string { return t.SubjectID }))
	if err != nil {
		return nil, errors.Wrap(err, "populate subjects")
	}
	subjectByID := index(subjects, func(sub models.Subject) string { return sub.ID })

	courses, err := s.store.Courses().FindByIDs(ctx, collect(subjects, func(sub models.Subject) string {
		if sub.CourseID == nil {
			return ""
		}
		return *sub.CourseID
	}))
	if err != nil {
		return nil, errors.Wrap(err, "populate courses")
	}
	courseByID := index(courses, func(c models.Course) string { return c.ID })

	trails := make([]bookmarkTrail, 0, len(bookmarks))
	for _, b := range bookmarks {
		q, ok := questionByID[b.QuestionID]
		if !ok {
			continue
		}
		t, ok := topicByID[q.TopicID]
		if !ok {
			continue
		}
		sub, ok := subjectByID[t.SubjectID]
		if !ok {
			continue
		}
		trail := bookmarkTrail{bookmark: b, question: q, topic: t, subject: sub}
		if sub.CourseID != nil {
			if c, ok := courseByID[*sub.CourseID]; ok {
				trail.course = &c
			}
		}
		trails = append(trails, trail)
	}
	return trails, nil
}

// groupBookmarks nests trails as Course -> Subject -> entries. Buckets are
// ordered by first appearance and titled from their first trail.
func groupBookmarks(trails []bookmarkTrail) []models.BookmarkCourseGroup {
	byCourse := grouping.By(trails, func(t bookmarkTrail) string {
		if t.course == nil {
			return ""
		}
		return t.course.ID
	})

	out := make([]models.BookmarkCourseGroup, 0, len(byCourse))
	for _, cg := range byCourse {
		group := models.BookmarkCourseGroup{CourseTitle: uncategorizedTitle}
		if first := cg.Items[0].course; first != nil {
			id := first.ID
			group.CourseID = &id
			if first.Title != "" {
				group.CourseTitle = first.Title
			}
		}

		bySubject := grouping.By(cg.Items, func(t bookmarkTrail) string { return t.subject.ID })
		group.Subjects = make([]models.BookmarkSubjectGroup, 0, len(bySubject))
		for _, sg := range bySubject {
			title := sg.Items[0].subject.Title
			if title == "" {
				title = unknownSubjectTitle
			}
			entries := make([]models.BookmarkEntry, 0, len(sg.Items))
			for _, t := range sg.Items {
				entries = append(entries, models.BookmarkEntry{
					BookmarkID: t.bookmark.ID,
					Question:   t.question.Question,
					Answer:     t.question.Answer,
					QuestionID: t.question.ID,
					CreatedAt:  t.bookmark.CreatedAt,
				})
			}
			group.Subjects = append(group.Subjects, models.BookmarkSubjectGroup{
				SubjectID:    sg.Key,
				SubjectTitle: title,
				Questions:    entries,
			})
		}
		out = append(out, group)
	}
	return out
}

// GroupedBookmarks returns the student's bookmarks, newest first, as a
// course/subject tree.
func (s *Service) GroupedBookmarks(ctx context.Context, studentID string) ([]models.BookmarkCourseGroup, error) {
	bookmarks, err := s.store.Bookmarks().ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	trails, err := s.populateBookmarks(ctx, bookmarks)
	if err != nil {
		return nil, err
	}
	return groupBookmarks(trails), nil
}

// collect returns the distinct non-empty keys of items in input order.
func collect[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func index[T any](items []T, key func(T) string) map[string]T {
	m := make(map[string]T, len(items))
	for _, item := range items {
		m[key(item)] = item
	}
	return m
}
